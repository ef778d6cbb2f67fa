package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"pbxscope.dev/analyzer/internal/database/delegate"
	"pbxscope.dev/analyzer/internal/helpers"
)

// CSVExporter dumps every analysis table to its own file.
type CSVExporter struct {
	delegate delegate.DatabaseDelegate
}

func NewCSVExporter(databaseDelegate delegate.DatabaseDelegate) (instance *CSVExporter) {
	instance = &CSVExporter{delegate: databaseDelegate}
	return
}

// ExportAll writes one CSV per table into outputDirectory.
func (e *CSVExporter) ExportAll(outputDirectory string) (err error) {
	if err = helpers.EnsureDirectory(outputDirectory); err != nil {
		return
	}
	if err = e.exportLogEntries(outputDirectory); err != nil {
		return
	}
	if err = e.exportCallRecords(outputDirectory); err != nil {
		return
	}
	if err = e.exportSIPMessages(outputDirectory); err != nil {
		return
	}
	if err = e.exportRegistrationEvents(outputDirectory); err != nil {
		return
	}
	if err = e.exportSystemEvents(outputDirectory); err != nil {
		return
	}
	logrus.Info("CSV export written to ", outputDirectory)
	return
}

func writeCSV(path string, header []string, rows [][]string) (err error) {
	var output *os.File
	if output, err = os.Create(path); err != nil {
		return
	}
	defer output.Close()
	writer := csv.NewWriter(output)
	if err = writer.Write(header); err != nil {
		return
	}
	if err = writer.WriteAll(rows); err != nil {
		return
	}
	writer.Flush()
	return writer.Error()
}

func (e *CSVExporter) exportLogEntries(outputDirectory string) (err error) {
	entries, err := e.delegate.GetLogEntries()
	if err != nil {
		return
	}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Timestamp, entry.Level, strconv.Itoa(entry.ThreadID),
			entry.Module, strconv.Itoa(entry.LineNumber), entry.Message, entry.LogType,
		})
	}
	return writeCSV(filepath.Join(outputDirectory, "log_entries.csv"),
		[]string{"timestamp", "level", "thread_id", "module", "line_number", "message", "log_type"}, rows)
}

func (e *CSVExporter) exportCallRecords(outputDirectory string) (err error) {
	records, err := e.delegate.GetCallRecords()
	if err != nil {
		return
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.CallDatetime, record.SourceNumber, record.SourceName,
			record.DestinationNumber, record.DestinationName, record.Trunk,
			strconv.Itoa(record.Duration), strconv.Itoa(record.RingDuration),
			strconv.Itoa(record.TalkDuration), record.Disposition, record.CallType,
			record.UniqueID,
		})
	}
	return writeCSV(filepath.Join(outputDirectory, "call_records.csv"),
		[]string{"call_datetime", "source_number", "source_name", "destination_number",
			"destination_name", "trunk", "duration", "ring_duration", "talk_duration",
			"disposition", "call_type", "unique_id"}, rows)
}

func (e *CSVExporter) exportSIPMessages(outputDirectory string) (err error) {
	messages, err := e.delegate.GetSIPMessages()
	if err != nil {
		return
	}
	rows := make([][]string, 0, len(messages))
	for _, message := range messages {
		rows = append(rows, []string{
			message.Timestamp, message.Direction, message.MessageType,
			strconv.Itoa(message.BytesSize), message.RemoteHost,
			strconv.Itoa(message.RemotePort),
		})
	}
	return writeCSV(filepath.Join(outputDirectory, "sip_messages.csv"),
		[]string{"timestamp", "direction", "message_type", "bytes_size", "remote_host", "remote_port"}, rows)
}

func (e *CSVExporter) exportRegistrationEvents(outputDirectory string) (err error) {
	events, err := e.delegate.GetRegistrationEvents()
	if err != nil {
		return
	}
	rows := make([][]string, 0, len(events))
	for _, event := range events {
		rows = append(rows, []string{
			event.Timestamp, event.EventType, event.ServerURI.String,
			event.ClientURI.String, event.ResponseText.String,
		})
	}
	return writeCSV(filepath.Join(outputDirectory, "registration_events.csv"),
		[]string{"timestamp", "event_type", "server_uri", "client_uri", "response_text"}, rows)
}

func (e *CSVExporter) exportSystemEvents(outputDirectory string) (err error) {
	events, err := e.delegate.GetSystemEvents()
	if err != nil {
		return
	}
	rows := make([][]string, 0, len(events))
	for _, event := range events {
		errorCode := ""
		if event.ErrorCode.Valid {
			errorCode = strconv.FormatInt(event.ErrorCode.Int64, 10)
		}
		rows = append(rows, []string{
			event.Timestamp, event.EventType, event.Category, event.Description, errorCode,
		})
	}
	return writeCSV(filepath.Join(outputDirectory, "system_events.csv"),
		[]string{"timestamp", "event_type", "category", "description", "error_code"}, rows)
}
