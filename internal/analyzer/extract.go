package analyzer

import (
	"strings"

	"pbxscope.dev/analyzer/internal/entity"
)

// extracted carries everything a worker pulled out of one chunk.
type extracted struct {
	chunkID            int
	logEntries         []entity.LogEntry
	callRecords        []entity.CallRecord
	sipMessages        []entity.SIPMessage
	registrationEvents []entity.RegistrationEvent
	systemEvents       []entity.SystemEvent
}

// extractChunk parses a chunk without touching the database.
func (a *Analyzer) extractChunk(item chunk) (result extracted) {
	result.chunkID = item.id
	for _, rawLine := range item.lines {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		entry, ok := a.parser.ParseLogEntry(line)
		if !ok {
			continue
		}
		result.logEntries = append(result.logEntries, *entry)

		message := entry.Message
		if strings.Contains(message, "INSERT INTO cdr") {
			if record, ok := a.parser.ParseCDREntry(message); ok {
				result.callRecords = append(result.callRecords, *record)
			}
		}

		switch {
		case strings.Contains(message, "Transmitting SIP"):
			if sipMessage, ok := a.parser.ExtractSIPTransmit(entry); ok {
				result.sipMessages = append(result.sipMessages, *sipMessage)
			}
		case strings.Contains(message, "Received SIP"):
			if sipMessage, ok := a.parser.ExtractSIPReceive(entry); ok {
				result.sipMessages = append(result.sipMessages, *sipMessage)
			}
		case strings.Contains(strings.ToLower(message), "register"):
			if event, ok := a.parser.ExtractRegistrationEvent(entry); ok {
				result.registrationEvents = append(result.registrationEvents, *event)
			}
		}

		if entry.Level == "ERROR" || entry.Level == "WARNING" {
			if event, ok := a.parser.ExtractSystemEvent(entry); ok {
				result.systemEvents = append(result.systemEvents, *event)
			}
		}
	}
	return
}
