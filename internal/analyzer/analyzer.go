package analyzer

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"pbxscope.dev/analyzer/internal/database/delegate"
	"pbxscope.dev/analyzer/internal/parser"
	"pbxscope.dev/analyzer/pkg/eventemitter"
)

// Default pipeline sizing.
const DefaultChunkSize = 10000

// ChunkProgress is emitted after each chunk lands in the database.
type ChunkProgress struct {
	ChunkID            int
	LogEntries         int
	CallRecords        int
	SIPMessages        int
	RegistrationEvents int
	SystemEvents       int
}

// ParseSummary accumulates the totals of a whole run.
type ParseSummary struct {
	Lines              int
	LogEntries         int
	CallRecords        int
	SIPMessages        int
	RegistrationEvents int
	SystemEvents       int
}

// Analyzer orchestrates a parse run: the log file is split into line
// chunks, a worker pool extracts typed records from each chunk and a
// single writer stores the results, so the storage backend never sees
// concurrent writes.
type Analyzer struct {
	delegate   delegate.DatabaseDelegate
	parser     *parser.Parser
	chunkSize  int
	maxWorkers int

	// Event emitters
	ProgressEventEmitter *eventemitter.EventEmitter[ChunkProgress]
}

func NewAnalyzer(databaseDelegate delegate.DatabaseDelegate, chunkSize int, maxWorkers int) (instance *Analyzer) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU() - 1
		if maxWorkers < 1 {
			maxWorkers = 1
		}
	}
	instance = &Analyzer{
		delegate:             databaseDelegate,
		parser:               parser.NewParser(),
		chunkSize:            chunkSize,
		maxWorkers:           maxWorkers,
		ProgressEventEmitter: &eventemitter.EventEmitter[ChunkProgress]{},
	}
	return
}

type chunk struct {
	id    int
	lines []string
}

// ParseLogFile reads the whole log, extracts every supported record type
// and stores the results. It blocks until the writer has drained.
func (a *Analyzer) ParseLogFile(logFilePath string) (summary ParseSummary, err error) {
	if _, err = os.Stat(logFilePath); os.IsNotExist(err) {
		err = fmt.Errorf("log file not found: %s", logFilePath)
		return
	}

	logrus.Info("Parsing log file ", logFilePath)
	var content []byte
	if content, err = os.ReadFile(logFilePath); err != nil {
		return
	}
	lines := strings.Split(string(content), "\n")
	summary.Lines = len(lines)
	logrus.Debugf("Read %d lines", len(lines))

	chunks := make(chan chunk)
	results := make(chan extracted, a.maxWorkers)

	workers := sync.WaitGroup{}
	for workerIndex := 0; workerIndex < a.maxWorkers; workerIndex++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for item := range chunks {
				results <- a.extractChunk(item)
			}
		}()
	}

	// Single writer keeps the inserts serialized.
	writerDone := make(chan error, 1)
	go func() {
		var writeErr error
		for result := range results {
			if storeErr := a.delegate.StoreExtracted(result.logEntries, result.callRecords,
				result.sipMessages, result.registrationEvents, result.systemEvents); storeErr != nil {
				logrus.Error("Cannot store extracted chunk")
				logrus.Error(storeErr)
				if writeErr == nil {
					writeErr = storeErr
				}
				continue
			}
			summary.LogEntries += len(result.logEntries)
			summary.CallRecords += len(result.callRecords)
			summary.SIPMessages += len(result.sipMessages)
			summary.RegistrationEvents += len(result.registrationEvents)
			summary.SystemEvents += len(result.systemEvents)
			a.ProgressEventEmitter.Emit(ChunkProgress{
				ChunkID:            result.chunkID,
				LogEntries:         len(result.logEntries),
				CallRecords:        len(result.callRecords),
				SIPMessages:        len(result.sipMessages),
				RegistrationEvents: len(result.registrationEvents),
				SystemEvents:       len(result.systemEvents),
			})
		}
		writerDone <- writeErr
	}()

	for chunkStart := 0; chunkStart < len(lines); chunkStart += a.chunkSize {
		chunkEnd := chunkStart + a.chunkSize
		if chunkEnd > len(lines) {
			chunkEnd = len(lines)
		}
		chunks <- chunk{id: chunkStart, lines: lines[chunkStart:chunkEnd]}
	}
	close(chunks)
	workers.Wait()
	close(results)
	err = <-writerDone

	logrus.Infof("Parsing complete: %d log entries, %d call records, %d SIP messages, %d registration events, %d system events",
		summary.LogEntries, summary.CallRecords, summary.SIPMessages,
		summary.RegistrationEvents, summary.SystemEvents)
	return
}
