package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pbxscope.dev/analyzer/internal/database/mock"
	"pbxscope.dev/analyzer/internal/entity"
	"pbxscope.dev/analyzer/internal/report"
)

func fixtureDelegate() *mock.MockDelegate {
	return &mock.MockDelegate{
		LogEntries: []entity.LogEntry{
			{Timestamp: "2024-03-15 10:30:45", Level: "VERBOSE", Message: "a <line>", LogType: "GENERAL"},
		},
		CallRecords: []entity.CallRecord{
			{CallDatetime: "2024-03-15 10:30:45", SourceNumber: "100", DestinationNumber: "200",
				Disposition: "ANSWERED", Duration: 65, Trunk: "trunk1"},
		},
		RegistrationEvents: []entity.RegistrationEvent{
			{Timestamp: "2024-03-15 10:30:45", EventType: "SUCCESS"},
		},
		SystemEvents: []entity.SystemEvent{
			{Timestamp: "2024-03-15 10:30:46", EventType: "ERROR", Category: "DATABASE", Description: "MySQL gone"},
		},
	}
}

func TestGenerateHTML(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "report.html")
	generator := report.NewGenerator(fixtureDelegate())
	assert.NoError(t, generator.GenerateHTML(outputPath, "pbxlog.0"))

	content, err := os.ReadFile(outputPath)
	assert.NoError(t, err)
	html := string(content)
	assert.Contains(t, html, "PBX Log Analysis Report")
	assert.Contains(t, html, "pbxlog.0")
	assert.Contains(t, html, "ANSWERED")
	assert.Contains(t, html, "trunk1")
	assert.Contains(t, html, "SUCCESS")
	assert.Contains(t, html, "DATABASE")
}

func TestExportAll(t *testing.T) {
	outputDirectory := filepath.Join(t.TempDir(), "export")
	exporter := report.NewCSVExporter(fixtureDelegate())
	assert.NoError(t, exporter.ExportAll(outputDirectory))

	for _, name := range []string{
		"log_entries.csv", "call_records.csv", "sip_messages.csv",
		"registration_events.csv", "system_events.csv",
	} {
		content, err := os.ReadFile(filepath.Join(outputDirectory, name))
		assert.NoError(t, err, name)
		assert.NotEmpty(t, content, name)
	}

	content, _ := os.ReadFile(filepath.Join(outputDirectory, "call_records.csv"))
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], "ANSWERED")
}
