package menu_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pbxscope.dev/analyzer/internal/analyzer"
	"pbxscope.dev/analyzer/internal/database"
	"pbxscope.dev/analyzer/internal/database/mock"
	"pbxscope.dev/analyzer/internal/entity"
	"pbxscope.dev/analyzer/internal/menu"
	"pbxscope.dev/analyzer/internal/settings"
)

func newMenu(t *testing.T, databaseDelegate *mock.MockDelegate, input string) (*menu.Menu, *bytes.Buffer) {
	databaseEngine := database.NewDatabase(filepath.Join(t.TempDir(), "analysis.db"), databaseDelegate)
	analyzerEngine := analyzer.NewAnalyzer(databaseDelegate, 0, 0)
	output := &bytes.Buffer{}
	console := menu.NewMenu(strings.NewReader(input), output, databaseEngine, analyzerEngine,
		filepath.Join(t.TempDir(), "settings.cfg"), settings.Default())
	return console, output
}

func TestInvalidChoiceReprompts(t *testing.T) {
	console, output := newMenu(t, &mock.MockDelegate{}, "0\n9\n")
	console.Run()
	assert.Contains(t, output.String(), "Invalid choice. Please enter 1-9.")
	assert.Contains(t, output.String(), "Goodbye!")
}

func TestRunStopsOnInputEnd(t *testing.T) {
	console, output := newMenu(t, &mock.MockDelegate{}, "")
	console.Run()
	assert.Contains(t, output.String(), "PBX LOG ANALYSIS TOOL")
}

func TestReportRefusedWithoutData(t *testing.T) {
	console, output := newMenu(t, &mock.MockDelegate{}, "2\n9\n")
	console.Run()
	assert.Contains(t, output.String(), "No data found. Please parse a log file first.")
}

func TestReportGenerated(t *testing.T) {
	databaseDelegate := &mock.MockDelegate{
		LogEntries: []entity.LogEntry{{Timestamp: "2024-03-15 10:30:45", Level: "VERBOSE"}},
	}
	outputPath := filepath.Join(t.TempDir(), "report.html")
	console, output := newMenu(t, databaseDelegate, "2\n"+outputPath+"\n9\n")
	console.Run()
	assert.Contains(t, output.String(), "Report written to "+outputPath)
	assert.FileExists(t, outputPath)
}

func TestParseLogFileRejectsMissingPath(t *testing.T) {
	console, output := newMenu(t, &mock.MockDelegate{}, "1\n/does/not/exist\n9\n")
	console.Run()
	assert.Contains(t, output.String(), "File not found or invalid path")
}

func TestSearchRecentCalls(t *testing.T) {
	databaseDelegate := &mock.MockDelegate{
		CallRecords: []entity.CallRecord{
			{CallDatetime: "2024-03-15 10:30:45", SourceNumber: "100",
				DestinationNumber: "200", Disposition: "ANSWERED", Duration: 65, Trunk: "trunk1"},
		},
	}
	console, output := newMenu(t, databaseDelegate, "3\n5\n6\n9\n")
	console.Run()
	assert.Contains(t, output.String(), "Found 1 call records:")
	assert.Contains(t, output.String(), "100 -> 200 (ANSWERED, 1m 5s, trunk trunk1)")
}

func TestDatabaseInfoAndVacuum(t *testing.T) {
	databaseDelegate := &mock.MockDelegate{
		LogEntries: []entity.LogEntry{{Timestamp: "2024-03-15 10:30:45"}},
	}
	console, output := newMenu(t, databaseDelegate, "7\n1\n4\n5\n9\n")
	console.Run()
	assert.Contains(t, output.String(), "log_entries: 1 records")
	assert.Contains(t, output.String(), "Database vacuumed")
	assert.True(t, databaseDelegate.Vacuumed)
}

func TestClearRequiresConfirmation(t *testing.T) {
	databaseDelegate := &mock.MockDelegate{
		LogEntries: []entity.LogEntry{{Timestamp: "2024-03-15 10:30:45"}},
	}
	console, output := newMenu(t, databaseDelegate, "7\n3\nno\n3\nYES\n5\n9\n")
	console.Run()
	assert.Contains(t, output.String(), "Operation cancelled")
	assert.Contains(t, output.String(), "All data cleared")
	assert.True(t, databaseDelegate.Cleared)
	assert.Empty(t, databaseDelegate.LogEntries)
}

func TestSettingsSampleLineParsing(t *testing.T) {
	sampleLine := "[2024-03-15 10:30:45] VERBOSE[1234] chan_sip.c:100 some message"
	console, output := newMenu(t, &mock.MockDelegate{}, "8\n3\n"+sampleLine+"\n4\n9\n")
	console.Run()
	assert.Contains(t, output.String(), "Parsed successfully:")
	assert.Contains(t, output.String(), "module: chan_sip.c")
}

func TestSettingsPatternsListing(t *testing.T) {
	console, output := newMenu(t, &mock.MockDelegate{}, "8\n2\n4\n9\n")
	console.Run()
	assert.Contains(t, output.String(), "cdr_insert")
	assert.Contains(t, output.String(), "sip_transmit")
}
