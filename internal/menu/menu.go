package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"pbxscope.dev/analyzer/internal/analyzer"
	"pbxscope.dev/analyzer/internal/database"
	"pbxscope.dev/analyzer/internal/parser"
	"pbxscope.dev/analyzer/internal/pattern"
	"pbxscope.dev/analyzer/internal/report"
	"pbxscope.dev/analyzer/internal/search"
	"pbxscope.dev/analyzer/internal/settings"
)

const defaultReportName = "pbx_analysis_report.html"
const defaultExportDirectory = "csv_export"

// Menu drives the interactive console over an injected reader and
// writer so the whole surface stays testable.
type Menu struct {
	scanner  *bufio.Scanner
	writer   io.Writer
	database *database.Database
	analyzer *analyzer.Analyzer
	search   *search.Search
	parser   *parser.Parser

	settingsFilePath string
	current          settings.Settings
	lastParsedLog    string
}

func NewMenu(reader io.Reader, writer io.Writer, databaseEngine *database.Database,
	analyzerEngine *analyzer.Analyzer, settingsFilePath string, current settings.Settings) (instance *Menu) {
	instance = &Menu{
		scanner:          bufio.NewScanner(reader),
		writer:           writer,
		database:         databaseEngine,
		analyzer:         analyzerEngine,
		search:           search.NewSearch(databaseEngine.Delegate()),
		parser:           parser.NewParser(),
		settingsFilePath: settingsFilePath,
		current:          current,
	}
	return
}

// Run loops until the user exits or input ends.
func (m *Menu) Run() {
	for {
		m.printMainMenu()
		choice, ok := m.prompt("Enter your choice (1-9): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.parseLogFile()
		case "2":
			m.generateReport()
		case "3":
			m.searchCallRecords()
		case "4":
			m.viewCallStatistics()
		case "5":
			m.viewRegistrationEvents()
		case "6":
			m.viewSystemEvents()
		case "7":
			m.databaseManagement()
		case "8":
			m.settingsMenu()
		case "9":
			fmt.Fprintln(m.writer, "Goodbye!")
			return
		default:
			fmt.Fprintln(m.writer, "Invalid choice. Please enter 1-9.")
		}
	}
}

func (m *Menu) printMainMenu() {
	fmt.Fprintln(m.writer)
	fmt.Fprintln(m.writer, strings.Repeat("=", 60))
	fmt.Fprintln(m.writer, "PBX LOG ANALYSIS TOOL")
	fmt.Fprintln(m.writer, strings.Repeat("=", 60))
	fmt.Fprintln(m.writer, "1. Parse Log File")
	fmt.Fprintln(m.writer, "2. Generate HTML Report")
	fmt.Fprintln(m.writer, "3. Search Call Records")
	fmt.Fprintln(m.writer, "4. View Call Statistics")
	fmt.Fprintln(m.writer, "5. View Registration Events")
	fmt.Fprintln(m.writer, "6. View System Events")
	fmt.Fprintln(m.writer, "7. Database Management")
	fmt.Fprintln(m.writer, "8. Settings")
	fmt.Fprintln(m.writer, "9. Exit")
	fmt.Fprintln(m.writer, strings.Repeat("-", 60))
}

func (m *Menu) prompt(label string) (line string, ok bool) {
	fmt.Fprint(m.writer, label)
	if !m.scanner.Scan() {
		return
	}
	return strings.TrimSpace(m.scanner.Text()), true
}

func (m *Menu) parseLogFile() {
	logFilePath, ok := m.prompt("Enter path to log file (e.g., pbxlog.0): ")
	if !ok || logFilePath == "" {
		fmt.Fprintln(m.writer, "File not found or invalid path")
		return
	}
	if _, err := os.Stat(logFilePath); err != nil {
		fmt.Fprintln(m.writer, "File not found or invalid path")
		return
	}
	summary, err := m.analyzer.ParseLogFile(logFilePath)
	if err != nil {
		fmt.Fprintln(m.writer, "Error parsing log file:", err)
		return
	}
	m.lastParsedLog = logFilePath
	fmt.Fprintf(m.writer, "Parsed %d lines: %d log entries, %d call records, %d SIP messages, %d registration events, %d system events\n",
		summary.Lines, summary.LogEntries, summary.CallRecords,
		summary.SIPMessages, summary.RegistrationEvents, summary.SystemEvents)
}

func (m *Menu) generateReport() {
	hasData, err := m.database.HasData()
	if err != nil {
		fmt.Fprintln(m.writer, "Error checking stored data:", err)
		return
	}
	if !hasData {
		fmt.Fprintln(m.writer, "No data found. Please parse a log file first.")
		return
	}
	outputPath, ok := m.prompt(fmt.Sprintf("Enter output filename (default: %s): ", defaultReportName))
	if !ok {
		return
	}
	if outputPath == "" {
		outputPath = defaultReportName
	}
	generator := report.NewGenerator(m.database.Delegate())
	if err = generator.GenerateHTML(outputPath, m.lastParsedLog); err != nil {
		fmt.Fprintln(m.writer, "Error generating report:", err)
		return
	}
	fmt.Fprintln(m.writer, "Report written to", outputPath)
}

func (m *Menu) viewCallStatistics() {
	statistics, err := m.search.Statistics()
	if err != nil {
		fmt.Fprintln(m.writer, "Error:", err)
		return
	}
	fmt.Fprintln(m.writer, "\nCALL STATISTICS")
	fmt.Fprintf(m.writer, "Total calls: %d\n", statistics.Durations.Calls)
	fmt.Fprintf(m.writer, "Total duration: %d seconds\n", statistics.Durations.TotalDuration)
	fmt.Fprintf(m.writer, "Average duration: %.1f seconds\n", statistics.Durations.AvgDuration)
	fmt.Fprintf(m.writer, "Longest call: %d seconds\n", statistics.Durations.MaxDuration)
	fmt.Fprintln(m.writer, "\nDispositions:")
	for _, disposition := range statistics.Dispositions {
		fmt.Fprintf(m.writer, "  %s: %d\n", disposition.Disposition, disposition.Count)
	}
	fmt.Fprintln(m.writer, "\nBusiest hours:")
	for _, hour := range statistics.BusiestHours {
		fmt.Fprintf(m.writer, "  %02d:00 - %d calls\n", hour.Hour, hour.Count)
	}
	fmt.Fprintln(m.writer, "\nTop callers:")
	for _, caller := range statistics.TopCallers {
		fmt.Fprintf(m.writer, "  %s: %d calls\n", caller.Caller, caller.Count)
	}
}

func (m *Menu) viewRegistrationEvents() {
	events, err := m.search.RecentRegistrations()
	if err != nil {
		fmt.Fprintln(m.writer, "Error:", err)
		return
	}
	fmt.Fprintln(m.writer, "\nRECENT REGISTRATION EVENTS")
	for _, event := range events {
		server := event.ServerURI.String
		fmt.Fprintf(m.writer, "  [%s] %s %s\n", event.Timestamp, event.EventType, server)
	}
	summary, err := m.search.RegistrationSummary()
	if err != nil {
		fmt.Fprintln(m.writer, "Error:", err)
		return
	}
	fmt.Fprintln(m.writer, "\nBy event type:")
	for _, entry := range summary {
		fmt.Fprintf(m.writer, "  %s: %d\n", entry.EventType, entry.Count)
	}
}

func (m *Menu) viewSystemEvents() {
	events, err := m.search.RecentSystemEvents()
	if err != nil {
		fmt.Fprintln(m.writer, "Error:", err)
		return
	}
	fmt.Fprintln(m.writer, "\nRECENT SYSTEM EVENTS")
	for _, event := range events {
		fmt.Fprintf(m.writer, "  [%s] %s %s: %s\n", event.Timestamp, event.EventType, event.Category, event.Description)
	}
	summary, err := m.search.ErrorSummary()
	if err != nil {
		fmt.Fprintln(m.writer, "Error:", err)
		return
	}
	fmt.Fprintln(m.writer, "\nErrors by category:")
	for _, entry := range summary {
		fmt.Fprintf(m.writer, "  %s: %d\n", entry.Category, entry.Count)
	}
}

func (m *Menu) settingsMenu() {
	for {
		fmt.Fprintln(m.writer, "\nSETTINGS")
		fmt.Fprintf(m.writer, "Current database: %s\n\n", m.database.Path())
		fmt.Fprintln(m.writer, "1. Change database path")
		fmt.Fprintln(m.writer, "2. View parsing patterns")
		fmt.Fprintln(m.writer, "3. Test log parsing on sample")
		fmt.Fprintln(m.writer, "4. Back to main menu")
		choice, ok := m.prompt("Enter choice (1-4): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.changeDatabasePath()
		case "2":
			m.viewParsingPatterns()
		case "3":
			m.testLogParsing()
		case "4":
			return
		default:
			fmt.Fprintln(m.writer, "Invalid choice. Please enter 1-4.")
		}
	}
}

func (m *Menu) changeDatabasePath() {
	newPath, ok := m.prompt(fmt.Sprintf("Enter new database path (current: %s): ", m.database.Path()))
	if !ok || newPath == "" {
		return
	}
	if err := m.database.Reopen(newPath); err != nil {
		fmt.Fprintln(m.writer, "Error switching database:", err)
		return
	}
	m.current.DatabasePath = newPath
	if err := settings.Save(m.settingsFilePath, m.current); err != nil {
		logrus.Warn("Cannot persist settings: ", err)
	}
	fmt.Fprintln(m.writer, "Database path changed to:", newPath)
}

func (m *Menu) viewParsingPatterns() {
	fmt.Fprintln(m.writer, "\nCurrent parsing patterns:")
	for _, entry := range pattern.All() {
		fmt.Fprintf(m.writer, "  %s: %s\n", entry.Name, entry.Expression.String())
	}
}

func (m *Menu) testLogParsing() {
	sampleLine, ok := m.prompt("Enter a sample log line to test parsing: ")
	if !ok || sampleLine == "" {
		return
	}
	entry, parsed := m.parser.ParseLogEntry(sampleLine)
	if !parsed {
		fmt.Fprintln(m.writer, "Failed to parse line")
		return
	}
	fmt.Fprintln(m.writer, "Parsed successfully:")
	fmt.Fprintf(m.writer, "  timestamp: %s\n", entry.Timestamp)
	fmt.Fprintf(m.writer, "  level: %s\n", entry.Level)
	fmt.Fprintf(m.writer, "  thread_id: %d\n", entry.ThreadID)
	fmt.Fprintf(m.writer, "  module: %s\n", entry.Module)
	fmt.Fprintf(m.writer, "  line_number: %d\n", entry.LineNumber)
	fmt.Fprintf(m.writer, "  message: %s\n", entry.Message)
	fmt.Fprintf(m.writer, "  log_type: %s\n", entry.LogType)
}
