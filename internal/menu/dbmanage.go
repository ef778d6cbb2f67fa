package menu

import (
	"fmt"
	"os"

	"pbxscope.dev/analyzer/internal/helpers"
	"pbxscope.dev/analyzer/internal/report"
)

func (m *Menu) databaseManagement() {
	for {
		fmt.Fprintln(m.writer, "\nDATABASE MANAGEMENT")
		fmt.Fprintln(m.writer, "1. View database info")
		fmt.Fprintln(m.writer, "2. Export data to CSV")
		fmt.Fprintln(m.writer, "3. Clear all data")
		fmt.Fprintln(m.writer, "4. Vacuum database")
		fmt.Fprintln(m.writer, "5. Back to main menu")
		choice, ok := m.prompt("Enter choice (1-5): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.viewDatabaseInfo()
		case "2":
			m.exportCSV()
		case "3":
			m.clearAllData()
		case "4":
			m.vacuumDatabase()
		case "5":
			return
		default:
			fmt.Fprintln(m.writer, "Invalid choice. Please enter 1-5.")
		}
	}
}

func (m *Menu) viewDatabaseInfo() {
	fmt.Fprintf(m.writer, "\nDatabase: %s\n", m.database.Path())
	if _, err := os.Stat(m.database.Path()); err == nil {
		fmt.Fprintf(m.writer, "Size: %.2f MB\n", helpers.FileSizeMB(m.database.Path()))
	}
	counts, err := m.database.TableCounts()
	if err != nil {
		fmt.Fprintln(m.writer, "Error getting database info:", err)
		return
	}
	fmt.Fprintln(m.writer, "\nTable Statistics:")
	for _, count := range counts {
		fmt.Fprintf(m.writer, "  %s: %d records\n", count.Table, count.Count)
	}
}

func (m *Menu) exportCSV() {
	outputDirectory, ok := m.prompt(fmt.Sprintf("Enter output directory (default: %s): ", defaultExportDirectory))
	if !ok {
		return
	}
	if outputDirectory == "" {
		outputDirectory = defaultExportDirectory
	}
	exporter := report.NewCSVExporter(m.database.Delegate())
	if err := exporter.ExportAll(outputDirectory); err != nil {
		fmt.Fprintln(m.writer, "Error exporting data:", err)
		return
	}
	fmt.Fprintln(m.writer, "CSV export written to", outputDirectory)
}

func (m *Menu) clearAllData() {
	confirmation, ok := m.prompt("Are you sure you want to clear ALL data? (type 'YES' to confirm): ")
	if !ok {
		return
	}
	if confirmation != "YES" {
		fmt.Fprintln(m.writer, "Operation cancelled")
		return
	}
	if err := m.database.ClearAll(); err != nil {
		fmt.Fprintln(m.writer, "Error clearing data:", err)
		return
	}
	fmt.Fprintln(m.writer, "All data cleared")
}

func (m *Menu) vacuumDatabase() {
	if err := m.database.Vacuum(); err != nil {
		fmt.Fprintln(m.writer, "Error vacuuming database:", err)
		return
	}
	fmt.Fprintln(m.writer, "Database vacuumed")
}
