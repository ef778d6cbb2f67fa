package menu

import (
	"fmt"

	"pbxscope.dev/analyzer/internal/entity"
	"pbxscope.dev/analyzer/internal/helpers"
)

func (m *Menu) searchCallRecords() {
	for {
		fmt.Fprintln(m.writer, "\nSEARCH CALL RECORDS")
		fmt.Fprintln(m.writer, "1. Search by source number")
		fmt.Fprintln(m.writer, "2. Search by destination number")
		fmt.Fprintln(m.writer, "3. Search by disposition")
		fmt.Fprintln(m.writer, "4. Search by date range")
		fmt.Fprintln(m.writer, "5. Show recent calls")
		fmt.Fprintln(m.writer, "6. Back to main menu")
		choice, ok := m.prompt("Enter choice (1-6): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.searchBySource()
		case "2":
			m.searchByDestination()
		case "3":
			m.searchByDisposition()
		case "4":
			m.searchByDateRange()
		case "5":
			m.showRecentCalls()
		case "6":
			return
		default:
			fmt.Fprintln(m.writer, "Invalid choice. Please enter 1-6.")
		}
	}
}

func (m *Menu) searchBySource() {
	number, ok := m.prompt("Enter source number: ")
	if !ok || number == "" {
		return
	}
	records, err := m.search.CallsBySource(number)
	if err != nil {
		fmt.Fprintln(m.writer, "Error:", err)
		return
	}
	m.printCallRecords(records)
}

func (m *Menu) searchByDestination() {
	number, ok := m.prompt("Enter destination number: ")
	if !ok || number == "" {
		return
	}
	records, err := m.search.CallsByDestination(number)
	if err != nil {
		fmt.Fprintln(m.writer, "Error:", err)
		return
	}
	m.printCallRecords(records)
}

func (m *Menu) searchByDisposition() {
	disposition, ok := m.prompt("Enter disposition (e.g., ANSWERED, NO ANSWER, BUSY): ")
	if !ok || disposition == "" {
		return
	}
	records, err := m.search.CallsByDisposition(disposition)
	if err != nil {
		fmt.Fprintln(m.writer, "Error:", err)
		return
	}
	m.printCallRecords(records)
}

func (m *Menu) searchByDateRange() {
	from, ok := m.prompt("Enter start date (YYYY-MM-DD HH:MM:SS): ")
	if !ok || from == "" {
		return
	}
	to, ok := m.prompt("Enter end date (YYYY-MM-DD HH:MM:SS): ")
	if !ok || to == "" {
		return
	}
	records, err := m.search.CallsByDateRange(from, to)
	if err != nil {
		fmt.Fprintln(m.writer, "Error:", err)
		return
	}
	m.printCallRecords(records)
}

func (m *Menu) showRecentCalls() {
	records, err := m.search.RecentCalls()
	if err != nil {
		fmt.Fprintln(m.writer, "Error:", err)
		return
	}
	m.printCallRecords(records)
}

func (m *Menu) printCallRecords(records []entity.CallRecord) {
	if len(records) == 0 {
		fmt.Fprintln(m.writer, "No matching call records")
		return
	}
	fmt.Fprintf(m.writer, "\nFound %d call records:\n", len(records))
	for _, record := range records {
		fmt.Fprintf(m.writer, "  [%s] %s -> %s (%s, %s, trunk %s)\n",
			record.CallDatetime, record.SourceNumber, record.DestinationNumber,
			record.Disposition, helpers.FormatDuration(record.Duration), record.Trunk)
	}
}
