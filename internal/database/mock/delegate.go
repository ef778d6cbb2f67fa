package mock

import (
	"sort"
	"strings"
	"sync"

	"pbxscope.dev/analyzer/internal/database/delegate"
	"pbxscope.dev/analyzer/internal/entity"
)

// MockDelegate keeps everything in memory and lets tests force failures.
type MockDelegate struct {
	FailOpen      bool
	FailMigration bool
	FailStore     bool
	Error         error

	Opened   bool
	Migrated bool
	Closed   bool
	Cleared  bool
	Vacuumed bool

	mutex              sync.Mutex
	LogEntries         []entity.LogEntry
	CallRecords        []entity.CallRecord
	SIPMessages        []entity.SIPMessage
	RegistrationEvents []entity.RegistrationEvent
	SystemEvents       []entity.SystemEvent
}

func (m *MockDelegate) Open(databasePath string) error {
	if m.FailOpen {
		return m.Error
	}
	m.Opened = true
	return nil
}

func (m *MockDelegate) Migrate() error {
	if m.FailMigration {
		return m.Error
	}
	m.Migrated = true
	return nil
}

func (m *MockDelegate) Close() error {
	m.Closed = true
	return nil
}

func (m *MockDelegate) StoreExtracted(logEntries []entity.LogEntry,
	callRecords []entity.CallRecord, sipMessages []entity.SIPMessage,
	registrationEvents []entity.RegistrationEvent, systemEvents []entity.SystemEvent) error {
	if m.FailStore {
		return m.Error
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.LogEntries = append(m.LogEntries, logEntries...)
	m.CallRecords = append(m.CallRecords, callRecords...)
	m.SIPMessages = append(m.SIPMessages, sipMessages...)
	m.RegistrationEvents = append(m.RegistrationEvents, registrationEvents...)
	m.SystemEvents = append(m.SystemEvents, systemEvents...)
	return nil
}

func (m *MockDelegate) GetLogEntries() ([]entity.LogEntry, error) {
	return m.LogEntries, nil
}

func (m *MockDelegate) GetCallRecords() ([]entity.CallRecord, error) {
	return m.CallRecords, nil
}

func (m *MockDelegate) GetSIPMessages() ([]entity.SIPMessage, error) {
	return m.SIPMessages, nil
}

func (m *MockDelegate) GetRegistrationEvents() ([]entity.RegistrationEvent, error) {
	return m.RegistrationEvents, nil
}

func (m *MockDelegate) GetSystemEvents() ([]entity.SystemEvent, error) {
	return m.SystemEvents, nil
}

func (m *MockDelegate) CallRecordsBySource(number string, limit int) (records []entity.CallRecord, err error) {
	for _, record := range m.CallRecords {
		if strings.Contains(record.SourceNumber, number) {
			records = append(records, record)
		}
	}
	return truncate(records, limit), nil
}

func (m *MockDelegate) CallRecordsByDestination(number string, limit int) (records []entity.CallRecord, err error) {
	for _, record := range m.CallRecords {
		if strings.Contains(record.DestinationNumber, number) {
			records = append(records, record)
		}
	}
	return truncate(records, limit), nil
}

func (m *MockDelegate) CallRecordsByDisposition(disposition string, limit int) (records []entity.CallRecord, err error) {
	for _, record := range m.CallRecords {
		if record.Disposition == disposition {
			records = append(records, record)
		}
	}
	return truncate(records, limit), nil
}

func (m *MockDelegate) CallRecordsByDateRange(from string, to string, limit int) (records []entity.CallRecord, err error) {
	for _, record := range m.CallRecords {
		if record.CallDatetime >= from && record.CallDatetime <= to {
			records = append(records, record)
		}
	}
	return truncate(records, limit), nil
}

func (m *MockDelegate) RecentCallRecords(limit int) ([]entity.CallRecord, error) {
	records := append([]entity.CallRecord{}, m.CallRecords...)
	sort.Slice(records, func(i, j int) bool {
		return records[i].CallDatetime > records[j].CallDatetime
	})
	return truncate(records, limit), nil
}

func (m *MockDelegate) TableCounts() ([]delegate.TableCount, error) {
	return []delegate.TableCount{
		{Table: "log_entries", Count: int64(len(m.LogEntries))},
		{Table: "call_records", Count: int64(len(m.CallRecords))},
		{Table: "sip_messages", Count: int64(len(m.SIPMessages))},
		{Table: "registration_events", Count: int64(len(m.RegistrationEvents))},
		{Table: "system_events", Count: int64(len(m.SystemEvents))},
	}, nil
}

func (m *MockDelegate) DispositionCounts() (counts []delegate.DispositionCount, err error) {
	grouped := map[string]int64{}
	for _, record := range m.CallRecords {
		grouped[record.Disposition]++
	}
	for disposition, count := range grouped {
		counts = append(counts, delegate.DispositionCount{Disposition: disposition, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return
}

func (m *MockDelegate) HourlyCallCounts() (counts []delegate.HourCount, err error) {
	grouped := map[int]int64{}
	for _, record := range m.CallRecords {
		if len(record.CallDatetime) >= 13 {
			hour := int(record.CallDatetime[11]-'0')*10 + int(record.CallDatetime[12]-'0')
			grouped[hour]++
		}
	}
	for hour, count := range grouped {
		counts = append(counts, delegate.HourCount{Hour: hour, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return
}

func (m *MockDelegate) TopCallers(limit int) (counts []delegate.CallerCount, err error) {
	grouped := map[string]int64{}
	for _, record := range m.CallRecords {
		grouped[record.SourceNumber]++
	}
	for caller, count := range grouped {
		counts = append(counts, delegate.CallerCount{Caller: caller, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	counts = truncate(counts, limit)
	return
}

func (m *MockDelegate) CallDurationStats() (stats delegate.DurationStats, err error) {
	for _, record := range m.CallRecords {
		stats.Calls++
		stats.TotalDuration += int64(record.Duration)
		if int64(record.Duration) > stats.MaxDuration {
			stats.MaxDuration = int64(record.Duration)
		}
	}
	if stats.Calls > 0 {
		stats.AvgDuration = float64(stats.TotalDuration) / float64(stats.Calls)
	}
	return
}

func (m *MockDelegate) RecentRegistrationEvents(limit int) ([]entity.RegistrationEvent, error) {
	events := append([]entity.RegistrationEvent{}, m.RegistrationEvents...)
	sort.Slice(events, func(i, j int) bool { return events[i].Timestamp > events[j].Timestamp })
	return truncate(events, limit), nil
}

func (m *MockDelegate) RegistrationSummary() (counts []delegate.EventTypeCount, err error) {
	grouped := map[string]int64{}
	for _, event := range m.RegistrationEvents {
		grouped[event.EventType]++
	}
	for eventType, count := range grouped {
		counts = append(counts, delegate.EventTypeCount{EventType: eventType, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].EventType < counts[j].EventType })
	return
}

func (m *MockDelegate) RecentSystemEvents(limit int) ([]entity.SystemEvent, error) {
	events := append([]entity.SystemEvent{}, m.SystemEvents...)
	sort.Slice(events, func(i, j int) bool { return events[i].Timestamp > events[j].Timestamp })
	return truncate(events, limit), nil
}

func (m *MockDelegate) ErrorSummary() (counts []delegate.CategoryCount, err error) {
	grouped := map[string]int64{}
	for _, event := range m.SystemEvents {
		if event.EventType == "ERROR" {
			grouped[event.Category]++
		}
	}
	for category, count := range grouped {
		counts = append(counts, delegate.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return
}

func (m *MockDelegate) ClearAll() error {
	m.LogEntries = nil
	m.CallRecords = nil
	m.SIPMessages = nil
	m.RegistrationEvents = nil
	m.SystemEvents = nil
	m.Cleared = true
	return nil
}

func (m *MockDelegate) Vacuum() error {
	m.Vacuumed = true
	return nil
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
