package delegate

import "pbxscope.dev/analyzer/internal/entity"

// Aggregation rows returned by the query surface.
type TableCount struct {
	Table string
	Count int64
}

type DispositionCount struct {
	Disposition string
	Count       int64
}

type HourCount struct {
	Hour  int
	Count int64
}

type CallerCount struct {
	Caller string
	Count  int64
}

type EventTypeCount struct {
	EventType string
	Count     int64
}

type CategoryCount struct {
	Category string
	Count    int64
}

type DurationStats struct {
	Calls         int64
	TotalDuration int64
	MaxDuration   int64
	AvgDuration   float64
}

// DatabaseDelegate hides the concrete storage backend from the engines.
type DatabaseDelegate interface {
	Open(databasePath string) error
	Close() error
	Migrate() error

	// Batch storage for one extracted chunk.
	StoreExtracted(logEntries []entity.LogEntry, callRecords []entity.CallRecord,
		sipMessages []entity.SIPMessage, registrationEvents []entity.RegistrationEvent,
		systemEvents []entity.SystemEvent) error

	// Full table reads, used by the exporters.
	GetLogEntries() ([]entity.LogEntry, error)
	GetCallRecords() ([]entity.CallRecord, error)
	GetSIPMessages() ([]entity.SIPMessage, error)
	GetRegistrationEvents() ([]entity.RegistrationEvent, error)
	GetSystemEvents() ([]entity.SystemEvent, error)

	// Call record lookups.
	CallRecordsBySource(number string, limit int) ([]entity.CallRecord, error)
	CallRecordsByDestination(number string, limit int) ([]entity.CallRecord, error)
	CallRecordsByDisposition(disposition string, limit int) ([]entity.CallRecord, error)
	CallRecordsByDateRange(from string, to string, limit int) ([]entity.CallRecord, error)
	RecentCallRecords(limit int) ([]entity.CallRecord, error)

	// Aggregations.
	TableCounts() ([]TableCount, error)
	DispositionCounts() ([]DispositionCount, error)
	HourlyCallCounts() ([]HourCount, error)
	TopCallers(limit int) ([]CallerCount, error)
	CallDurationStats() (DurationStats, error)
	RecentRegistrationEvents(limit int) ([]entity.RegistrationEvent, error)
	RegistrationSummary() ([]EventTypeCount, error)
	RecentSystemEvents(limit int) ([]entity.SystemEvent, error)
	ErrorSummary() ([]CategoryCount, error)

	// Maintenance.
	ClearAll() error
	Vacuum() error
}
