package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"pbxscope.dev/analyzer/internal/database/delegate/sqlite"
	"pbxscope.dev/analyzer/internal/entity"
)

func openDelegate(t *testing.T) *sqlite.SQLiteDelegate {
	t.Helper()
	instance := &sqlite.SQLiteDelegate{}
	if err := instance.Open(filepath.Join(t.TempDir(), "pbx_analysis.db")); err != nil {
		t.Fatal(err)
	}
	if err := instance.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { instance.Close() })
	return instance
}

func storeFixture(t *testing.T, instance *sqlite.SQLiteDelegate) {
	t.Helper()
	err := instance.StoreExtracted(
		[]entity.LogEntry{
			{Timestamp: "2024-03-15 10:30:45", Level: "VERBOSE", Message: "INSERT INTO cdr ...", LogType: "CDR"},
			{Timestamp: "2024-03-15 10:30:46", Level: "ERROR", Message: "MySQL gone", LogType: "DATABASE"},
		},
		[]entity.CallRecord{
			{CallDatetime: "2024-03-15 10:30:45", SourceNumber: "100", DestinationNumber: "200", Disposition: "ANSWERED", Duration: 65},
			{CallDatetime: "2024-03-15 11:00:00", SourceNumber: "100", DestinationNumber: "300", Disposition: "NO ANSWER", Duration: 0},
			{CallDatetime: "2024-03-16 09:00:00", SourceNumber: "101", DestinationNumber: "200", Disposition: "ANSWERED", Duration: 120},
		},
		[]entity.SIPMessage{
			{Timestamp: "2024-03-15 10:30:45", Direction: "TRANSMIT", MessageType: "REQUEST", BytesSize: 512, RemoteHost: "10.0.0.2", RemotePort: 5060},
		},
		[]entity.RegistrationEvent{
			{Timestamp: "2024-03-15 10:30:45", EventType: "ATTEMPT"},
			{Timestamp: "2024-03-15 10:30:46", EventType: "SUCCESS"},
		},
		[]entity.SystemEvent{
			{Timestamp: "2024-03-15 10:30:46", EventType: "ERROR", Category: "DATABASE", Description: "MySQL gone",
				ErrorCode: sql.NullInt64{Int64: 2002, Valid: true}},
		})
	if err != nil {
		t.Fatal(err)
	}
}

func TestStoreAndReadBack(t *testing.T) {
	instance := openDelegate(t)
	storeFixture(t, instance)

	logEntries, err := instance.GetLogEntries()
	assert.NoError(t, err)
	assert.Len(t, logEntries, 2)

	callRecords, err := instance.GetCallRecords()
	assert.NoError(t, err)
	assert.Len(t, callRecords, 3)

	sipMessages, err := instance.GetSIPMessages()
	assert.NoError(t, err)
	assert.Len(t, sipMessages, 1)
	assert.Equal(t, "10.0.0.2", sipMessages[0].RemoteHost)

	registrationEvents, err := instance.GetRegistrationEvents()
	assert.NoError(t, err)
	assert.Len(t, registrationEvents, 2)

	systemEvents, err := instance.GetSystemEvents()
	assert.NoError(t, err)
	assert.Len(t, systemEvents, 1)
	assert.EqualValues(t, 2002, systemEvents[0].ErrorCode.Int64)
}

func TestCallRecordQueries(t *testing.T) {
	instance := openDelegate(t)
	storeFixture(t, instance)

	bySource, err := instance.CallRecordsBySource("100", 20)
	assert.NoError(t, err)
	assert.Len(t, bySource, 2)

	byDestination, err := instance.CallRecordsByDestination("200", 20)
	assert.NoError(t, err)
	assert.Len(t, byDestination, 2)

	byDisposition, err := instance.CallRecordsByDisposition("ANSWERED", 20)
	assert.NoError(t, err)
	assert.Len(t, byDisposition, 2)

	byRange, err := instance.CallRecordsByDateRange("2024-03-15 00:00:00", "2024-03-15 23:59:59", 20)
	assert.NoError(t, err)
	assert.Len(t, byRange, 2)

	recent, err := instance.RecentCallRecords(2)
	assert.NoError(t, err)
	assert.Len(t, recent, 2)
	assert.Equal(t, "2024-03-16 09:00:00", recent[0].CallDatetime)
}

func TestAggregations(t *testing.T) {
	instance := openDelegate(t)
	storeFixture(t, instance)

	counts, err := instance.TableCounts()
	assert.NoError(t, err)
	assert.Len(t, counts, 5)
	assert.Equal(t, "call_records", counts[1].Table)
	assert.EqualValues(t, 3, counts[1].Count)

	dispositions, err := instance.DispositionCounts()
	assert.NoError(t, err)
	assert.Len(t, dispositions, 2)
	assert.Equal(t, "ANSWERED", dispositions[0].Disposition)
	assert.EqualValues(t, 2, dispositions[0].Count)

	hours, err := instance.HourlyCallCounts()
	assert.NoError(t, err)
	assert.Len(t, hours, 3)

	callers, err := instance.TopCallers(5)
	assert.NoError(t, err)
	assert.Equal(t, "100", callers[0].Caller)
	assert.EqualValues(t, 2, callers[0].Count)

	durations, err := instance.CallDurationStats()
	assert.NoError(t, err)
	assert.EqualValues(t, 3, durations.Calls)
	assert.EqualValues(t, 185, durations.TotalDuration)
	assert.EqualValues(t, 120, durations.MaxDuration)

	registrationSummary, err := instance.RegistrationSummary()
	assert.NoError(t, err)
	assert.Len(t, registrationSummary, 2)

	errorSummary, err := instance.ErrorSummary()
	assert.NoError(t, err)
	assert.Len(t, errorSummary, 1)
	assert.Equal(t, "DATABASE", errorSummary[0].Category)
}

func TestClearAllAndVacuum(t *testing.T) {
	instance := openDelegate(t)
	storeFixture(t, instance)

	assert.NoError(t, instance.ClearAll())
	callRecords, err := instance.GetCallRecords()
	assert.NoError(t, err)
	assert.Empty(t, callRecords)

	assert.NoError(t, instance.Vacuum())
}

func TestCloseWithoutOpen(t *testing.T) {
	instance := &sqlite.SQLiteDelegate{}
	assert.NoError(t, instance.Close())
}
