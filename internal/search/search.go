package search

import (
	"pbxscope.dev/analyzer/internal/database/delegate"
	"pbxscope.dev/analyzer/internal/entity"
)

// Default result page sizes, matching the console views.
const (
	callResultLimit         = 20
	registrationResultLimit = 20
	systemEventResultLimit  = 30
	topCallerLimit          = 10
)

// CallStatistics aggregates everything the statistics view shows.
type CallStatistics struct {
	Durations    delegate.DurationStats
	Dispositions []delegate.DispositionCount
	BusiestHours []delegate.HourCount
	TopCallers   []delegate.CallerCount
}

// Search answers the console lookups over the stored analysis data.
type Search struct {
	delegate delegate.DatabaseDelegate
}

func NewSearch(databaseDelegate delegate.DatabaseDelegate) (instance *Search) {
	instance = &Search{delegate: databaseDelegate}
	return
}

func (s *Search) CallsBySource(number string) ([]entity.CallRecord, error) {
	return s.delegate.CallRecordsBySource(number, callResultLimit)
}

func (s *Search) CallsByDestination(number string) ([]entity.CallRecord, error) {
	return s.delegate.CallRecordsByDestination(number, callResultLimit)
}

func (s *Search) CallsByDisposition(disposition string) ([]entity.CallRecord, error) {
	return s.delegate.CallRecordsByDisposition(disposition, callResultLimit)
}

func (s *Search) CallsByDateRange(from string, to string) ([]entity.CallRecord, error) {
	return s.delegate.CallRecordsByDateRange(from, to, callResultLimit)
}

func (s *Search) RecentCalls() ([]entity.CallRecord, error) {
	return s.delegate.RecentCallRecords(callResultLimit)
}

func (s *Search) Statistics() (statistics CallStatistics, err error) {
	if statistics.Durations, err = s.delegate.CallDurationStats(); err != nil {
		return
	}
	if statistics.Dispositions, err = s.delegate.DispositionCounts(); err != nil {
		return
	}
	if statistics.BusiestHours, err = s.delegate.HourlyCallCounts(); err != nil {
		return
	}
	statistics.TopCallers, err = s.delegate.TopCallers(topCallerLimit)
	return
}

func (s *Search) RecentRegistrations() ([]entity.RegistrationEvent, error) {
	return s.delegate.RecentRegistrationEvents(registrationResultLimit)
}

func (s *Search) RegistrationSummary() ([]delegate.EventTypeCount, error) {
	return s.delegate.RegistrationSummary()
}

func (s *Search) RecentSystemEvents() ([]entity.SystemEvent, error) {
	return s.delegate.RecentSystemEvents(systemEventResultLimit)
}

func (s *Search) ErrorSummary() ([]delegate.CategoryCount, error) {
	return s.delegate.ErrorSummary()
}
