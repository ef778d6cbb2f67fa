package sqlite

import (
	"pbxscope.dev/analyzer/internal/database/delegate"
	"pbxscope.dev/analyzer/internal/entity"
)

func (sqliteDelegate *SQLiteDelegate) CallRecordsBySource(number string, limit int) (entities []entity.CallRecord, err error) {
	err = sqliteDelegate.database.
		Where("source_number LIKE ?", "%"+number+"%").
		Order("call_datetime DESC").Limit(limit).
		Find(&entities).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) CallRecordsByDestination(number string, limit int) (entities []entity.CallRecord, err error) {
	err = sqliteDelegate.database.
		Where("destination_number LIKE ?", "%"+number+"%").
		Order("call_datetime DESC").Limit(limit).
		Find(&entities).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) CallRecordsByDisposition(disposition string, limit int) (entities []entity.CallRecord, err error) {
	err = sqliteDelegate.database.
		Where("disposition = ?", disposition).
		Order("call_datetime DESC").Limit(limit).
		Find(&entities).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) CallRecordsByDateRange(from string, to string, limit int) (entities []entity.CallRecord, err error) {
	err = sqliteDelegate.database.
		Where("call_datetime BETWEEN ? AND ?", from, to).
		Order("call_datetime DESC").Limit(limit).
		Find(&entities).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) RecentCallRecords(limit int) (entities []entity.CallRecord, err error) {
	err = sqliteDelegate.database.
		Order("call_datetime DESC").Limit(limit).
		Find(&entities).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) TableCounts() (counts []delegate.TableCount, err error) {
	models := []struct {
		table string
		model interface{}
	}{
		{"log_entries", &entity.LogEntry{}},
		{"call_records", &entity.CallRecord{}},
		{"sip_messages", &entity.SIPMessage{}},
		{"registration_events", &entity.RegistrationEvent{}},
		{"system_events", &entity.SystemEvent{}},
	}
	for _, item := range models {
		var count int64
		if err = sqliteDelegate.database.Model(item.model).Count(&count).Error; err != nil {
			return
		}
		counts = append(counts, delegate.TableCount{Table: item.table, Count: count})
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) DispositionCounts() (counts []delegate.DispositionCount, err error) {
	err = sqliteDelegate.database.Model(&entity.CallRecord{}).
		Select("disposition, COUNT(*) AS count").
		Group("disposition").Order("count DESC").
		Scan(&counts).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) HourlyCallCounts() (counts []delegate.HourCount, err error) {
	err = sqliteDelegate.database.Model(&entity.CallRecord{}).
		Select("CAST(strftime('%H', call_datetime) AS INTEGER) AS hour, COUNT(*) AS count").
		Group("hour").Order("count DESC").
		Scan(&counts).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) TopCallers(limit int) (counts []delegate.CallerCount, err error) {
	err = sqliteDelegate.database.Model(&entity.CallRecord{}).
		Select("source_number AS caller, COUNT(*) AS count").
		Group("source_number").Order("count DESC").Limit(limit).
		Scan(&counts).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) CallDurationStats() (stats delegate.DurationStats, err error) {
	err = sqliteDelegate.database.Model(&entity.CallRecord{}).
		Select("COUNT(*) AS calls, " +
			"COALESCE(SUM(duration), 0) AS total_duration, " +
			"COALESCE(MAX(duration), 0) AS max_duration, " +
			"COALESCE(AVG(duration), 0) AS avg_duration").
		Scan(&stats).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) RecentRegistrationEvents(limit int) (entities []entity.RegistrationEvent, err error) {
	err = sqliteDelegate.database.
		Order("timestamp DESC").Limit(limit).
		Find(&entities).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) RegistrationSummary() (counts []delegate.EventTypeCount, err error) {
	err = sqliteDelegate.database.Model(&entity.RegistrationEvent{}).
		Select("event_type, COUNT(*) AS count").
		Group("event_type").
		Scan(&counts).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) RecentSystemEvents(limit int) (entities []entity.SystemEvent, err error) {
	err = sqliteDelegate.database.
		Order("timestamp DESC").Limit(limit).
		Find(&entities).Error
	return
}

func (sqliteDelegate *SQLiteDelegate) ErrorSummary() (counts []delegate.CategoryCount, err error) {
	err = sqliteDelegate.database.Model(&entity.SystemEvent{}).
		Select("category, COUNT(*) AS count").
		Where("event_type = ?", "ERROR").
		Group("category").Order("count DESC").
		Scan(&counts).Error
	return
}
