package sqlite

import "pbxscope.dev/analyzer/internal/entity"

// ClearAll wipes every analysis table, keeping the schema.
func (sqliteDelegate *SQLiteDelegate) ClearAll() (err error) {
	models := []interface{}{
		&entity.LogEntry{}, &entity.CallRecord{}, &entity.SIPMessage{},
		&entity.RegistrationEvent{}, &entity.SystemEvent{}, &entity.CallStatistic{},
	}
	for _, model := range models {
		if err = sqliteDelegate.database.Where("1 = 1").Delete(model).Error; err != nil {
			return
		}
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) Vacuum() error {
	return sqliteDelegate.database.Exec("VACUUM").Error
}
