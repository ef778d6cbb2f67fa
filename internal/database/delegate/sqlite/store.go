package sqlite

import (
	"gorm.io/gorm"
	"pbxscope.dev/analyzer/internal/entity"
)

// StoreExtracted persists one extracted chunk in a single transaction.
func (sqliteDelegate *SQLiteDelegate) StoreExtracted(logEntries []entity.LogEntry,
	callRecords []entity.CallRecord, sipMessages []entity.SIPMessage,
	registrationEvents []entity.RegistrationEvent, systemEvents []entity.SystemEvent) error {
	return sqliteDelegate.database.Transaction(func(transaction *gorm.DB) (err error) {
		if len(logEntries) > 0 {
			if err = transaction.CreateInBatches(logEntries, insertBatchSize).Error; err != nil {
				return
			}
		}
		if len(callRecords) > 0 {
			if err = transaction.CreateInBatches(callRecords, insertBatchSize).Error; err != nil {
				return
			}
		}
		if len(sipMessages) > 0 {
			if err = transaction.CreateInBatches(sipMessages, insertBatchSize).Error; err != nil {
				return
			}
		}
		if len(registrationEvents) > 0 {
			if err = transaction.CreateInBatches(registrationEvents, insertBatchSize).Error; err != nil {
				return
			}
		}
		if len(systemEvents) > 0 {
			if err = transaction.CreateInBatches(systemEvents, insertBatchSize).Error; err != nil {
				return
			}
		}
		return
	})
}

func (sqliteDelegate *SQLiteDelegate) GetLogEntries() (entities []entity.LogEntry, err error) {
	if result := sqliteDelegate.database.Find(&entities); result.Error != nil {
		err = result.Error
		return
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) GetCallRecords() (entities []entity.CallRecord, err error) {
	if result := sqliteDelegate.database.Find(&entities); result.Error != nil {
		err = result.Error
		return
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) GetSIPMessages() (entities []entity.SIPMessage, err error) {
	if result := sqliteDelegate.database.Find(&entities); result.Error != nil {
		err = result.Error
		return
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) GetRegistrationEvents() (entities []entity.RegistrationEvent, err error) {
	if result := sqliteDelegate.database.Find(&entities); result.Error != nil {
		err = result.Error
		return
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) GetSystemEvents() (entities []entity.SystemEvent, err error) {
	if result := sqliteDelegate.database.Find(&entities); result.Error != nil {
		err = result.Error
		return
	}
	return
}
