package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"pbxscope.dev/analyzer/internal/entity"
)

// Batch size for bulk inserts.
const insertBatchSize = 500

type SQLiteDelegate struct {
	database *gorm.DB
}

func (sqliteDelegate *SQLiteDelegate) Open(databasePath string) (err error) {
	if directory := filepath.Dir(databasePath); directory != "." {
		if _, err = os.Stat(directory); os.IsNotExist(err) {
			if err = os.MkdirAll(directory, 0755); err != nil {
				return
			}
		}
	}
	dialector := sqlite.Open(databasePath)
	if sqliteDelegate.database, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}); err != nil {
		return
	}
	return sqliteDelegate.optimize()
}

// optimize applies the pragmas the analyzer has always run with.
func (sqliteDelegate *SQLiteDelegate) optimize() (err error) {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA cache_size=10000",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if err = sqliteDelegate.database.Exec(pragma).Error; err != nil {
			return
		}
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) Migrate() (err error) {
	return sqliteDelegate.database.AutoMigrate(&entity.LogEntry{},
		&entity.SIPMessage{}, &entity.CallRecord{}, &entity.RegistrationEvent{},
		&entity.SystemEvent{}, &entity.CallStatistic{})
}

func (sqliteDelegate *SQLiteDelegate) Close() (err error) {
	if sqliteDelegate.database == nil {
		return
	}
	var database *sql.DB
	if database, err = sqliteDelegate.database.DB(); err != nil {
		return
	}
	if err = database.Close(); err != nil {
		return
	}
	return
}
