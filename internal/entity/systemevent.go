package entity

import "database/sql"

type SystemEvent struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Timestamp   string `gorm:"index"`
	EventType   string
	Category    string `gorm:"index"`
	Description string
	ErrorCode   sql.NullInt64
	Details     sql.NullString
}
