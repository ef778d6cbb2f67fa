package entity

import "time"

type LogEntry struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Timestamp  string `gorm:"index"`
	Level      string
	ThreadID   int
	Module     string
	LineNumber int
	Message    string
	LogType    string    `gorm:"index"`
	ParsedAt   time.Time `gorm:"autoCreateTime;not null"`
}
