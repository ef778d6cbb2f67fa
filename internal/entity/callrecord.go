package entity

import "database/sql"

type CallRecord struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement"`
	CallDatetime       string `gorm:"index"`
	TimestampUnix      int64
	UID                string
	CallerID           string
	SourceNumber       string `gorm:"index"`
	SourceName         string
	DestinationNumber  string `gorm:"index"`
	DestinationName    string
	Context            string
	Channel            string
	DestinationChannel string
	Trunk              string
	LastApp            string
	LastData           string
	Duration           int
	RingDuration       int
	TalkDuration       int
	Disposition        string `gorm:"index"`
	CallType           string
	UniqueID           string
	RecordingFile      sql.NullString
	RecordingPath      sql.NullString
	Amount             sql.NullFloat64
	CallFlow           sql.NullString
	CallFlowNumber     sql.NullString
	ParsedData         string
}
