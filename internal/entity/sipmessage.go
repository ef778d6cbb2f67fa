package entity

import "database/sql"

type SIPMessage struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Timestamp    string `gorm:"index"`
	Direction    string
	MessageType  string
	Method       sql.NullString
	ResponseCode sql.NullInt64
	ResponseText sql.NullString
	BytesSize    int
	RemoteHost   string
	RemotePort   int
	Headers      sql.NullString
	Body         sql.NullString
	CallID       sql.NullString
	FromUser     sql.NullString
	ToUser       sql.NullString
	ViaBranch    sql.NullString
}
