package entity

import "database/sql"

type RegistrationEvent struct {
	ID                   uint   `gorm:"primaryKey;autoIncrement"`
	Timestamp            string `gorm:"index"`
	EventType            string `gorm:"index"`
	AttemptNumber        sql.NullInt64
	ServerURI            sql.NullString
	ClientURI            sql.NullString
	ResponseCode         sql.NullInt64
	ResponseText         sql.NullString
	Username             sql.NullString
	Realm                sql.NullString
	Nonce                sql.NullString
	RegistrationDuration sql.NullInt64
}
