package entity

import "time"

type CallStatistic struct {
	ID                  uint `gorm:"primaryKey;autoIncrement"`
	Date                string
	Hour                int
	TotalCalls          int
	AnsweredCalls       int
	MissedCalls         int
	BusyCalls           int
	FailedCalls         int
	AvgDuration         float64
	MaxDuration         int
	TotalDuration       int
	UniqueCallers       int
	PeakConcurrentCalls int
	CalculatedAt        time.Time `gorm:"autoCreateTime;not null"`
}
