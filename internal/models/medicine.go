package models

import "time"

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Medicine is a scheduling directive owned by a single user. ScheduleTime is
// a wall-clock HH:MM string; DaysOfWeek is a comma-separated list of 0-6
// (Sunday-Saturday) and is required for weekly frequency.
type Medicine struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	Name         string     `gorm:"not null" json:"name"`
	Dosage       string     `gorm:"not null" json:"dosage"`
	ScheduleTime string     `gorm:"not null" json:"schedule_time"`
	Frequency    string     `gorm:"not null;default:daily" json:"frequency"`
	DaysOfWeek   string     `json:"days_of_week,omitempty"`
	DayOfMonth   *int       `json:"day_of_month,omitempty"`
	StartDate    time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate      *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Active       bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
