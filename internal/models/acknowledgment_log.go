package models

import "time"

const (
	StatusTaken   = "taken"
	StatusSkipped = "skipped"
	StatusDelayed = "delayed"
)

// AcknowledgmentLog records that a dose was taken, skipped or delayed
// relative to its scheduled time. Append-mostly: updates only touch status,
// notes and the acknowledged_at stamp.
type AcknowledgmentLog struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;index:idx_ack_user_medicine_time" json:"user_id"`
	MedicineID     uint       `gorm:"not null;index:idx_ack_user_medicine_time" json:"medicine_id"`
	Status         string     `gorm:"not null;default:taken" json:"status"`
	ScheduledFor   time.Time  `gorm:"not null" json:"scheduled_for"`
	TakenAt        time.Time  `gorm:"not null;index:idx_ack_user_medicine_time" json:"taken_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
