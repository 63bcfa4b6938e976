package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/medtrack-app/medtrack/internal/models"
)

var (
	ErrMissingMedicineFields = errors.New("name, dosage, and schedule_time are required")
	ErrInvalidScheduleTime   = errors.New("schedule_time must be in HH:MM format")
	ErrInvalidFrequency      = errors.New("frequency must be one of: daily, weekly, monthly")
	ErrMissingWeeklyDays     = errors.New("days of week must be specified for weekly frequency")
	ErrInvalidDaysOfWeek     = errors.New("invalid days format, use 0-6 for Sunday-Saturday")
	ErrInvalidDayOfMonth     = errors.New("day_of_month must be between 1 and 31")
)

// ValidateMedicine checks a fully-populated record, so it covers both
// creation and the result of a partial update.
func ValidateMedicine(medicine *models.Medicine) error {
	if strings.TrimSpace(medicine.Name) == "" ||
		strings.TrimSpace(medicine.Dosage) == "" ||
		strings.TrimSpace(medicine.ScheduleTime) == "" {
		return ErrMissingMedicineFields
	}
	if _, err := time.Parse("15:04", medicine.ScheduleTime); err != nil {
		return ErrInvalidScheduleTime
	}

	switch medicine.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
	default:
		return ErrInvalidFrequency
	}

	if medicine.Frequency == models.FrequencyWeekly && strings.TrimSpace(medicine.DaysOfWeek) == "" {
		return ErrMissingWeeklyDays
	}
	if medicine.DaysOfWeek != "" {
		if _, err := ParseDaysOfWeek(medicine.DaysOfWeek); err != nil {
			return err
		}
	}

	if medicine.DayOfMonth != nil && (*medicine.DayOfMonth < 1 || *medicine.DayOfMonth > 31) {
		return ErrInvalidDayOfMonth
	}

	return nil
}

// ParseDaysOfWeek parses a comma-separated list of weekday numbers where 0
// is Sunday and 6 is Saturday.
func ParseDaysOfWeek(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	days := make([]int, 0, len(parts))
	for _, part := range parts {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || day < 0 || day > 6 {
			return nil, ErrInvalidDaysOfWeek
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil, ErrInvalidDaysOfWeek
	}
	return days, nil
}
