package services

import (
	"errors"
	"time"

	"github.com/medtrack-app/medtrack/internal/models"
)

var (
	ErrLogNotFound         = errors.New("log not found")
	ErrMissingMedicineID   = errors.New("medicine_id is required")
	ErrMissingScheduledFor = errors.New("scheduled_for is required")
	ErrInvalidStatus       = errors.New("status must be one of: taken, skipped, delayed")
)

type LogStore interface {
	ListFiltered(userID uint, medicineID uint, start *time.Time, end *time.Time) ([]models.AcknowledgmentLog, error)
	ListRecent(limit int) ([]models.AcknowledgmentLog, error)
	FindOwned(logID uint, userID uint) (models.AcknowledgmentLog, error)
	Create(logRow *models.AcknowledgmentLog) error
	Save(logRow *models.AcknowledgmentLog) error
	Delete(logRow *models.AcknowledgmentLog) error
	CountAll() (int64, error)
}

// LogEntry is an acknowledgment joined with its medicine summary.
type LogEntry struct {
	models.AcknowledgmentLog
	Medicine MedicineSummary `json:"medicine"`
}

type LogCreateInput struct {
	MedicineID   uint
	Status       string
	Notes        string
	ScheduledFor time.Time
}

// LogUpdateInput changes status and notes only; nil fields stay unchanged.
type LogUpdateInput struct {
	Status *string
	Notes  *string
}

// LogService is strictly caller-scoped: every read and write filters on the
// caller's user id, admins included. Cross-user reporting lives in
// AdminService.
type LogService struct {
	logs      LogStore
	medicines MedicineStore
}

func NewLogService(logs LogStore, medicines MedicineStore) *LogService {
	return &LogService{logs: logs, medicines: medicines}
}

func ValidateStatus(status string) error {
	switch status {
	case models.StatusTaken, models.StatusSkipped, models.StatusDelayed:
		return nil
	default:
		return ErrInvalidStatus
	}
}

func (service *LogService) Create(user *models.User, input LogCreateInput) (LogEntry, error) {
	if input.MedicineID == 0 {
		return LogEntry{}, ErrMissingMedicineID
	}
	if input.ScheduledFor.IsZero() {
		return LogEntry{}, ErrMissingScheduledFor
	}

	status := input.Status
	if status == "" {
		status = models.StatusTaken
	}
	if err := ValidateStatus(status); err != nil {
		return LogEntry{}, err
	}

	// Ownership check before the write. Not atomic with the insert; a
	// concurrent medicine deletion is a benign race.
	medicine, err := service.medicines.FindOwned(input.MedicineID, user.ID)
	if err != nil {
		return LogEntry{}, ErrMedicineNotFound
	}

	now := time.Now()
	logRow := models.AcknowledgmentLog{
		UserID:         user.ID,
		MedicineID:     medicine.ID,
		Status:         status,
		Notes:          input.Notes,
		ScheduledFor:   input.ScheduledFor,
		TakenAt:        now,
		AcknowledgedAt: &now,
	}
	if err := service.logs.Create(&logRow); err != nil {
		return LogEntry{}, err
	}

	return LogEntry{AcknowledgmentLog: logRow, Medicine: summarizeMedicine(medicine)}, nil
}

func (service *LogService) ListFor(user *models.User) ([]LogEntry, error) {
	logs, err := service.logs.ListFiltered(user.ID, 0, nil, nil)
	if err != nil {
		return nil, err
	}
	return service.attachMedicines(logs)
}

// ListRangeFor filters on the acknowledgment timestamp; end is exclusive so
// the handler decides how wide an inclusive day bound is.
func (service *LogService) ListRangeFor(user *models.User, start time.Time, end time.Time) ([]LogEntry, error) {
	logs, err := service.logs.ListFiltered(user.ID, 0, &start, &end)
	if err != nil {
		return nil, err
	}
	return service.attachMedicines(logs)
}

func (service *LogService) GetFor(user *models.User, logID uint) (LogEntry, error) {
	logRow, err := service.logs.FindOwned(logID, user.ID)
	if err != nil {
		return LogEntry{}, ErrLogNotFound
	}
	entries, err := service.attachMedicines([]models.AcknowledgmentLog{logRow})
	if err != nil {
		return LogEntry{}, err
	}
	return entries[0], nil
}

func (service *LogService) Update(user *models.User, logID uint, input LogUpdateInput) (LogEntry, error) {
	logRow, err := service.logs.FindOwned(logID, user.ID)
	if err != nil {
		return LogEntry{}, ErrLogNotFound
	}

	if input.Status != nil {
		if err := ValidateStatus(*input.Status); err != nil {
			return LogEntry{}, err
		}
		logRow.Status = *input.Status
	}
	if input.Notes != nil {
		logRow.Notes = *input.Notes
	}
	now := time.Now()
	logRow.AcknowledgedAt = &now

	if err := service.logs.Save(&logRow); err != nil {
		return LogEntry{}, err
	}

	entries, err := service.attachMedicines([]models.AcknowledgmentLog{logRow})
	if err != nil {
		return LogEntry{}, err
	}
	return entries[0], nil
}

func (service *LogService) Delete(user *models.User, logID uint) error {
	logRow, err := service.logs.FindOwned(logID, user.ID)
	if err != nil {
		return ErrLogNotFound
	}
	return service.logs.Delete(&logRow)
}

func (service *LogService) attachMedicines(logs []models.AcknowledgmentLog) ([]LogEntry, error) {
	medicineIDs := make([]uint, 0, len(logs))
	seen := make(map[uint]struct{}, len(logs))
	for _, logRow := range logs {
		if _, ok := seen[logRow.MedicineID]; ok {
			continue
		}
		seen[logRow.MedicineID] = struct{}{}
		medicineIDs = append(medicineIDs, logRow.MedicineID)
	}

	medicines, err := service.medicines.ListByIDs(medicineIDs)
	if err != nil {
		return nil, err
	}
	summaries := medicineSummariesByID(medicines)

	entries := make([]LogEntry, 0, len(logs))
	for _, logRow := range logs {
		summary := summaries[logRow.MedicineID]
		summary.ID = logRow.MedicineID
		entries = append(entries, LogEntry{AcknowledgmentLog: logRow, Medicine: summary})
	}
	return entries, nil
}
