package db

import (
	"time"

	"github.com/medtrack-app/medtrack/internal/models"
	"gorm.io/gorm"
)

type AcknowledgmentLogRepository struct {
	database *gorm.DB
}

func NewAcknowledgmentLogRepository(database *gorm.DB) *AcknowledgmentLogRepository {
	return &AcknowledgmentLogRepository{database: database}
}

// ListFiltered returns logs newest-first. Zero-valued userID/medicineID and
// nil bounds mean "no constraint"; the end bound is exclusive so callers
// control inclusivity.
func (repo *AcknowledgmentLogRepository) ListFiltered(userID uint, medicineID uint, start *time.Time, end *time.Time) ([]models.AcknowledgmentLog, error) {
	query := repo.database.Model(&models.AcknowledgmentLog{})
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if medicineID != 0 {
		query = query.Where("medicine_id = ?", medicineID)
	}
	if start != nil {
		query = query.Where("taken_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("taken_at < ?", *end)
	}

	logs := make([]models.AcknowledgmentLog, 0)
	if err := query.Order("taken_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *AcknowledgmentLogRepository) ListRecent(limit int) ([]models.AcknowledgmentLog, error) {
	logs := make([]models.AcknowledgmentLog, 0, limit)
	if err := repo.database.
		Order("taken_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *AcknowledgmentLogRepository) FindOwned(logID uint, userID uint) (models.AcknowledgmentLog, error) {
	var logRow models.AcknowledgmentLog
	if err := repo.database.
		Where("id = ? AND user_id = ?", logID, userID).
		First(&logRow).Error; err != nil {
		return models.AcknowledgmentLog{}, err
	}
	return logRow, nil
}

func (repo *AcknowledgmentLogRepository) Create(logRow *models.AcknowledgmentLog) error {
	return repo.database.Create(logRow).Error
}

func (repo *AcknowledgmentLogRepository) Save(logRow *models.AcknowledgmentLog) error {
	return repo.database.Save(logRow).Error
}

func (repo *AcknowledgmentLogRepository) Delete(logRow *models.AcknowledgmentLog) error {
	return repo.database.Delete(logRow).Error
}

func (repo *AcknowledgmentLogRepository) CountAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.AcknowledgmentLog{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
