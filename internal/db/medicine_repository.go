package db

import (
	"github.com/medtrack-app/medtrack/internal/models"
	"gorm.io/gorm"
)

type MedicineRepository struct {
	database *gorm.DB
}

func NewMedicineRepository(database *gorm.DB) *MedicineRepository {
	return &MedicineRepository{database: database}
}

func (repo *MedicineRepository) ListByOwner(userID uint) ([]models.Medicine, error) {
	medicines := make([]models.Medicine, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (repo *MedicineRepository) ListActiveByOwner(userID uint) ([]models.Medicine, error) {
	medicines := make([]models.Medicine, 0)
	if err := repo.database.
		Where("user_id = ? AND active = ?", userID, true).
		Order("schedule_time ASC").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (repo *MedicineRepository) ListAll() ([]models.Medicine, error) {
	medicines := make([]models.Medicine, 0)
	if err := repo.database.Order("created_at DESC").Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (repo *MedicineRepository) ListByIDs(medicineIDs []uint) ([]models.Medicine, error) {
	medicines := make([]models.Medicine, 0, len(medicineIDs))
	if len(medicineIDs) == 0 {
		return medicines, nil
	}
	if err := repo.database.Where("id IN ?", medicineIDs).Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (repo *MedicineRepository) FindByID(medicineID uint) (models.Medicine, error) {
	var medicine models.Medicine
	if err := repo.database.First(&medicine, medicineID).Error; err != nil {
		return models.Medicine{}, err
	}
	return medicine, nil
}

func (repo *MedicineRepository) FindOwned(medicineID uint, userID uint) (models.Medicine, error) {
	var medicine models.Medicine
	if err := repo.database.
		Where("id = ? AND user_id = ?", medicineID, userID).
		First(&medicine).Error; err != nil {
		return models.Medicine{}, err
	}
	return medicine, nil
}

func (repo *MedicineRepository) Create(medicine *models.Medicine) error {
	return repo.database.Create(medicine).Error
}

func (repo *MedicineRepository) Save(medicine *models.Medicine) error {
	return repo.database.Save(medicine).Error
}

func (repo *MedicineRepository) Delete(medicine *models.Medicine) error {
	return repo.database.Delete(medicine).Error
}

func (repo *MedicineRepository) CountAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Medicine{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
