package services

import (
	"errors"
	"time"

	"github.com/medtrack-app/medtrack/internal/models"
)

var ErrMedicineNotFound = errors.New("medicine not found")

type MedicineStore interface {
	ListByOwner(userID uint) ([]models.Medicine, error)
	ListActiveByOwner(userID uint) ([]models.Medicine, error)
	ListAll() ([]models.Medicine, error)
	ListByIDs(medicineIDs []uint) ([]models.Medicine, error)
	FindByID(medicineID uint) (models.Medicine, error)
	FindOwned(medicineID uint, userID uint) (models.Medicine, error)
	Create(medicine *models.Medicine) error
	Save(medicine *models.Medicine) error
	Delete(medicine *models.Medicine) error
	CountAll() (int64, error)
}

// MedicineUpdate carries a partial update; nil fields are left unchanged.
type MedicineUpdate struct {
	Name         *string
	Dosage       *string
	ScheduleTime *string
	Frequency    *string
	DaysOfWeek   *string
	DayOfMonth   *int
	StartDate    *time.Time
	EndDate      *time.Time
	Active       *bool
}

type MedicineService struct {
	medicines MedicineStore
}

func NewMedicineService(medicines MedicineStore) *MedicineService {
	return &MedicineService{medicines: medicines}
}

func (service *MedicineService) ListFor(user *models.User) ([]models.Medicine, error) {
	if user.IsAdmin() {
		return service.medicines.ListAll()
	}
	return service.medicines.ListByOwner(user.ID)
}

func (service *MedicineService) ScheduleFor(user *models.User) ([]models.Medicine, error) {
	return service.medicines.ListActiveByOwner(user.ID)
}

func (service *MedicineService) GetFor(user *models.User, medicineID uint) (models.Medicine, error) {
	return service.findScoped(user, medicineID)
}

func (service *MedicineService) Create(user *models.User, medicine *models.Medicine) error {
	medicine.UserID = user.ID
	if medicine.Frequency == "" {
		medicine.Frequency = models.FrequencyDaily
	}
	if medicine.StartDate.IsZero() {
		now := time.Now()
		medicine.StartDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	if err := ValidateMedicine(medicine); err != nil {
		return err
	}
	return service.medicines.Create(medicine)
}

func (service *MedicineService) Update(user *models.User, medicineID uint, update MedicineUpdate) (models.Medicine, error) {
	medicine, err := service.findScoped(user, medicineID)
	if err != nil {
		return models.Medicine{}, err
	}

	if update.Name != nil {
		medicine.Name = *update.Name
	}
	if update.Dosage != nil {
		medicine.Dosage = *update.Dosage
	}
	if update.ScheduleTime != nil {
		medicine.ScheduleTime = *update.ScheduleTime
	}
	if update.Frequency != nil {
		medicine.Frequency = *update.Frequency
	}
	if update.DaysOfWeek != nil {
		medicine.DaysOfWeek = *update.DaysOfWeek
	}
	if update.DayOfMonth != nil {
		medicine.DayOfMonth = update.DayOfMonth
	}
	if update.StartDate != nil {
		medicine.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		medicine.EndDate = update.EndDate
	}
	if update.Active != nil {
		medicine.Active = *update.Active
	}

	if err := ValidateMedicine(&medicine); err != nil {
		return models.Medicine{}, err
	}
	if err := service.medicines.Save(&medicine); err != nil {
		return models.Medicine{}, err
	}
	return medicine, nil
}

func (service *MedicineService) Delete(user *models.User, medicineID uint) error {
	medicine, err := service.findScoped(user, medicineID)
	if err != nil {
		return err
	}
	return service.medicines.Delete(&medicine)
}

func (service *MedicineService) findScoped(user *models.User, medicineID uint) (models.Medicine, error) {
	var (
		medicine models.Medicine
		err      error
	)
	if user.IsAdmin() {
		medicine, err = service.medicines.FindByID(medicineID)
	} else {
		medicine, err = service.medicines.FindOwned(medicineID, user.ID)
	}
	if err != nil {
		return models.Medicine{}, ErrMedicineNotFound
	}
	return medicine, nil
}
