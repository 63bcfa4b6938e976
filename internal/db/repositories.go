package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Medicines *MedicineRepository
	Logs      *AcknowledgmentLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Medicines: NewMedicineRepository(database),
		Logs:      NewAcknowledgmentLogRepository(database),
	}
}
