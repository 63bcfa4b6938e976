package services

import (
	"time"

	"github.com/medtrack-app/medtrack/internal/models"
)

const recentLogsLimit = 5

type AdminUserStore interface {
	ListByRole(role string) ([]models.User, error)
	ListByIDs(userIDs []uint) ([]models.User, error)
	CountByRole(role string) (int64, error)
}

// AdminService answers the cross-user reporting queries. All of it is
// read-only; admin mutations go through the regular services with the admin
// scoping rules.
type AdminService struct {
	users     AdminUserStore
	medicines MedicineStore
	logs      LogStore
}

func NewAdminService(users AdminUserStore, medicines MedicineStore, logs LogStore) *AdminService {
	return &AdminService{users: users, medicines: medicines, logs: logs}
}

type PatientListing struct {
	Patients      []models.User `json:"patients"`
	TotalPatients int64         `json:"total_patients"`
	Count         int64         `json:"count"`
}

func (service *AdminService) Patients() (PatientListing, error) {
	patients, err := service.users.ListByRole(models.RoleUser)
	if err != nil {
		return PatientListing{}, err
	}
	total := int64(len(patients))
	return PatientListing{Patients: patients, TotalPatients: total, Count: total}, nil
}

type AdminMedicineEntry struct {
	models.Medicine
	User UserSummary `json:"user"`
}

func (service *AdminService) Medicines() ([]AdminMedicineEntry, error) {
	medicines, err := service.medicines.ListAll()
	if err != nil {
		return nil, err
	}

	owners, err := service.users.ListByIDs(collectUserIDs(medicineOwnerIDs(medicines)))
	if err != nil {
		return nil, err
	}
	summaries := userSummariesByID(owners)

	entries := make([]AdminMedicineEntry, 0, len(medicines))
	for _, medicine := range medicines {
		summary := summaries[medicine.UserID]
		summary.ID = medicine.UserID
		entries = append(entries, AdminMedicineEntry{Medicine: medicine, User: summary})
	}
	return entries, nil
}

type AdminLogEntry struct {
	models.AcknowledgmentLog
	User     UserSummary     `json:"user"`
	Medicine MedicineSummary `json:"medicine"`
}

// Logs lists all users' acknowledgments, optionally narrowed by user,
// medicine and an exclusive-end time window on taken_at.
func (service *AdminService) Logs(userID uint, medicineID uint, start *time.Time, end *time.Time) ([]AdminLogEntry, error) {
	logs, err := service.logs.ListFiltered(userID, medicineID, start, end)
	if err != nil {
		return nil, err
	}
	return service.joinLogEntries(logs)
}

type DashboardStats struct {
	TotalUsers     int64           `json:"total_users"`
	TotalMedicines int64           `json:"total_medicines"`
	TotalLogs      int64           `json:"total_logs"`
	RecentLogs     []AdminLogEntry `json:"recent_logs"`
}

func (service *AdminService) Dashboard() (DashboardStats, error) {
	totalUsers, err := service.users.CountByRole(models.RoleUser)
	if err != nil {
		return DashboardStats{}, err
	}
	totalMedicines, err := service.medicines.CountAll()
	if err != nil {
		return DashboardStats{}, err
	}
	totalLogs, err := service.logs.CountAll()
	if err != nil {
		return DashboardStats{}, err
	}

	recent, err := service.logs.ListRecent(recentLogsLimit)
	if err != nil {
		return DashboardStats{}, err
	}
	recentEntries, err := service.joinLogEntries(recent)
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		TotalUsers:     totalUsers,
		TotalMedicines: totalMedicines,
		TotalLogs:      totalLogs,
		RecentLogs:     recentEntries,
	}, nil
}

func (service *AdminService) joinLogEntries(logs []models.AcknowledgmentLog) ([]AdminLogEntry, error) {
	userIDs := make(map[uint]struct{}, len(logs))
	medicineIDs := make(map[uint]struct{}, len(logs))
	for _, logRow := range logs {
		userIDs[logRow.UserID] = struct{}{}
		medicineIDs[logRow.MedicineID] = struct{}{}
	}

	users, err := service.users.ListByIDs(collectUserIDs(userIDs))
	if err != nil {
		return nil, err
	}
	medicines, err := service.medicines.ListByIDs(collectUserIDs(medicineIDs))
	if err != nil {
		return nil, err
	}
	userSummaries := userSummariesByID(users)
	medicineSummaries := medicineSummariesByID(medicines)

	entries := make([]AdminLogEntry, 0, len(logs))
	for _, logRow := range logs {
		userSummary := userSummaries[logRow.UserID]
		userSummary.ID = logRow.UserID
		medicineSummary := medicineSummaries[logRow.MedicineID]
		medicineSummary.ID = logRow.MedicineID
		entries = append(entries, AdminLogEntry{
			AcknowledgmentLog: logRow,
			User:              userSummary,
			Medicine:          medicineSummary,
		})
	}
	return entries, nil
}

func medicineOwnerIDs(medicines []models.Medicine) map[uint]struct{} {
	ids := make(map[uint]struct{}, len(medicines))
	for _, medicine := range medicines {
		ids[medicine.UserID] = struct{}{}
	}
	return ids
}

func collectUserIDs(ids map[uint]struct{}) []uint {
	collected := make([]uint, 0, len(ids))
	for id := range ids {
		collected = append(collected, id)
	}
	return collected
}
