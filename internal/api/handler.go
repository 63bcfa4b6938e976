package api

import (
	"time"

	"github.com/medtrack-app/medtrack/internal/config"
	"github.com/medtrack-app/medtrack/internal/db"
	"github.com/medtrack-app/medtrack/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	secretKey       []byte
	adminSecret     string
	tokenTTL        time.Duration
	authService     *services.AuthService
	medicineService *services.MedicineService
	logService      *services.LogService
	adminService    *services.AdminService
}

func NewHandler(database *gorm.DB, cfg *config.Config) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		db:              database,
		secretKey:       []byte(cfg.JWTSecret),
		adminSecret:     cfg.AdminSecret,
		tokenTTL:        cfg.TokenTTL,
		authService:     services.NewAuthService(repositories.Users),
		medicineService: services.NewMedicineService(repositories.Medicines),
		logService:      services.NewLogService(repositories.Logs, repositories.Medicines),
		adminService:    services.NewAdminService(repositories.Users, repositories.Medicines, repositories.Logs),
	}
}
