package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrack-app/medtrack/internal/models"
	"github.com/medtrack-app/medtrack/internal/services"
)

type medicineInput struct {
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	ScheduleTime string `json:"schedule_time"`
	Frequency    string `json:"frequency"`
	DaysOfWeek   string `json:"days_of_week"`
	DayOfMonth   *int   `json:"day_of_month"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Active       *bool  `json:"active"`
}

type medicineUpdateInput struct {
	Name         *string `json:"name"`
	Dosage       *string `json:"dosage"`
	ScheduleTime *string `json:"schedule_time"`
	Frequency    *string `json:"frequency"`
	DaysOfWeek   *string `json:"days_of_week"`
	DayOfMonth   *int    `json:"day_of_month"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Active       *bool   `json:"active"`
}

func (handler *Handler) ListMedicines(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	medicines, err := handler.medicineService.ListFor(user)
	if err != nil {
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error fetching medicines", err)
	}
	return c.JSON(medicines)
}

func (handler *Handler) MedicineSchedule(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	medicines, err := handler.medicineService.ScheduleFor(user)
	if err != nil {
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error fetching schedule", err)
	}
	return c.JSON(medicines)
}

func (handler *Handler) GetMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	medicineID, ok := pathID(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid medicine id")
	}

	medicine, err := handler.medicineService.GetFor(user, medicineID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "medicine not found")
	}
	return c.JSON(medicine)
}

func (handler *Handler) CreateMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := medicineInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	medicine := models.Medicine{
		Name:         input.Name,
		Dosage:       input.Dosage,
		ScheduleTime: input.ScheduleTime,
		Frequency:    input.Frequency,
		DaysOfWeek:   input.DaysOfWeek,
		DayOfMonth:   input.DayOfMonth,
		Active:       true,
	}
	if input.Active != nil {
		medicine.Active = *input.Active
	}
	if input.StartDate != "" {
		startDate, err := time.Parse(dateOnlyLayout, input.StartDate)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
		medicine.StartDate = startDate
	}
	if input.EndDate != "" {
		endDate, err := time.Parse(dateOnlyLayout, input.EndDate)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}
		medicine.EndDate = &endDate
	}

	if err := handler.medicineService.Create(user, &medicine); err != nil {
		return apiErrorDetail(c, fiber.StatusBadRequest, "error creating medicine", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "medicine created successfully",
		"medicine": medicine,
	})
}

func (handler *Handler) UpdateMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	medicineID, ok := pathID(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid medicine id")
	}

	input := medicineUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	update := services.MedicineUpdate{
		Name:         input.Name,
		Dosage:       input.Dosage,
		ScheduleTime: input.ScheduleTime,
		Frequency:    input.Frequency,
		DaysOfWeek:   input.DaysOfWeek,
		DayOfMonth:   input.DayOfMonth,
		Active:       input.Active,
	}
	if input.StartDate != nil {
		startDate, err := time.Parse(dateOnlyLayout, *input.StartDate)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
		update.StartDate = &startDate
	}
	if input.EndDate != nil {
		endDate, err := time.Parse(dateOnlyLayout, *input.EndDate)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}
		update.EndDate = &endDate
	}

	medicine, err := handler.medicineService.Update(user, medicineID, update)
	if err != nil {
		if errors.Is(err, services.ErrMedicineNotFound) {
			return apiError(c, fiber.StatusNotFound, "medicine not found")
		}
		return apiErrorDetail(c, fiber.StatusBadRequest, "error updating medicine", err)
	}

	return c.JSON(fiber.Map{
		"message":  "medicine updated successfully",
		"medicine": medicine,
	})
}

func (handler *Handler) DeleteMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	medicineID, ok := pathID(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid medicine id")
	}

	if err := handler.medicineService.Delete(user, medicineID); err != nil {
		if errors.Is(err, services.ErrMedicineNotFound) {
			return apiError(c, fiber.StatusNotFound, "medicine not found")
		}
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error deleting medicine", err)
	}
	return c.JSON(fiber.Map{"message": "medicine deleted successfully"})
}
