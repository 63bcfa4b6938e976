package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrack-app/medtrack/internal/services"
)

type createLogInput struct {
	UserID       uint   `json:"user_id"`
	MedicineID   uint   `json:"medicine_id"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	ScheduledFor string `json:"scheduled_for"`
}

type updateLogInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (handler *Handler) ListLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.logService.ListFor(user)
	if err != nil {
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error fetching logs", err)
	}
	return c.JSON(entries)
}

func (handler *Handler) LogsByRange(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	startRaw := c.Query("start_date")
	endRaw := c.Query("end_date")
	if startRaw == "" || endRaw == "" {
		return apiError(c, fiber.StatusBadRequest, "start date and end date are required")
	}

	start, err := parseRangeBound(startRaw, false)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start_date")
	}
	end, err := parseRangeBound(endRaw, true)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid end_date")
	}

	entries, err := handler.logService.ListRangeFor(user, start, end)
	if err != nil {
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error fetching logs", err)
	}
	return c.JSON(entries)
}

func (handler *Handler) GetLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	logID, ok := pathID(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	entry, err := handler.logService.GetFor(user, logID)
	if err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			return apiError(c, fiber.StatusNotFound, "log not found")
		}
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error fetching log", err)
	}
	return c.JSON(entry)
}

func (handler *Handler) CreateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := createLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.ScheduledFor == "" {
		return apiError(c, fiber.StatusBadRequest, "scheduled_for is required")
	}
	scheduledFor, err := parseTimestamp(input.ScheduledFor)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid scheduled_for")
	}

	entry, err := handler.logService.Create(user, services.LogCreateInput{
		MedicineID:   input.MedicineID,
		Status:       input.Status,
		Notes:        input.Notes,
		ScheduledFor: scheduledFor,
	})
	if err != nil {
		if errors.Is(err, services.ErrMedicineNotFound) {
			return apiError(c, fiber.StatusNotFound, "medicine not found")
		}
		return apiErrorDetail(c, fiber.StatusBadRequest, "error creating log", err)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	logID, ok := pathID(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	input := updateLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.logService.Update(user, logID, services.LogUpdateInput{
		Status: input.Status,
		Notes:  input.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			return apiError(c, fiber.StatusNotFound, "log not found")
		}
		return apiErrorDetail(c, fiber.StatusBadRequest, "error updating log", err)
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	logID, ok := pathID(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	if err := handler.logService.Delete(user, logID); err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			return apiError(c, fiber.StatusNotFound, "log not found")
		}
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error deleting log", err)
	}
	return c.JSON(fiber.Map{"message": "log deleted successfully"})
}
