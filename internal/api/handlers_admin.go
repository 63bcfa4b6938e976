package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AdminPatients(c *fiber.Ctx) error {
	listing, err := handler.adminService.Patients()
	if err != nil {
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error fetching patients", err)
	}
	return c.JSON(listing)
}

func (handler *Handler) AdminMedicines(c *fiber.Ctx) error {
	entries, err := handler.adminService.Medicines()
	if err != nil {
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error fetching medicines", err)
	}
	return c.JSON(entries)
}

func (handler *Handler) AdminLogs(c *fiber.Ctx) error {
	entries, err := handler.adminService.Logs(0, 0, nil, nil)
	if err != nil {
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error fetching logs", err)
	}
	return c.JSON(entries)
}

// AdminFilteredLogs narrows by date range, user and medicine; all filters
// are optional and combinable. The range applies only when both bounds are
// present, matching the unfiltered listing otherwise.
func (handler *Handler) AdminFilteredLogs(c *fiber.Ctx) error {
	var start, end *time.Time
	startRaw := c.Query("start_date")
	endRaw := c.Query("end_date")
	if startRaw != "" && endRaw != "" {
		parsedStart, err := parseRangeBound(startRaw, false)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid start_date")
		}
		parsedEnd, err := parseRangeBound(endRaw, true)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid end_date")
		}
		start, end = &parsedStart, &parsedEnd
	}

	entries, err := handler.adminService.Logs(queryID(c, "user_id"), queryID(c, "medicine_id"), start, end)
	if err != nil {
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error fetching logs", err)
	}
	return c.JSON(entries)
}

func (handler *Handler) AdminDashboardStats(c *fiber.Ctx) error {
	stats, err := handler.adminService.Dashboard()
	if err != nil {
		return apiErrorDetail(c, fiber.StatusInternalServerError, "error fetching dashboard stats", err)
	}
	return c.JSON(stats)
}
