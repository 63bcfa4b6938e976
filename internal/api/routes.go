package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/create-admin", handler.CreateAdmin)

	medicines := app.Group("/medicines", handler.AuthRequired)
	medicines.Get("", handler.ListMedicines)
	medicines.Get("/schedule", handler.MedicineSchedule)
	medicines.Post("", handler.OwnershipRequired, handler.CreateMedicine)
	medicines.Get("/:id", handler.GetMedicine)
	medicines.Put("/:id", handler.UpdateMedicine)
	medicines.Delete("/:id", handler.DeleteMedicine)

	logs := app.Group("/logs", handler.AuthRequired)
	logs.Get("", handler.ListLogs)
	logs.Get("/range", handler.LogsByRange)
	logs.Post("", handler.OwnershipRequired, handler.CreateLog)
	logs.Get("/:id", handler.GetLog)
	logs.Put("/:id", handler.UpdateLog)
	logs.Delete("/:id", handler.DeleteLog)

	admin := app.Group("/admin", handler.AuthRequired, handler.AdminRequired)
	admin.Get("/patients", handler.AdminPatients)
	admin.Get("/medicines", handler.AdminMedicines)
	admin.Get("/logs", handler.AdminLogs)
	admin.Get("/logs/filtered", handler.AdminFilteredLogs)
	admin.Get("/dashboard/stats", handler.AdminDashboardStats)
}
