package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires the merged service surface. Guard strength varies
// by route group on purpose: /profile verifies the token, report and test
// routes only require that an Authorization header is present, and the
// medication and reminder routes are unguarded. See DESIGN.md.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.Health)
	app.Get("/test", handler.Test)

	app.Post("/register", handler.Register)
	app.Post("/login", handler.Login)
	app.Get("/profile", handler.RequireToken, handler.Profile)

	app.Get("/medications/:user_id", handler.ListMedications)
	app.Post("/add-medication", handler.AddMedication)
	app.Delete("/delete-medication/:id/:user_id", handler.DeleteMedication)
	app.Get("/medications-count/:user_id", handler.CountMedications)

	app.Get("/remainder/:user_id", handler.ListReminders)
	app.Post("/add-remainder", handler.AddReminder)
	app.Delete("/delete-remainder/:id/:user_id", handler.DeleteReminder)
	app.Get("/remainder-count/:user_id", handler.CountReminders)

	reports := app.Group("/reports", handler.RequireAuthHeader)
	reports.Post("", handler.CreateReport)
	reports.Get("/user/:user_id", handler.ListReports)
	reports.Delete("/:id/user/:user_id", handler.DeleteReport)
	app.Get("/reports-count/:user_id", handler.RequireAuthHeader, handler.CountReports)

	tests := app.Group("/tests", handler.RequireAuthHeader)
	tests.Post("", handler.CreateTestRecord)
	tests.Get("/user/:user_id", handler.ListTestRecords)
	tests.Delete("/:id/user/:user_id", handler.DeleteTestRecord)
	app.Get("/tests-count/:user_id", handler.RequireAuthHeader, handler.CountTestRecords)
}
