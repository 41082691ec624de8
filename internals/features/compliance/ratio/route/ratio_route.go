package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ratioController "daycareku_backend/internals/features/compliance/ratio/controller"
	"daycareku_backend/internals/middlewares"
)

// RatioAdminRoutes 🔌 trigger pass, history, dan settings (admin/direktur)
func RatioAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := ratioController.NewRatioController(db)

	ratio := api.Group("/ratio")
	ratio.Post("/record", middlewares.SnapshotTriggerRateLimiter(), ctrl.RecordNow)

	ratio.Get("/history/daily", ctrl.DailySummary)
	ratio.Get("/history/by-age-group", ctrl.SummaryByAgeGroup)
	ratio.Get("/history/trend", ctrl.Trend)
	ratio.Get("/history/peak-hours", ctrl.PeakHours)
	ratio.Get("/snapshots", ctrl.ListSnapshots)

	ratio.Get("/settings", ctrl.GetSettings)
	ratio.Put("/settings", ctrl.UpdateSettings)
}

// RatioStaffRoutes 🔌 view realtime untuk staf lantai
func RatioStaffRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := ratioController.NewRatioController(db)

	ratio := api.Group("/ratio")
	ratio.Get("/realtime", ctrl.Realtime)
}
