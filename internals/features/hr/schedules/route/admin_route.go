package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "daycareku_backend/internals/features/hr/schedules/controller"
)

// ScheduleAdminRoutes 🔌 route admin untuk shift template & penugasan jadwal
func ScheduleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewScheduleController(db)

	tpl := api.Group("/shift-templates")
	tpl.Post("/", ctrl.CreateShiftTemplate)
	tpl.Get("/", ctrl.ListShiftTemplates)

	asg := api.Group("/schedule-assignments")
	asg.Post("/", ctrl.CreateAssignment)
	asg.Get("/", ctrl.ListAssignments)
	asg.Delete("/:id", ctrl.DeleteAssignment)
}
