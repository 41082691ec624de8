package route

import (
	leaveController "daycareku_backend/internals/features/hr/leave/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LeaveStaffRoutes: pengajuan cuti oleh staf
func LeaveStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := leaveController.NewLeaveController(db)
	leaves := r.Group("/leave-requests")
	leaves.Post("/", ctl.CreateLeaveRequest) // POST /staff/leave-requests
}

// LeaveAdminRoutes: daftar + keputusan
func LeaveAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := leaveController.NewLeaveController(db)
	leaves := r.Group("/leave-requests")
	leaves.Get("/", ctl.ListLeaveRequests)           // GET /admin/leave-requests?employee_id=&status=
	leaves.Put("/:id/decide", ctl.DecideLeaveRequest) // PUT /admin/leave-requests/:id/decide
}
