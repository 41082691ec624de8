package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "daycareku_backend/internals/features/childcare/attendance/route"
	roomRoute "daycareku_backend/internals/features/childcare/rooms/route"
)

// ChildcareAdminRoutes 🔌 master data ruang
func ChildcareAdminRoutes(admin fiber.Router, db *gorm.DB) {
	roomRoute.RoomAdminRoutes(admin, db)
}

// ChildcareStaffRoutes 🔌 check-in/check-out anak di lantai
func ChildcareStaffRoutes(staff fiber.Router, db *gorm.DB) {
	attendanceRoute.ChildAttendanceStaffRoutes(staff, db)
}
