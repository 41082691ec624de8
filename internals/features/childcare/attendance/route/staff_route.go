package route

import (
	attendanceController "daycareku_backend/internals/features/childcare/attendance/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Staff routes: check-in/out anak + daftar harian
Mount contoh: ChildAttendanceStaffRoutes(app.Group("/staff"), db)
*/
func ChildAttendanceStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewChildAttendanceController(db)
	att := r.Group("/child-attendances")
	att.Post("/check-in", ctl.CheckIn)          // POST /staff/child-attendances/check-in
	att.Put("/:id/check-out", ctl.CheckOut)     // PUT  /staff/child-attendances/:id/check-out
	att.Get("/", ctl.ListAttendances)           // GET  /staff/child-attendances?date=&age_group=&present=
}
