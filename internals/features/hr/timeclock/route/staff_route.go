package route

import (
	timeclockController "daycareku_backend/internals/features/hr/timeclock/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Staff routes: clock-in/out + daftar harian
Mount contoh: TimeclockStaffRoutes(app.Group("/staff"), db)
*/
func TimeclockStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := timeclockController.NewTimeclockController(db)
	tc := r.Group("/timeclock")
	tc.Post("/clock-in", ctl.ClockIn)       // POST /staff/timeclock/clock-in
	tc.Put("/:id/clock-out", ctl.ClockOut)  // PUT  /staff/timeclock/:id/clock-out
	tc.Get("/", ctl.ListEntries)            // GET  /staff/timeclock?date=&employee_id=&open=
}
