package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificationRoute "daycareku_backend/internals/features/hr/certifications/route"
	disciplinaryRoute "daycareku_backend/internals/features/hr/disciplinary/route"
	employeeRoute "daycareku_backend/internals/features/hr/employees/route"
	leaveRoute "daycareku_backend/internals/features/hr/leave/route"
	scheduleRoute "daycareku_backend/internals/features/hr/schedules/route"
	timeclockRoute "daycareku_backend/internals/features/hr/timeclock/route"
)

// HrAdminRoutes 🔌 administrasi kepegawaian (direktur/admin)
func HrAdminRoutes(admin fiber.Router, db *gorm.DB) {
	employeeRoute.EmployeeAdminRoutes(admin, db)
	certificationRoute.CertificationAdminRoutes(admin, db)
	disciplinaryRoute.DisciplinaryAdminRoutes(admin, db)
	leaveRoute.LeaveAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
}

// HrStaffRoutes 🔌 self-service staf (clock in/out, cuti)
func HrStaffRoutes(staff fiber.Router, db *gorm.DB) {
	timeclockRoute.TimeclockStaffRoutes(staff, db)
	leaveRoute.LeaveStaffRoutes(staff, db)
}
