package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "daycareku_backend/internals/route/details"
)

// SetupRoutes memasang seluruh route di atas dua group:
// /api/a untuk administrasi (direktur/admin) dan /api/u untuk staf lantai.
// Autentikasi sengaja di luar scope service ini — dipasang gateway/reverse
// proxy di depan; group dipertahankan supaya pemisahan permukaannya jelas.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	admin := app.Group("/api/a")
	staff := app.Group("/api/u")

	log.Println("[INFO] Mounting HR routes...")
	routeDetails.HrAdminRoutes(admin, db)
	routeDetails.HrStaffRoutes(staff, db)

	log.Println("[INFO] Mounting Childcare routes...")
	routeDetails.ChildcareAdminRoutes(admin, db)
	routeDetails.ChildcareStaffRoutes(staff, db)

	log.Println("[INFO] Mounting Compliance routes...")
	routeDetails.ComplianceAdminRoutes(admin, db)
	routeDetails.ComplianceStaffRoutes(staff, db)
}
