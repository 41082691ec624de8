package route

import (
	certificationController "daycareku_backend/internals/features/hr/certifications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: sertifikasi pegawai
Mount contoh: CertificationAdminRoutes(app.Group("/admin"), db)
*/
func CertificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := certificationController.NewCertificationController(db)
	certs := r.Group("/certifications")
	certs.Post("/", ctl.CreateCertification)        // POST   /admin/certifications
	certs.Get("/", ctl.ListCertifications)          // GET    /admin/certifications?employee_id=
	certs.Get("/expiring", ctl.ListExpiringSoon)    // GET    /admin/certifications/expiring?days=60
	certs.Delete("/:id", ctl.DeleteCertification)   // DELETE /admin/certifications/:id (soft delete)
}
