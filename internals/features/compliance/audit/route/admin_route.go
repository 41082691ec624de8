package route

import (
	auditController "daycareku_backend/internals/features/compliance/audit/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: read-only audit trail
Mount contoh: AuditAdminRoutes(app.Group("/admin"), db)
*/
func AuditAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := auditController.NewAuditEventController(db)
	events := r.Group("/audit-events")
	events.Get("/", ctl.ListAuditEvents) // GET /admin/audit-events
}
