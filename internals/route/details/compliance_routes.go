package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditRoute "daycareku_backend/internals/features/compliance/audit/route"
	ratioRoute "daycareku_backend/internals/features/compliance/ratio/route"
)

// ComplianceAdminRoutes 🔌 trigger pass, history, settings, audit trail
func ComplianceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ratioRoute.RatioAdminRoutes(admin, db)
	auditRoute.AuditAdminRoutes(admin, db)
}

// ComplianceStaffRoutes 🔌 view rasio realtime untuk staf lantai
func ComplianceStaffRoutes(staff fiber.Router, db *gorm.DB) {
	ratioRoute.RatioStaffRoutes(staff, db)
}
