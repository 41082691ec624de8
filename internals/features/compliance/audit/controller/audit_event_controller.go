package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"daycareku_backend/internals/features/compliance/audit/model"
	helper "daycareku_backend/internals/helpers"
)

type AuditEventController struct {
	DB *gorm.DB
}

func NewAuditEventController(db *gorm.DB) *AuditEventController {
	return &AuditEventController{DB: db}
}

/* ===================== LIST ===================== */
// GET /admin/audit-events?type=ratio.alert&severity=violation
func (ctrl *AuditEventController) ListAuditEvents(c *fiber.Ctx) error {
	p := helper.ParseWith(c, "occurred_at", "desc", helper.AdminOpts)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.AuditEventModel{})
	if t := c.Query("type"); t != "" {
		q = q.Where("audit_event_type = ?", t)
	}
	if sev := c.Query("severity"); sev != "" {
		q = q.Where("audit_event_severity = ?", sev)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung audit event")
	}

	var rows []model.AuditEventModel
	if err := q.Order("audit_event_occurred_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil audit event")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": rows,
		"meta":  helper.BuildMeta(total, p),
	})
}
