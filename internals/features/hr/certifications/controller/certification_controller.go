package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"daycareku_backend/internals/features/hr/certifications/dto"
	"daycareku_backend/internals/features/hr/certifications/model"
	helper "daycareku_backend/internals/helpers"
	"daycareku_backend/internals/helpers/dbtime"
)

type CertificationController struct {
	DB *gorm.DB
}

func NewCertificationController(db *gorm.DB) *CertificationController {
	return &CertificationController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /admin/certifications
func (ctrl *CertificationController) CreateCertification(c *fiber.Ctx) error {
	var req dto.CreateCertificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan sertifikasi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sertifikasi disimpan", dto.FromModel(row))
}

/* ===================== LIST PER PEGAWAI ===================== */
// GET /admin/certifications?employee_id=
func (ctrl *CertificationController) ListCertifications(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.CertificationModel{})
	if idStr := c.Query("employee_id"); idStr != "" {
		empID, err := uuid.Parse(idStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "employee_id tidak valid")
		}
		q = q.Where("certification_employee_id = ?", empID)
	}

	var rows []model.CertificationModel
	if err := q.Order("certification_issued_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikasi")
	}

	items := make([]dto.CertificationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

/* ===================== EXPIRING SOON ===================== */
// GET /admin/certifications/expiring?days=60
func (ctrl *CertificationController) ListExpiringSoon(c *fiber.Ctx) error {
	days := 60
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	cutoff := dbtime.NowFacility().AddDate(0, 0, days)

	var rows []model.CertificationModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("certification_expires_at IS NOT NULL").
		Where("certification_expires_at <= ?", cutoff.Format("2006-01-02")).
		Where("certification_expires_at >= ?", time.Now().Format("2006-01-02")).
		Order("certification_expires_at").
		Find(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikasi kedaluwarsa")
	}

	items := make([]dto.CertificationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

/* ===================== DELETE ===================== */
// DELETE /admin/certifications/:id (soft delete)
func (ctrl *CertificationController) DeleteCertification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sertifikasi tidak valid")
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.CertificationModel{}, "certification_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus sertifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Sertifikasi tidak ditemukan")
	}
	return helper.Success(c, "Sertifikasi dihapus", nil)
}
