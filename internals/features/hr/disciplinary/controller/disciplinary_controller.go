package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"daycareku_backend/internals/features/hr/disciplinary/dto"
	"daycareku_backend/internals/features/hr/disciplinary/model"
	helper "daycareku_backend/internals/helpers"
)

type DisciplinaryController struct {
	DB *gorm.DB
}

func NewDisciplinaryController(db *gorm.DB) *DisciplinaryController {
	return &DisciplinaryController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /admin/disciplinary-actions
func (ctrl *DisciplinaryController) CreateAction(c *fiber.Ctx) error {
	var req dto.CreateDisciplinaryActionRequest
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
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan catatan disiplin")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Catatan disiplin disimpan", dto.FromModel(row))
}

/* ===================== LIST ===================== */
// GET /admin/disciplinary-actions?employee_id=
func (ctrl *DisciplinaryController) ListActions(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.DisciplinaryActionModel{})
	if idStr := c.Query("employee_id"); idStr != "" {
		empID, err := uuid.Parse(idStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "employee_id tidak valid")
		}
		q = q.Where("disciplinary_action_employee_id = ?", empID)
	}

	var rows []model.DisciplinaryActionModel
	if err := q.Order("disciplinary_action_date DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil catatan disiplin")
	}

	items := make([]dto.DisciplinaryActionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

/* ===================== DELETE ===================== */
// DELETE /admin/disciplinary-actions/:id (soft delete)
func (ctrl *DisciplinaryController) DeleteAction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID catatan tidak valid")
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.DisciplinaryActionModel{}, "disciplinary_action_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus catatan")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Catatan tidak ditemukan")
	}
	return helper.Success(c, "Catatan dihapus", nil)
}
