package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"daycareku_backend/internals/features/hr/employees/dto"
	"daycareku_backend/internals/features/hr/employees/model"
	helper "daycareku_backend/internals/helpers"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /admin/employees
func (ctrl *EmployeeController) CreateEmployee(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format hire_date tidak valid (YYYY-MM-DD)")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat data pegawai")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pegawai dibuat", dto.FromModel(row))
}

/* ===================== LIST ===================== */
// GET /admin/employees?role=assistant&active=true&search=sari
func (ctrl *EmployeeController) ListEmployees(c *fiber.Ctx) error {
	p := helper.Parse(c, "full_name", "asc")

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.EmployeeModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("employee_role = ?", role)
	}
	if c.Query("active") == "true" {
		q = q.Where("employee_is_active IS TRUE")
	}
	if s := c.Query("search"); s != "" {
		q = q.Where("employee_full_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	orderClause, err := p.SafeOrderClause(map[string]string{
		"full_name": "employee_full_name",
		"role":      "employee_role",
		"hire_date": "employee_hire_date",
	}, "full_name")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Sort key tidak valid")
	}

	var rows []model.EmployeeModel
	if err := q.Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pegawai")
	}

	items := make([]dto.EmployeeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helper.BuildMeta(total, p),
	})
}

/* ===================== DETAIL ===================== */
// GET /admin/employees/:id
func (ctrl *EmployeeController) GetEmployee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pegawai tidak valid")
	}

	var row model.EmployeeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&row))
}

/* ===================== UPDATE ===================== */
// PUT /admin/employees/:id
func (ctrl *EmployeeController) UpdateEmployee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pegawai tidak valid")
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.EmployeeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	req.Apply(&row)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pegawai")
	}
	return helper.Success(c, "Pegawai diperbarui", dto.FromModel(&row))
}

/* ===================== DELETE ===================== */
// DELETE /admin/employees/:id (soft delete)
func (ctrl *EmployeeController) DeleteEmployee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pegawai tidak valid")
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.EmployeeModel{}, "employee_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pegawai")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
	}
	return helper.Success(c, "Pegawai dihapus", nil)
}
