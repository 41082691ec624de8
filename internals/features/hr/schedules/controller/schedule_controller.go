package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"daycareku_backend/internals/features/hr/schedules/dto"
	"daycareku_backend/internals/features/hr/schedules/model"
	scheduleService "daycareku_backend/internals/features/hr/schedules/service"
	helper "daycareku_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

var validate = validator.New()

/* ===================== SHIFT TEMPLATES ===================== */

// POST /admin/shift-templates
func (ctrl *ScheduleController) CreateShiftTemplate(c *fiber.Ctx) error {
	var req dto.CreateShiftTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.EndTime <= req.StartTime {
		return helper.Error(c, fiber.StatusBadRequest, "end_time harus setelah start_time")
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format jam tidak valid (HH:MM)")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat shift template")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Shift template dibuat", dto.ShiftTemplateFromModel(row))
}

// GET /admin/shift-templates
func (ctrl *ScheduleController) ListShiftTemplates(c *fiber.Ctx) error {
	var rows []model.ShiftTemplateModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("shift_template_start_time").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil shift template")
	}

	items := make([]dto.ShiftTemplateResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.ShiftTemplateFromModel(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

/* ===================== ASSIGNMENTS ===================== */

// POST /admin/schedule-assignments — menolak jadwal yang overlap
func (ctrl *ScheduleController) CreateAssignment(c *fiber.Ctx) error {
	var req dto.CreateScheduleAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tpl model.ShiftTemplateModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&tpl, "shift_template_id = ?", req.ShiftTemplateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Shift template tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	checker := scheduleService.NewConflictChecker(ctrl.DB)
	conflict, err := checker.HasConflict(c.UserContext(), req.EmployeeID, req.Weekday, &tpl)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek konflik jadwal")
	}
	if conflict {
		return helper.Error(c, fiber.StatusConflict, "Jadwal bentrok dengan shift lain di hari yang sama")
	}

	row := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan penugasan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penugasan disimpan", dto.AssignmentFromModel(row))
}

// GET /admin/schedule-assignments?employee_id=&weekday=
func (ctrl *ScheduleController) ListAssignments(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ScheduleAssignmentModel{})
	if idStr := c.Query("employee_id"); idStr != "" {
		empID, err := uuid.Parse(idStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "employee_id tidak valid")
		}
		q = q.Where("schedule_assignment_employee_id = ?", empID)
	}
	if w := c.Query("weekday"); w != "" {
		q = q.Where("schedule_assignment_weekday = ?", w)
	}

	var rows []model.ScheduleAssignmentModel
	if err := q.Order("schedule_assignment_weekday").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil penugasan")
	}

	items := make([]dto.ScheduleAssignmentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.AssignmentFromModel(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

// DELETE /admin/schedule-assignments/:id (soft delete)
func (ctrl *ScheduleController) DeleteAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penugasan tidak valid")
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.ScheduleAssignmentModel{}, "schedule_assignment_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus penugasan")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
	}
	return helper.Success(c, "Penugasan dihapus", nil)
}
