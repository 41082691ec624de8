package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"daycareku_backend/internals/features/hr/leave/dto"
	"daycareku_backend/internals/features/hr/leave/model"
	helper "daycareku_backend/internals/helpers"
)

type LeaveController struct {
	DB *gorm.DB
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /staff/leave-requests
func (ctrl *LeaveController) CreateLeaveRequest(c *fiber.Ctx) error {
	var req dto.CreateLeaveRequest
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
	if time.Time(row.LeaveRequestEndDate).Before(time.Time(row.LeaveRequestStartDate)) {
		return helper.Error(c, fiber.StatusBadRequest, "end_date sebelum start_date")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat pengajuan cuti")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengajuan cuti dibuat", dto.FromModel(row))
}

/* ===================== LIST ===================== */
// GET /admin/leave-requests?employee_id=&status=pending
func (ctrl *LeaveController) ListLeaveRequests(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.LeaveRequestModel{})
	if idStr := c.Query("employee_id"); idStr != "" {
		empID, err := uuid.Parse(idStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "employee_id tidak valid")
		}
		q = q.Where("leave_request_employee_id = ?", empID)
	}
	if s := c.Query("status"); s != "" {
		q = q.Where("leave_request_status = ?", s)
	}

	var rows []model.LeaveRequestModel
	if err := q.Order("leave_request_start_date DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan cuti")
	}

	items := make([]dto.LeaveRequestResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

/* ===================== DECIDE ===================== */
// PUT /admin/leave-requests/:id/decide
func (ctrl *LeaveController) DecideLeaveRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengajuan tidak valid")
	}

	var req dto.DecideLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.LeaveRequestModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "leave_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if row.LeaveRequestStatus != model.LeaveStatusPending {
		return helper.Error(c, fiber.StatusConflict, "Pengajuan sudah diputuskan")
	}

	now := time.Now()
	row.LeaveRequestStatus = req.Status
	row.LeaveRequestDecidedBy = &req.DecidedBy
	row.LeaveRequestDecidedAt = &now
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan keputusan")
	}
	return helper.Success(c, "Keputusan disimpan", dto.FromModel(&row))
}
