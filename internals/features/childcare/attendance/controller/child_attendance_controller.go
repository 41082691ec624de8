package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"daycareku_backend/internals/features/childcare/attendance/dto"
	"daycareku_backend/internals/features/childcare/attendance/model"
	helper "daycareku_backend/internals/helpers"
	"daycareku_backend/internals/helpers/dbtime"
)

type ChildAttendanceController struct {
	DB *gorm.DB
}

func NewChildAttendanceController(db *gorm.DB) *ChildAttendanceController {
	return &ChildAttendanceController{DB: db}
}

var validate = validator.New()

/* ===================== CHECK-IN ===================== */
// POST /staff/child-attendances/check-in
func (ctrl *ChildAttendanceController) CheckIn(c *fiber.Ctx) error {
	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel(dbtime.NowFacility())
	if err := ctrl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencatat check-in")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Check-in dicatat", dto.FromModel(row))
}

/* ===================== CHECK-OUT ===================== */
// PUT /staff/child-attendances/:id/check-out
func (ctrl *ChildAttendanceController) CheckOut(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kehadiran tidak valid")
	}

	var req dto.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var row model.ChildAttendanceModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "child_attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kehadiran tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if row.ChildAttendanceCheckOut != nil {
		return helper.Error(c, fiber.StatusConflict, "Anak sudah check-out")
	}

	out := dbtime.NowFacility()
	if req.CheckOut != nil {
		out = *req.CheckOut
	}
	if out.Before(row.ChildAttendanceCheckIn) {
		return helper.Error(c, fiber.StatusBadRequest, "Waktu check-out sebelum check-in")
	}

	row.ChildAttendanceCheckOut = &out
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencatat check-out")
	}
	return helper.Success(c, "Check-out dicatat", dto.FromModel(&row))
}

/* ===================== LIST ===================== */
// GET /staff/child-attendances?date=2026-08-31&age_group=toddler&present=true
func (ctrl *ChildAttendanceController) ListAttendances(c *fiber.Ctx) error {
	date, err := dbtime.ParseDate(c.Query("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}
	dayStart := date
	dayEnd := date.Add(24 * time.Hour)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ChildAttendanceModel{}).
		Where("child_attendance_check_in >= ? AND child_attendance_check_in < ?", dayStart, dayEnd)
	if g := c.Query("age_group"); g != "" {
		q = q.Where("child_attendance_age_group = ?", g)
	}
	if c.Query("present") == "true" {
		q = q.Where("child_attendance_check_out IS NULL")
	}

	var rows []model.ChildAttendanceModel
	if err := q.Order("child_attendance_check_in").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}

	items := make([]dto.ChildAttendanceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}
