package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"daycareku_backend/internals/features/hr/timeclock/dto"
	"daycareku_backend/internals/features/hr/timeclock/model"
	helper "daycareku_backend/internals/helpers"
	"daycareku_backend/internals/helpers/dbtime"
)

type TimeclockController struct {
	DB *gorm.DB
}

func NewTimeclockController(db *gorm.DB) *TimeclockController {
	return &TimeclockController{DB: db}
}

var validate = validator.New()

/* ===================== CLOCK-IN ===================== */
// POST /staff/timeclock/clock-in
func (ctrl *TimeclockController) ClockIn(c *fiber.Ctx) error {
	var req dto.ClockInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Satu staf tidak boleh punya 2 entri terbuka
	var open int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.TimeclockEntryModel{}).
		Where("timeclock_entry_employee_id = ? AND timeclock_entry_clock_out IS NULL", req.EmployeeID).
		Count(&open).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if open > 0 {
		return helper.Error(c, fiber.StatusConflict, "Staf masih punya clock-in terbuka")
	}

	row := req.ToModel(dbtime.NowFacility())
	if err := ctrl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencatat clock-in")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Clock-in dicatat", dto.FromModel(row))
}

/* ===================== CLOCK-OUT ===================== */
// PUT /staff/timeclock/:id/clock-out
func (ctrl *TimeclockController) ClockOut(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID entri tidak valid")
	}

	var req dto.ClockOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var row model.TimeclockEntryModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "timeclock_entry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Entri tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if row.TimeclockEntryClockOut != nil {
		return helper.Error(c, fiber.StatusConflict, "Staf sudah clock-out")
	}

	out := dbtime.NowFacility()
	if req.ClockOut != nil {
		out = *req.ClockOut
	}
	if out.Before(row.TimeclockEntryClockIn) {
		return helper.Error(c, fiber.StatusBadRequest, "Waktu clock-out sebelum clock-in")
	}

	row.TimeclockEntryClockOut = &out
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencatat clock-out")
	}
	return helper.Success(c, "Clock-out dicatat", dto.FromModel(&row))
}

/* ===================== LIST ===================== */
// GET /staff/timeclock?date=2026-08-31&employee_id=&open=true
func (ctrl *TimeclockController) ListEntries(c *fiber.Ctx) error {
	date, err := dbtime.ParseDate(c.Query("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}
	dayStart := date
	dayEnd := date.Add(24 * time.Hour)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.TimeclockEntryModel{}).
		Where("timeclock_entry_clock_in >= ? AND timeclock_entry_clock_in < ?", dayStart, dayEnd)
	if idStr := c.Query("employee_id"); idStr != "" {
		empID, err := uuid.Parse(idStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "employee_id tidak valid")
		}
		q = q.Where("timeclock_entry_employee_id = ?", empID)
	}
	if c.Query("open") == "true" {
		q = q.Where("timeclock_entry_clock_out IS NULL")
	}

	var rows []model.TimeclockEntryModel
	if err := q.Order("timeclock_entry_clock_in").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil entri timeclock")
	}

	items := make([]dto.TimeclockEntryResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}
