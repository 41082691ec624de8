package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceService "daycareku_backend/internals/features/childcare/attendance/service"
	roomService "daycareku_backend/internals/features/childcare/rooms/service"
	auditService "daycareku_backend/internals/features/compliance/audit/service"
	"daycareku_backend/internals/features/compliance/ratio/dto"
	"daycareku_backend/internals/features/compliance/ratio/service"
	presenceService "daycareku_backend/internals/features/hr/timeclock/service"
	helper "daycareku_backend/internals/helpers"
	"daycareku_backend/internals/helpers/dbtime"
)

type RatioController struct {
	DB       *gorm.DB
	Recorder *service.SnapshotRecorder
	History  *service.HistoryService
	Settings *service.GormSettingsSource
	Rooms    service.RoomLister
	Presence service.PresenceFeed
	Children service.AttendanceFeed
}

// NewRatioController merakit seluruh pipeline rasio di atas satu *gorm.DB:
// feed kehadiran staf + anak, store snapshot, alert policy, audit sink.
func NewRatioController(db *gorm.DB) *RatioController {
	store := service.NewGormSnapshotStore(db)
	settings := service.NewGormSettingsSource(db)
	sink := auditService.NewAuditSink(db)
	presence := presenceService.NewPresenceFeed(db)
	children := attendanceService.NewAttendanceFeed(db)
	rooms := roomService.NewRoomLister(db)
	policy := service.NewAlertPolicy(store, sink)

	return &RatioController{
		DB:       db,
		Recorder: service.NewSnapshotRecorder(presence, children, store, settings, rooms, policy, sink),
		History:  service.NewHistoryService(db),
		Settings: settings,
		Rooms:    rooms,
		Presence: presence,
		Children: children,
	}
}

var validate = validator.New()

/* ===================== RECORDING ===================== */

// POST /ratio/record — trigger manual satu recording pass.
// Hasil campuran (sebagian bucket gagal) tetap 200; yang gagal
// terlihat per-bucket di results.
func (ctrl *RatioController) RecordNow(c *fiber.Ctx) error {
	var req dto.RecordNowRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := dbtime.NowFacility()
	date, clock := now, now
	if req.Date != "" {
		d, err := dbtime.ParseDate(req.Date)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
		}
		date = d
	}
	if req.Time != "" {
		t, err := dbtime.ParseClock(req.Time)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format jam tidak valid (HH:MM)")
		}
		clock = t
	}

	result, err := ctrl.Recorder.RecordPass(c.UserContext(), service.RecordPassInput{
		Date:       date,
		Time:       clock,
		RecordedBy: req.RecordedBy,
		Dimension:  service.Dimension(req.Dimension),
		Notes:      req.Notes,
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menjalankan recording pass")
	}
	return helper.Success(c, result.Summary(), result)
}

/* ===================== REALTIME ===================== */

// GET /ratio/realtime?dimension= — status live per bucket, TIDAK disimpan.
func (ctrl *RatioController) Realtime(c *fiber.Ctx) error {
	dim := service.Dimension(c.Query("dimension", string(service.DimensionByAgeGroup)))
	if !dim.Valid() {
		return helper.Error(c, fiber.StatusBadRequest, "dimension harus by_age_group atau by_room")
	}

	ctx := c.UserContext()
	cfg, err := ctrl.Settings.Load(ctx)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal baca compliance settings")
	}

	var buckets []service.Bucket
	if dim == service.DimensionByAgeGroup {
		for _, g := range service.AllAgeGroups() {
			buckets = append(buckets, service.Bucket{AgeGroup: g})
		}
	} else {
		rooms, err := ctrl.Rooms.ActiveRooms(ctx)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal baca daftar ruang")
		}
		for _, room := range rooms {
			buckets = append(buckets, service.Bucket{AgeGroup: room.AgeGroup, RoomName: room.Name})
		}
	}

	at := dbtime.NowFacility()
	views := make([]dto.RealtimeBucketView, 0, len(buckets))
	for _, b := range buckets {
		views = append(views, ctrl.realtimeView(c, cfg, b, at))
	}
	return helper.Success(c, "OK", views)
}

func (ctrl *RatioController) realtimeView(c *fiber.Ctx, cfg service.ThresholdConfig, bucket service.Bucket, at time.Time) dto.RealtimeBucketView {
	view := dto.RealtimeBucketView{
		BucketKey: bucket.Key(),
		Label:     bucket.DisplayLabel(),
		AgeGroup:  string(bucket.AgeGroup),
		RoomName:  bucket.RoomName,
	}

	ctx := c.UserContext()
	staff, err := ctrl.Presence.StaffCount(ctx, bucket, at)
	if err != nil {
		view.Error = "feed unavailable"
		return view
	}
	children, err := ctrl.Children.ChildCount(ctx, bucket, at)
	if err != nil {
		view.Error = "feed unavailable"
		return view
	}

	required, _ := cfg.RequiredRatio(bucket.AgeGroup)
	view.StaffCount = staff
	view.ChildCount = children
	view.RequiredRatio = required
	view.IsCompliant = service.IsCompliant(required, staff, children)
	view.AdditionalCapacity = service.AdditionalCapacity(required, staff, children)
	view.StaffNeeded = service.StaffNeeded(required, staff, children)
	if ratio, ok := service.ActualRatio(staff, children); ok {
		rounded := service.RoundDisplay(ratio)
		view.ActualRatio = &rounded
	}
	if pct, ok := service.CompliancePercent(required, staff, children); ok {
		rounded := service.RoundDisplay(pct)
		view.CompliancePercent = &rounded
	}
	return view
}

/* ===================== HISTORY ===================== */

// GET /ratio/history/daily?date=
func (ctrl *RatioController) DailySummary(c *fiber.Ctx) error {
	date, err := dbtime.ParseDate(c.Query("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}
	var schoolYearID *uuid.UUID
	if s := c.Query("school_year_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "school_year_id tidak valid")
		}
		schoolYearID = &id
	}

	summary, err := ctrl.History.DailySummary(c.UserContext(), schoolYearID, date)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan harian")
	}
	return helper.Success(c, "OK", summary)
}

// GET /ratio/history/by-age-group
func (ctrl *RatioController) SummaryByAgeGroup(c *fiber.Ctx) error {
	filter, err := parseHistoryFilter(c)
	if err != nil {
		return err
	}
	rows, qerr := ctrl.History.SummaryByAgeGroup(c.UserContext(), filter)
	if qerr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan per kelompok usia")
	}
	return helper.Success(c, "OK", rows)
}

// GET /ratio/history/trend
func (ctrl *RatioController) Trend(c *fiber.Ctx) error {
	filter, err := parseHistoryFilter(c)
	if err != nil {
		return err
	}
	rows, qerr := ctrl.History.Trend(c.UserContext(), filter)
	if qerr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung tren kepatuhan")
	}
	return helper.Success(c, "OK", rows)
}

// GET /ratio/history/peak-hours?risk_only=true — jam rawan understaffed
func (ctrl *RatioController) PeakHours(c *fiber.Ctx) error {
	filter, err := parseHistoryFilter(c)
	if err != nil {
		return err
	}
	rows, qerr := ctrl.History.PeakNonComplianceTimes(c.UserContext(), filter)
	if qerr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung jam puncak")
	}
	if c.QueryBool("risk_only", false) {
		rows = service.OnlyRiskHours(rows)
	}
	return helper.Success(c, "OK", rows)
}

// GET /ratio/snapshots — daftar snapshot mentah + pagination
func (ctrl *RatioController) ListSnapshots(c *fiber.Ctx) error {
	filter, err := parseHistoryFilter(c)
	if err != nil {
		return err
	}
	p := helper.Parse(c, "date", "desc")
	rows, total, qerr := ctrl.History.ListSnapshots(c.UserContext(), filter, p)
	if qerr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil snapshot")
	}
	return helper.Success(c, "OK", fiber.Map{
		"snapshots":  rows,
		"pagination": helper.BuildMeta(total, p),
	})
}

func parseHistoryFilter(c *fiber.Ctx) (service.HistoryFilter, error) {
	var f service.HistoryFilter

	if s := c.Query("school_year_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return f, helper.Error(c, fiber.StatusBadRequest, "school_year_id tidak valid")
		}
		f.SchoolYearID = &id
	}
	if s := c.Query("date_from"); s != "" {
		d, err := dbtime.ParseDate(s)
		if err != nil {
			return f, helper.Error(c, fiber.StatusBadRequest, "date_from tidak valid (YYYY-MM-DD)")
		}
		f.DateFrom = d
	}
	if s := c.Query("date_to"); s != "" {
		d, err := dbtime.ParseDate(s)
		if err != nil {
			return f, helper.Error(c, fiber.StatusBadRequest, "date_to tidak valid (YYYY-MM-DD)")
		}
		f.DateTo = d
	}
	if s := c.Query("age_group"); s != "" {
		g, err := service.ParseAgeGroup(s)
		if err != nil {
			return f, helper.Error(c, fiber.StatusBadRequest, "age_group tidak dikenal")
		}
		f.AgeGroup = &g
	}
	if s := c.Query("room"); s != "" {
		room := s
		f.RoomName = &room
	}
	if s := c.Query("is_compliant"); s != "" {
		compliant := s == "true" || s == "1"
		f.IsCompliant = &compliant
	}
	return f, nil
}

/* ===================== SETTINGS ===================== */

// GET /ratio/settings
func (ctrl *RatioController) GetSettings(c *fiber.Ctx) error {
	row, err := ctrl.Settings.LoadRow(c.UserContext())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal baca compliance settings")
	}
	return helper.Success(c, "OK", row)
}

// PUT /ratio/settings — partial update; snapshot historis TIDAK terdampak
// karena required_ratio dibekukan per baris.
func (ctrl *RatioController) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.OperatingStartHour != nil && req.OperatingEndHour != nil && *req.OperatingEndHour <= *req.OperatingStartHour {
		return helper.Error(c, fiber.StatusBadRequest, "operating_end_hour harus setelah operating_start_hour")
	}

	ctx := c.UserContext()
	row, err := ctrl.Settings.LoadRow(ctx)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal baca compliance settings")
	}
	req.ApplyTo(row)
	if err := ctrl.DB.WithContext(ctx).Save(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan compliance settings")
	}
	return helper.Success(c, "Compliance settings diperbarui", row)
}
