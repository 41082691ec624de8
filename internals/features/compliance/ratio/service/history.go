// internals/features/compliance/ratio/service/history.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"daycareku_backend/internals/features/compliance/ratio/model"
	helper "daycareku_backend/internals/helpers"
)

/*
HistoryService = sisi baca atas tabel ratio_snapshots (append-only,
tanpa lock). Semua agregasi memakai nilai TERSIMPAN (required_ratio,
is_compliant yang dibekukan saat perekaman) — tidak pernah dihitung
ulang terhadap konfigurasi sekarang.
*/
type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService { return &HistoryService{DB: db} }

/* ===================== SHAPES ===================== */

type DailySummary struct {
	Date                  string  `json:"date"`
	TotalSnapshots        int64   `json:"total_snapshots"`
	CompliantSnapshots    int64   `json:"compliant_snapshots"`
	NonCompliantSnapshots int64   `json:"non_compliant_snapshots"`
	AvgStaffCount         float64 `json:"avg_staff_count"`
	AvgChildCount         float64 `json:"avg_child_count"`
	ComplianceRate        float64 `json:"compliance_rate"`
}

type AgeGroupSummary struct {
	AgeGroup              string   `json:"age_group"`
	Label                 string   `json:"label"`
	TotalSnapshots        int64    `json:"total_snapshots"`
	CompliantSnapshots    int64    `json:"compliant_snapshots"`
	NonCompliantSnapshots int64    `json:"non_compliant_snapshots"`
	ComplianceRate        float64  `json:"compliance_rate"`
	AvgCompliancePercent  *float64 `json:"avg_compliance_percent,omitempty"`
}

type TrendPoint struct {
	Date               string  `json:"date"`
	TotalSnapshots     int64   `json:"total_snapshots"`
	CompliantSnapshots int64   `json:"compliant_snapshots"`
	ComplianceRate     float64 `json:"compliance_rate"`
	AvgStaffCount      float64 `json:"avg_staff_count"`
	AvgChildCount      float64 `json:"avg_child_count"`
}

type PeakHour struct {
	Hour                  int     `json:"hour"` // 0..23
	TotalSnapshots        int64   `json:"total_snapshots"`
	NonCompliantSnapshots int64   `json:"non_compliant_snapshots"`
	NonComplianceRate     float64 `json:"non_compliance_rate"`
}

type HistoryFilter struct {
	SchoolYearID *uuid.UUID
	DateFrom     time.Time
	DateTo       time.Time
	AgeGroup     *AgeGroup
	RoomName     *string
	IsCompliant  *bool
}

/* ===================== PURE SHAPING ===================== */

// ComplianceRateOf: nol snapshot = 100% patuh (tidak pernah NaN).
func ComplianceRateOf(total, compliant int64) float64 {
	if total == 0 {
		return 100
	}
	return float64(compliant) / float64(total) * 100
}

// NonComplianceRateOf: nol snapshot = 0% (tidak pernah NaN).
func NonComplianceRateOf(total, nonCompliant int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(nonCompliant) / float64(total) * 100
}

// FinalizeDailySummary membentuk summary dari agregat mentah;
// nol baris → rate 100, semua count 0.
func FinalizeDailySummary(date string, total, compliant int64, avgStaff, avgChild float64) DailySummary {
	return DailySummary{
		Date:                  date,
		TotalSnapshots:        total,
		CompliantSnapshots:    compliant,
		NonCompliantSnapshots: total - compliant,
		AvgStaffCount:         avgStaff,
		AvgChildCount:         avgChild,
		ComplianceRate:        ComplianceRateOf(total, compliant),
	}
}

// OnlyRiskHours menyaring jam tanpa pelanggaran dari presentasi "risk"
// (baris tetap dihitung, hanya tidak ditampilkan).
func OnlyRiskHours(hours []PeakHour) []PeakHour {
	out := make([]PeakHour, 0, len(hours))
	for _, h := range hours {
		if h.NonCompliantSnapshots > 0 {
			out = append(out, h)
		}
	}
	return out
}

/* ===================== QUERIES ===================== */

func (f HistoryFilter) apply(q *gorm.DB) *gorm.DB {
	if f.SchoolYearID != nil {
		q = q.Where("ratio_snapshot_school_year_id = ?", *f.SchoolYearID)
	}
	if !f.DateFrom.IsZero() {
		q = q.Where("ratio_snapshot_date >= ?", datatypes.Date(f.DateFrom))
	}
	if !f.DateTo.IsZero() {
		q = q.Where("ratio_snapshot_date <= ?", datatypes.Date(f.DateTo))
	}
	if f.AgeGroup != nil {
		q = q.Where("ratio_snapshot_age_group = ?", string(*f.AgeGroup))
	}
	if f.RoomName != nil {
		q = q.Where("ratio_snapshot_room_name = ?", *f.RoomName)
	}
	if f.IsCompliant != nil {
		q = q.Where("ratio_snapshot_is_compliant = ?", *f.IsCompliant)
	}
	return q
}

type aggRow struct {
	Total     int64   `gorm:"column:total"`
	Compliant int64   `gorm:"column:compliant"`
	AvgStaff  float64 `gorm:"column:avg_staff"`
	AvgChild  float64 `gorm:"column:avg_child"`
}

// DailySummary: ringkasan satu hari kalender.
func (h *HistoryService) DailySummary(ctx context.Context, schoolYearID *uuid.UUID, date time.Time) (DailySummary, error) {
	q := h.DB.WithContext(ctx).Table("ratio_snapshots").
		Where("ratio_snapshot_date = ?", datatypes.Date(date))
	if schoolYearID != nil {
		q = q.Where("ratio_snapshot_school_year_id = ?", *schoolYearID)
	}

	var row aggRow
	err := q.Select(`
		COUNT(*) AS total,
		COALESCE(COUNT(*) FILTER (WHERE ratio_snapshot_is_compliant), 0) AS compliant,
		COALESCE(AVG(ratio_snapshot_staff_count), 0) AS avg_staff,
		COALESCE(AVG(ratio_snapshot_child_count), 0) AS avg_child
	`).Scan(&row).Error
	if err != nil {
		return DailySummary{}, err
	}
	return FinalizeDailySummary(date.Format("2006-01-02"), row.Total, row.Compliant, row.AvgStaff, row.AvgChild), nil
}

// SummaryByAgeGroup: satu baris agregat per bucket kelompok usia.
func (h *HistoryService) SummaryByAgeGroup(ctx context.Context, f HistoryFilter) ([]AgeGroupSummary, error) {
	type row struct {
		AgeGroup  string   `gorm:"column:age_group"`
		Total     int64    `gorm:"column:total"`
		Compliant int64    `gorm:"column:compliant"`
		AvgPct    *float64 `gorm:"column:avg_pct"`
	}
	var rows []row
	err := f.apply(h.DB.WithContext(ctx).Table("ratio_snapshots")).
		Select(`
			ratio_snapshot_age_group AS age_group,
			COUNT(*) AS total,
			COALESCE(COUNT(*) FILTER (WHERE ratio_snapshot_is_compliant), 0) AS compliant,
			AVG(ratio_snapshot_compliance_percent) AS avg_pct
		`).
		Group("ratio_snapshot_age_group").
		Order("ratio_snapshot_age_group").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]AgeGroupSummary, 0, len(rows))
	for _, r := range rows {
		g := AgeGroup(r.AgeGroup)
		out = append(out, AgeGroupSummary{
			AgeGroup:              r.AgeGroup,
			Label:                 g.Label(),
			TotalSnapshots:        r.Total,
			CompliantSnapshots:    r.Compliant,
			NonCompliantSnapshots: r.Total - r.Compliant,
			ComplianceRate:        ComplianceRateOf(r.Total, r.Compliant),
			AvgCompliancePercent:  r.AvgPct,
		})
	}
	return out, nil
}

// Trend: satu baris per hari kalender, untuk charting day-over-day.
func (h *HistoryService) Trend(ctx context.Context, f HistoryFilter) ([]TrendPoint, error) {
	type row struct {
		Date      time.Time `gorm:"column:date"`
		Total     int64     `gorm:"column:total"`
		Compliant int64     `gorm:"column:compliant"`
		AvgStaff  float64   `gorm:"column:avg_staff"`
		AvgChild  float64   `gorm:"column:avg_child"`
	}
	var rows []row
	err := f.apply(h.DB.WithContext(ctx).Table("ratio_snapshots")).
		Select(`
			ratio_snapshot_date AS date,
			COUNT(*) AS total,
			COALESCE(COUNT(*) FILTER (WHERE ratio_snapshot_is_compliant), 0) AS compliant,
			COALESCE(AVG(ratio_snapshot_staff_count), 0) AS avg_staff,
			COALESCE(AVG(ratio_snapshot_child_count), 0) AS avg_child
		`).
		Group("ratio_snapshot_date").
		Order("ratio_snapshot_date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]TrendPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, TrendPoint{
			Date:               r.Date.Format("2006-01-02"),
			TotalSnapshots:     r.Total,
			CompliantSnapshots: r.Compliant,
			ComplianceRate:     ComplianceRateOf(r.Total, r.Compliant),
			AvgStaffCount:      r.AvgStaff,
			AvgChildCount:      r.AvgChild,
		})
	}
	return out, nil
}

// PeakNonComplianceTimes: satu baris per jam (0-23) yang punya snapshot.
// Jam yang konsisten understaffed (mis. 07:00) muncul dengan rate tinggi.
func (h *HistoryService) PeakNonComplianceTimes(ctx context.Context, f HistoryFilter) ([]PeakHour, error) {
	type row struct {
		Hour         int   `gorm:"column:hour"`
		Total        int64 `gorm:"column:total"`
		NonCompliant int64 `gorm:"column:non_compliant"`
	}
	var rows []row
	err := f.apply(h.DB.WithContext(ctx).Table("ratio_snapshots")).
		Select(`
			EXTRACT(HOUR FROM ratio_snapshot_time)::int AS hour,
			COUNT(*) AS total,
			COALESCE(COUNT(*) FILTER (WHERE NOT ratio_snapshot_is_compliant), 0) AS non_compliant
		`).
		Group("hour").
		Order("hour").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]PeakHour, 0, len(rows))
	for _, r := range rows {
		out = append(out, PeakHour{
			Hour:                  r.Hour,
			TotalSnapshots:        r.Total,
			NonCompliantSnapshots: r.NonCompliant,
			NonComplianceRate:     NonComplianceRateOf(r.Total, r.NonCompliant),
		})
	}
	return out, nil
}

// ListSnapshots: daftar snapshot mentah + pagination.
func (h *HistoryService) ListSnapshots(ctx context.Context, f HistoryFilter, p helper.Params) ([]model.RatioSnapshotModel, int64, error) {
	base := f.apply(h.DB.WithContext(ctx).Model(&model.RatioSnapshotModel{}))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.RatioSnapshotModel
	err := base.
		Order("ratio_snapshot_date DESC, ratio_snapshot_time DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
