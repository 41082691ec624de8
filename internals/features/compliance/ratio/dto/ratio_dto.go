package dto

import (
	"github.com/google/uuid"

	"daycareku_backend/internals/features/compliance/ratio/model"
)

/* ===================== REQUESTS ===================== */

// RecordNowRequest = trigger manual satu recording pass.
// Date/Time kosong = sekarang (timezone fasilitas).
type RecordNowRequest struct {
	Dimension  string `json:"dimension" validate:"required,oneof=by_age_group by_room"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time       string `json:"time" validate:"omitempty,datetime=15:04"`
	RecordedBy string `json:"recorded_by" validate:"omitempty,max=100"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}

// UpdateSettingRequest: partial update — hanya field non-nil yang diubah.
// Rasio di luar 1..50 ditolak di sini; baris lama yang terlanjur invalid
// tetap di-fallback ke default statutori saat perekaman.
type UpdateSettingRequest struct {
	InfantRatio    *int `json:"infant_ratio" validate:"omitempty,gte=1,lte=50"`
	ToddlerRatio   *int `json:"toddler_ratio" validate:"omitempty,gte=1,lte=50"`
	PreschoolRatio *int `json:"preschool_ratio" validate:"omitempty,gte=1,lte=50"`
	SchoolAgeRatio *int `json:"school_age_ratio" validate:"omitempty,gte=1,lte=50"`

	WarningPercent          *int `json:"warning_percent" validate:"omitempty,gte=50,lte=100"`
	SnapshotIntervalMinutes *int `json:"snapshot_interval_minutes" validate:"omitempty,gte=5,lte=240"`
	OperatingStartHour      *int `json:"operating_start_hour" validate:"omitempty,gte=0,lte=23"`
	OperatingEndHour        *int `json:"operating_end_hour" validate:"omitempty,gte=1,lte=24"`

	AlertRecipientRoles []string `json:"alert_recipient_roles" validate:"omitempty,dive,oneof=director supervisor lead_teacher assistant administrator"`

	ActiveSchoolYearID *uuid.UUID `json:"active_school_year_id" validate:"omitempty"`
}

// ApplyTo menyalin field yang diisi ke baris settings.
func (r UpdateSettingRequest) ApplyTo(row *model.ComplianceSettingModel) {
	if r.InfantRatio != nil {
		row.ComplianceSettingInfantRatio = *r.InfantRatio
	}
	if r.ToddlerRatio != nil {
		row.ComplianceSettingToddlerRatio = *r.ToddlerRatio
	}
	if r.PreschoolRatio != nil {
		row.ComplianceSettingPreschoolRatio = *r.PreschoolRatio
	}
	if r.SchoolAgeRatio != nil {
		row.ComplianceSettingSchoolAgeRatio = *r.SchoolAgeRatio
	}
	if r.WarningPercent != nil {
		row.ComplianceSettingWarningPercent = *r.WarningPercent
	}
	if r.SnapshotIntervalMinutes != nil {
		row.ComplianceSettingSnapshotIntervalMinutes = *r.SnapshotIntervalMinutes
	}
	if r.OperatingStartHour != nil {
		row.ComplianceSettingOperatingStartHour = *r.OperatingStartHour
	}
	if r.OperatingEndHour != nil {
		row.ComplianceSettingOperatingEndHour = *r.OperatingEndHour
	}
	if r.AlertRecipientRoles != nil {
		row.ComplianceSettingAlertRecipientRoles = append([]string(nil), r.AlertRecipientRoles...)
	}
	if r.ActiveSchoolYearID != nil {
		row.ComplianceSettingActiveSchoolYearID = r.ActiveSchoolYearID
	}
}

/* ===================== RESPONSES ===================== */

// RealtimeBucketView = status live satu bucket (tidak disimpan).
type RealtimeBucketView struct {
	BucketKey          string   `json:"bucket_key"`
	Label              string   `json:"label"`
	AgeGroup           string   `json:"age_group"`
	RoomName           string   `json:"room_name,omitempty"`
	StaffCount         int      `json:"staff_count"`
	ChildCount         int      `json:"child_count"`
	RequiredRatio      int      `json:"required_ratio"`
	ActualRatio        *float64 `json:"actual_ratio,omitempty"`
	IsCompliant        bool     `json:"is_compliant"`
	CompliancePercent  *float64 `json:"compliance_percent,omitempty"`
	AdditionalCapacity int      `json:"additional_capacity"`
	StaffNeeded        int      `json:"staff_needed"`
	Error              string   `json:"error,omitempty"`
}
