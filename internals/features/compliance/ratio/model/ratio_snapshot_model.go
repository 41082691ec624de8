package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
RatioSnapshot = catatan append-only satu bucket pada satu instant.
Tidak pernah di-update setelah insert, KECUALI pasangan
alert_sent/alert_sent_time yang boleh diisi sekali oleh alert policy.
required_ratio dibekukan saat perekaman — perubahan settings
tidak boleh menafsirkan ulang snapshot historis.
*/
type RatioSnapshotModel struct {
	RatioSnapshotID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ratio_snapshot_id" json:"ratio_snapshot_id"`

	RatioSnapshotSchoolYearID *uuid.UUID `gorm:"type:uuid;column:ratio_snapshot_school_year_id" json:"ratio_snapshot_school_year_id,omitempty"`

	RatioSnapshotDate datatypes.Date `gorm:"not null;index;column:ratio_snapshot_date" json:"ratio_snapshot_date"`
	RatioSnapshotTime datatypes.Time `gorm:"not null;column:ratio_snapshot_time"       json:"ratio_snapshot_time"`

	// Kunci bucket: kelompok usia + (opsional) nama ruang
	RatioSnapshotAgeGroup string  `gorm:"not null;index;column:ratio_snapshot_age_group" json:"ratio_snapshot_age_group"`
	RatioSnapshotRoomName *string `gorm:"column:ratio_snapshot_room_name"                json:"ratio_snapshot_room_name,omitempty"`

	RatioSnapshotStaffCount    int `gorm:"not null;column:ratio_snapshot_staff_count"    json:"ratio_snapshot_staff_count"`
	RatioSnapshotChildCount    int `gorm:"not null;column:ratio_snapshot_child_count"    json:"ratio_snapshot_child_count"`
	RatioSnapshotRequiredRatio int `gorm:"not null;column:ratio_snapshot_required_ratio" json:"ratio_snapshot_required_ratio"`

	// NULL = undefined (staff 0 / child 0), bukan nol
	RatioSnapshotActualRatio       *float64 `gorm:"column:ratio_snapshot_actual_ratio"       json:"ratio_snapshot_actual_ratio,omitempty"`
	RatioSnapshotIsCompliant       bool     `gorm:"not null;column:ratio_snapshot_is_compliant" json:"ratio_snapshot_is_compliant"`
	RatioSnapshotCompliancePercent *float64 `gorm:"column:ratio_snapshot_compliance_percent" json:"ratio_snapshot_compliance_percent,omitempty"`

	RatioSnapshotAlertSent     string     `gorm:"type:char(1);not null;default:N;column:ratio_snapshot_alert_sent" json:"ratio_snapshot_alert_sent"`
	RatioSnapshotAlertSentTime *time.Time `gorm:"column:ratio_snapshot_alert_sent_time"                            json:"ratio_snapshot_alert_sent_time,omitempty"`

	RatioSnapshotRecordedBy string  `gorm:"not null;column:ratio_snapshot_recorded_by" json:"ratio_snapshot_recorded_by"`
	RatioSnapshotNotes      *string `gorm:"column:ratio_snapshot_notes"                json:"ratio_snapshot_notes,omitempty"`

	RatioSnapshotCreatedAt time.Time `gorm:"column:ratio_snapshot_created_at;autoCreateTime" json:"ratio_snapshot_created_at"`
}

func (RatioSnapshotModel) TableName() string { return "ratio_snapshots" }

const (
	AlertSentYes = "Y"
	AlertSentNo  = "N"
)

// RecordedByAutomatic dipakai saat pass dipicu scheduler, bukan manusia.
const RecordedByAutomatic = "automatic"
