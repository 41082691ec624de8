package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ComplianceSettingModel = satu baris settings per fasilitas.
// Dibaca SEKALI per recording pass (tidak di-reload di tengah pass).
type ComplianceSettingModel struct {
	ComplianceSettingID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:compliance_setting_id" json:"compliance_setting_id"`

	// Override rasio wajib per kelompok usia (anak per staf, 1..50)
	ComplianceSettingInfantRatio    int `gorm:"not null;default:5;column:compliance_setting_infant_ratio"     json:"compliance_setting_infant_ratio"`
	ComplianceSettingToddlerRatio   int `gorm:"not null;default:8;column:compliance_setting_toddler_ratio"    json:"compliance_setting_toddler_ratio"`
	ComplianceSettingPreschoolRatio int `gorm:"not null;default:10;column:compliance_setting_preschool_ratio" json:"compliance_setting_preschool_ratio"`
	ComplianceSettingSchoolAgeRatio int `gorm:"not null;default:20;column:compliance_setting_school_age_ratio" json:"compliance_setting_school_age_ratio"`

	ComplianceSettingWarningPercent          int `gorm:"not null;default:90;column:compliance_setting_warning_percent"            json:"compliance_setting_warning_percent"`
	ComplianceSettingSnapshotIntervalMinutes int `gorm:"not null;default:30;column:compliance_setting_snapshot_interval_minutes"  json:"compliance_setting_snapshot_interval_minutes"`

	// Jam operasional (scheduler hanya merekam di rentang ini)
	ComplianceSettingOperatingStartHour int `gorm:"not null;default:6;column:compliance_setting_operating_start_hour" json:"compliance_setting_operating_start_hour"`
	ComplianceSettingOperatingEndHour   int `gorm:"not null;default:19;column:compliance_setting_operating_end_hour"  json:"compliance_setting_operating_end_hour"`

	ComplianceSettingAlertRecipientRoles pq.StringArray `gorm:"type:text[];column:compliance_setting_alert_recipient_roles" json:"compliance_setting_alert_recipient_roles"`

	ComplianceSettingActiveSchoolYearID *uuid.UUID `gorm:"type:uuid;column:compliance_setting_active_school_year_id" json:"compliance_setting_active_school_year_id,omitempty"`

	ComplianceSettingCreatedAt time.Time  `gorm:"column:compliance_setting_created_at;autoCreateTime" json:"compliance_setting_created_at"`
	ComplianceSettingUpdatedAt *time.Time `gorm:"column:compliance_setting_updated_at;autoUpdateTime" json:"compliance_setting_updated_at,omitempty"`
}

func (ComplianceSettingModel) TableName() string { return "compliance_settings" }
