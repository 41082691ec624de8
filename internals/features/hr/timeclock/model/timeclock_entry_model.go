package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeclockEntryModel = clock-in/clock-out satu staf, dengan assignment
// bucket (kelompok usia + opsional ruang) yang dihitung engine rasio.
type TimeclockEntryModel struct {
	TimeclockEntryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timeclock_entry_id" json:"timeclock_entry_id"`

	TimeclockEntryEmployeeID uuid.UUID  `gorm:"type:uuid;not null;index;column:timeclock_entry_employee_id" json:"timeclock_entry_employee_id"`
	TimeclockEntryAgeGroup   string     `gorm:"not null;index;column:timeclock_entry_age_group"             json:"timeclock_entry_age_group"`
	TimeclockEntryRoomID     *uuid.UUID `gorm:"type:uuid;column:timeclock_entry_room_id"                    json:"timeclock_entry_room_id,omitempty"`

	TimeclockEntryClockIn  time.Time  `gorm:"not null;index;column:timeclock_entry_clock_in" json:"timeclock_entry_clock_in"`
	TimeclockEntryClockOut *time.Time `gorm:"column:timeclock_entry_clock_out"               json:"timeclock_entry_clock_out,omitempty"`

	TimeclockEntryCreatedAt time.Time      `gorm:"column:timeclock_entry_created_at;autoCreateTime" json:"timeclock_entry_created_at"`
	TimeclockEntryDeletedAt gorm.DeletedAt `gorm:"column:timeclock_entry_deleted_at;index"          json:"timeclock_entry_deleted_at,omitempty"`
}

func (TimeclockEntryModel) TableName() string { return "timeclock_entries" }
