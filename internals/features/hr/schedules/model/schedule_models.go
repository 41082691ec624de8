package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShiftTemplateModel = pola shift yang bisa dipakai ulang
// (mis. "Pagi" 06:30-14:30).
type ShiftTemplateModel struct {
	ShiftTemplateID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:shift_template_id" json:"shift_template_id"`

	ShiftTemplateLabel     string         `gorm:"uniqueIndex;not null;column:shift_template_label" json:"shift_template_label"`
	ShiftTemplateStartTime datatypes.Time `gorm:"not null;column:shift_template_start_time"        json:"shift_template_start_time"`
	ShiftTemplateEndTime   datatypes.Time `gorm:"not null;column:shift_template_end_time"          json:"shift_template_end_time"`

	ShiftTemplateCreatedAt time.Time      `gorm:"column:shift_template_created_at;autoCreateTime" json:"shift_template_created_at"`
	ShiftTemplateDeletedAt gorm.DeletedAt `gorm:"column:shift_template_deleted_at;index"          json:"shift_template_deleted_at,omitempty"`
}

func (ShiftTemplateModel) TableName() string { return "shift_templates" }

// ScheduleAssignmentModel = penugasan mingguan: pegawai × hari × shift × ruang.
type ScheduleAssignmentModel struct {
	ScheduleAssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_assignment_id" json:"schedule_assignment_id"`

	ScheduleAssignmentEmployeeID      uuid.UUID  `gorm:"type:uuid;not null;index;column:schedule_assignment_employee_id" json:"schedule_assignment_employee_id"`
	ScheduleAssignmentShiftTemplateID uuid.UUID  `gorm:"type:uuid;not null;column:schedule_assignment_shift_template_id" json:"schedule_assignment_shift_template_id"`
	ScheduleAssignmentRoomID          *uuid.UUID `gorm:"type:uuid;column:schedule_assignment_room_id"                    json:"schedule_assignment_room_id,omitempty"`

	// 0=Minggu .. 6=Sabtu (time.Weekday)
	ScheduleAssignmentWeekday int `gorm:"not null;index;column:schedule_assignment_weekday" json:"schedule_assignment_weekday"`

	ScheduleAssignmentCreatedAt time.Time      `gorm:"column:schedule_assignment_created_at;autoCreateTime" json:"schedule_assignment_created_at"`
	ScheduleAssignmentDeletedAt gorm.DeletedAt `gorm:"column:schedule_assignment_deleted_at;index"          json:"schedule_assignment_deleted_at,omitempty"`
}

func (ScheduleAssignmentModel) TableName() string { return "schedule_assignments" }
