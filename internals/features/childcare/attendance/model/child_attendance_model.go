package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChildAttendanceModel = check-in/check-out satu anak.
// check_out NULL berarti anak masih di fasilitas.
type ChildAttendanceModel struct {
	ChildAttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:child_attendance_id" json:"child_attendance_id"`

	ChildAttendanceChildName string     `gorm:"not null;column:child_attendance_child_name" json:"child_attendance_child_name"`
	ChildAttendanceAgeGroup  string     `gorm:"not null;index;column:child_attendance_age_group" json:"child_attendance_age_group"`
	ChildAttendanceRoomID    *uuid.UUID `gorm:"type:uuid;column:child_attendance_room_id"   json:"child_attendance_room_id,omitempty"`

	ChildAttendanceCheckIn  time.Time  `gorm:"not null;index;column:child_attendance_check_in" json:"child_attendance_check_in"`
	ChildAttendanceCheckOut *time.Time `gorm:"column:child_attendance_check_out"               json:"child_attendance_check_out,omitempty"`

	ChildAttendanceCreatedAt time.Time      `gorm:"column:child_attendance_created_at;autoCreateTime" json:"child_attendance_created_at"`
	ChildAttendanceDeletedAt gorm.DeletedAt `gorm:"column:child_attendance_deleted_at;index"          json:"child_attendance_deleted_at,omitempty"`
}

func (ChildAttendanceModel) TableName() string { return "child_attendances" }
