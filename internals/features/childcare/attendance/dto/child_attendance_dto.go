package dto

import (
	"time"

	"github.com/google/uuid"

	m "daycareku_backend/internals/features/childcare/attendance/model"
)

/* ===================== REQUESTS ===================== */

type CheckInRequest struct {
	ChildName string     `json:"child_name" validate:"required,min=1,max=150"`
	AgeGroup  string     `json:"age_group" validate:"required,oneof=infant toddler preschool school_age"`
	RoomID    *uuid.UUID `json:"room_id" validate:"omitempty"`
	CheckIn   *time.Time `json:"check_in" validate:"omitempty"` // kosong = sekarang
}

func (r CheckInRequest) ToModel(now time.Time) *m.ChildAttendanceModel {
	in := now
	if r.CheckIn != nil {
		in = *r.CheckIn
	}
	return &m.ChildAttendanceModel{
		ChildAttendanceChildName: r.ChildName,
		ChildAttendanceAgeGroup:  r.AgeGroup,
		ChildAttendanceRoomID:    r.RoomID,
		ChildAttendanceCheckIn:   in,
	}
}

type CheckOutRequest struct {
	CheckOut *time.Time `json:"check_out" validate:"omitempty"` // kosong = sekarang
}

/* ===================== RESPONSES ===================== */

type ChildAttendanceResponse struct {
	ID        uuid.UUID  `json:"id"`
	ChildName string     `json:"child_name"`
	AgeGroup  string     `json:"age_group"`
	RoomID    *uuid.UUID `json:"room_id,omitempty"`
	CheckIn   time.Time  `json:"check_in"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
}

func FromModel(row *m.ChildAttendanceModel) ChildAttendanceResponse {
	return ChildAttendanceResponse{
		ID:        row.ChildAttendanceID,
		ChildName: row.ChildAttendanceChildName,
		AgeGroup:  row.ChildAttendanceAgeGroup,
		RoomID:    row.ChildAttendanceRoomID,
		CheckIn:   row.ChildAttendanceCheckIn,
		CheckOut:  row.ChildAttendanceCheckOut,
	}
}
