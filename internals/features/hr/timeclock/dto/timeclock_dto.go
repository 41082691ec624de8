package dto

import (
	"time"

	"github.com/google/uuid"

	m "daycareku_backend/internals/features/hr/timeclock/model"
)

/* ===================== REQUESTS ===================== */

type ClockInRequest struct {
	EmployeeID uuid.UUID  `json:"employee_id" validate:"required"`
	AgeGroup   string     `json:"age_group" validate:"required,oneof=infant toddler preschool school_age"`
	RoomID     *uuid.UUID `json:"room_id" validate:"omitempty"`
	ClockIn    *time.Time `json:"clock_in" validate:"omitempty"` // kosong = sekarang
}

func (r ClockInRequest) ToModel(now time.Time) *m.TimeclockEntryModel {
	in := now
	if r.ClockIn != nil {
		in = *r.ClockIn
	}
	return &m.TimeclockEntryModel{
		TimeclockEntryEmployeeID: r.EmployeeID,
		TimeclockEntryAgeGroup:   r.AgeGroup,
		TimeclockEntryRoomID:     r.RoomID,
		TimeclockEntryClockIn:    in,
	}
}

type ClockOutRequest struct {
	ClockOut *time.Time `json:"clock_out" validate:"omitempty"` // kosong = sekarang
}

/* ===================== RESPONSES ===================== */

type TimeclockEntryResponse struct {
	ID         uuid.UUID  `json:"id"`
	EmployeeID uuid.UUID  `json:"employee_id"`
	AgeGroup   string     `json:"age_group"`
	RoomID     *uuid.UUID `json:"room_id,omitempty"`
	ClockIn    time.Time  `json:"clock_in"`
	ClockOut   *time.Time `json:"clock_out,omitempty"`
}

func FromModel(row *m.TimeclockEntryModel) TimeclockEntryResponse {
	return TimeclockEntryResponse{
		ID:         row.TimeclockEntryID,
		EmployeeID: row.TimeclockEntryEmployeeID,
		AgeGroup:   row.TimeclockEntryAgeGroup,
		RoomID:     row.TimeclockEntryRoomID,
		ClockIn:    row.TimeclockEntryClockIn,
		ClockOut:   row.TimeclockEntryClockOut,
	}
}
