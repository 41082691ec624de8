package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "daycareku_backend/internals/features/hr/schedules/model"
)

/* ===================== REQUESTS ===================== */

type CreateShiftTemplateRequest struct {
	Label     string `json:"label" validate:"required,min=2,max=100"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

func (r CreateShiftTemplateRequest) ToModel() (*m.ShiftTemplateModel, error) {
	start, err := time.Parse("15:04", r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("15:04", r.EndTime)
	if err != nil {
		return nil, err
	}
	return &m.ShiftTemplateModel{
		ShiftTemplateLabel:     r.Label,
		ShiftTemplateStartTime: datatypes.NewTime(start.Hour(), start.Minute(), 0, 0),
		ShiftTemplateEndTime:   datatypes.NewTime(end.Hour(), end.Minute(), 0, 0),
	}, nil
}

type CreateScheduleAssignmentRequest struct {
	EmployeeID      uuid.UUID  `json:"employee_id" validate:"required"`
	ShiftTemplateID uuid.UUID  `json:"shift_template_id" validate:"required"`
	RoomID          *uuid.UUID `json:"room_id" validate:"omitempty"`
	Weekday         int        `json:"weekday" validate:"gte=0,lte=6"`
}

func (r CreateScheduleAssignmentRequest) ToModel() *m.ScheduleAssignmentModel {
	return &m.ScheduleAssignmentModel{
		ScheduleAssignmentEmployeeID:      r.EmployeeID,
		ScheduleAssignmentShiftTemplateID: r.ShiftTemplateID,
		ScheduleAssignmentRoomID:          r.RoomID,
		ScheduleAssignmentWeekday:         r.Weekday,
	}
}

/* ===================== RESPONSES ===================== */

type ShiftTemplateResponse struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

func ShiftTemplateFromModel(row *m.ShiftTemplateModel) ShiftTemplateResponse {
	return ShiftTemplateResponse{
		ID:        row.ShiftTemplateID,
		Label:     row.ShiftTemplateLabel,
		StartTime: row.ShiftTemplateStartTime.String(),
		EndTime:   row.ShiftTemplateEndTime.String(),
	}
}

type ScheduleAssignmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	EmployeeID      uuid.UUID  `json:"employee_id"`
	ShiftTemplateID uuid.UUID  `json:"shift_template_id"`
	RoomID          *uuid.UUID `json:"room_id,omitempty"`
	Weekday         int        `json:"weekday"`
}

func AssignmentFromModel(row *m.ScheduleAssignmentModel) ScheduleAssignmentResponse {
	return ScheduleAssignmentResponse{
		ID:              row.ScheduleAssignmentID,
		EmployeeID:      row.ScheduleAssignmentEmployeeID,
		ShiftTemplateID: row.ScheduleAssignmentShiftTemplateID,
		RoomID:          row.ScheduleAssignmentRoomID,
		Weekday:         row.ScheduleAssignmentWeekday,
	}
}
