package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "daycareku_backend/internals/features/hr/leave/model"
)

/* ===================== REQUESTS ===================== */

type CreateLeaveRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	Type       string    `json:"type" validate:"required,oneof=annual sick unpaid"`
	Reason     *string   `json:"reason" validate:"omitempty,max=1000"`
	StartDate  string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string    `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (r CreateLeaveRequest) ToModel() (*m.LeaveRequestModel, error) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return nil, err
	}
	return &m.LeaveRequestModel{
		LeaveRequestEmployeeID: r.EmployeeID,
		LeaveRequestType:       r.Type,
		LeaveRequestReason:     r.Reason,
		LeaveRequestStartDate:  datatypes.Date(start),
		LeaveRequestEndDate:    datatypes.Date(end),
		LeaveRequestStatus:     m.LeaveStatusPending,
	}, nil
}

type DecideLeaveRequest struct {
	Status    string `json:"status" validate:"required,oneof=approved rejected"`
	DecidedBy string `json:"decided_by" validate:"required,min=2,max=150"`
}

/* ===================== RESPONSES ===================== */

type LeaveRequestResponse struct {
	ID         uuid.UUID  `json:"id"`
	EmployeeID uuid.UUID  `json:"employee_id"`
	Type       string     `json:"type"`
	Reason     *string    `json:"reason,omitempty"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Status     string     `json:"status"`
	DecidedBy  *string    `json:"decided_by,omitempty"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
}

func FromModel(row *m.LeaveRequestModel) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:         row.LeaveRequestID,
		EmployeeID: row.LeaveRequestEmployeeID,
		Type:       row.LeaveRequestType,
		Reason:     row.LeaveRequestReason,
		StartDate:  time.Time(row.LeaveRequestStartDate).Format("2006-01-02"),
		EndDate:    time.Time(row.LeaveRequestEndDate).Format("2006-01-02"),
		Status:     row.LeaveRequestStatus,
		DecidedBy:  row.LeaveRequestDecidedBy,
		DecidedAt:  row.LeaveRequestDecidedAt,
	}
}
