package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequestModel struct {
	LeaveRequestID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:leave_request_id" json:"leave_request_id"`

	LeaveRequestEmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:leave_request_employee_id" json:"leave_request_employee_id"`
	LeaveRequestType       string    `gorm:"not null;column:leave_request_type"   json:"leave_request_type"` // annual|sick|unpaid
	LeaveRequestReason     *string   `gorm:"column:leave_request_reason"          json:"leave_request_reason,omitempty"`

	LeaveRequestStartDate datatypes.Date `gorm:"not null;column:leave_request_start_date" json:"leave_request_start_date"`
	LeaveRequestEndDate   datatypes.Date `gorm:"not null;column:leave_request_end_date"   json:"leave_request_end_date"`

	LeaveRequestStatus    string     `gorm:"not null;default:pending;column:leave_request_status" json:"leave_request_status"`
	LeaveRequestDecidedBy *string    `gorm:"column:leave_request_decided_by" json:"leave_request_decided_by,omitempty"`
	LeaveRequestDecidedAt *time.Time `gorm:"column:leave_request_decided_at" json:"leave_request_decided_at,omitempty"`

	LeaveRequestCreatedAt time.Time      `gorm:"column:leave_request_created_at;autoCreateTime" json:"leave_request_created_at"`
	LeaveRequestDeletedAt gorm.DeletedAt `gorm:"column:leave_request_deleted_at;index"          json:"leave_request_deleted_at,omitempty"`
}

func (LeaveRequestModel) TableName() string { return "leave_requests" }
