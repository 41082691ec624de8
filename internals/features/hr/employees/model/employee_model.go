package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EmployeeModel struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_id" json:"employee_id"`

	EmployeeFullName string `gorm:"not null;column:employee_full_name" json:"employee_full_name"`
	EmployeeRole     string `gorm:"not null;index;column:employee_role" json:"employee_role"`
	EmployeeEmail    *string `gorm:"column:employee_email" json:"employee_email,omitempty"`
	EmployeePhone    *string `gorm:"column:employee_phone" json:"employee_phone,omitempty"`

	EmployeeHireDate datatypes.Date `gorm:"not null;column:employee_hire_date" json:"employee_hire_date"`
	EmployeeIsActive bool           `gorm:"not null;default:true;column:employee_is_active" json:"employee_is_active"`
	EmployeeNotes    *string        `gorm:"column:employee_notes" json:"employee_notes,omitempty"`

	EmployeeCreatedAt time.Time      `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt *time.Time     `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at,omitempty"`
	EmployeeDeletedAt gorm.DeletedAt `gorm:"column:employee_deleted_at;index"          json:"employee_deleted_at,omitempty"`
}

func (EmployeeModel) TableName() string { return "employees" }
