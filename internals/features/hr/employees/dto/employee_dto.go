package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "daycareku_backend/internals/features/hr/employees/model"
)

/* ===================== REQUESTS ===================== */

type CreateEmployeeRequest struct {
	FullName string  `json:"full_name" validate:"required,min=2,max=150"`
	Role     string  `json:"role" validate:"required,oneof=director supervisor lead_teacher assistant administrator"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,min=6,max=30"`
	HireDate string  `json:"hire_date" validate:"required,datetime=2006-01-02"`
	Notes    *string `json:"notes" validate:"omitempty,max=2000"`
}

func (r CreateEmployeeRequest) ToModel() (*m.EmployeeModel, error) {
	hire, err := time.Parse("2006-01-02", r.HireDate)
	if err != nil {
		return nil, err
	}
	return &m.EmployeeModel{
		EmployeeFullName: r.FullName,
		EmployeeRole:     r.Role,
		EmployeeEmail:    r.Email,
		EmployeePhone:    r.Phone,
		EmployeeHireDate: datatypes.Date(hire),
		EmployeeIsActive: true,
		EmployeeNotes:    r.Notes,
	}, nil
}

type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=2,max=150"`
	Role     *string `json:"role" validate:"omitempty,oneof=director supervisor lead_teacher assistant administrator"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,min=6,max=30"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
	Notes    *string `json:"notes" validate:"omitempty,max=2000"`
}

func (r UpdateEmployeeRequest) Apply(row *m.EmployeeModel) {
	if r.FullName != nil {
		row.EmployeeFullName = *r.FullName
	}
	if r.Role != nil {
		row.EmployeeRole = *r.Role
	}
	if r.Email != nil {
		row.EmployeeEmail = r.Email
	}
	if r.Phone != nil {
		row.EmployeePhone = r.Phone
	}
	if r.IsActive != nil {
		row.EmployeeIsActive = *r.IsActive
	}
	if r.Notes != nil {
		row.EmployeeNotes = r.Notes
	}
}

/* ===================== RESPONSES ===================== */

type EmployeeResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	Email    *string   `json:"email,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	HireDate string    `json:"hire_date"`
	IsActive bool      `json:"is_active"`
	Notes    *string   `json:"notes,omitempty"`
}

func FromModel(row *m.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		ID:       row.EmployeeID,
		FullName: row.EmployeeFullName,
		Role:     row.EmployeeRole,
		Email:    row.EmployeeEmail,
		Phone:    row.EmployeePhone,
		HireDate: time.Time(row.EmployeeHireDate).Format("2006-01-02"),
		IsActive: row.EmployeeIsActive,
		Notes:    row.EmployeeNotes,
	}
}
