package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "daycareku_backend/internals/features/hr/disciplinary/model"
)

/* ===================== REQUESTS ===================== */

type CreateDisciplinaryActionRequest struct {
	EmployeeID  uuid.UUID `json:"employee_id" validate:"required"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string    `json:"category" validate:"required,oneof=verbal_warning written_warning suspension termination"`
	Description string    `json:"description" validate:"required,min=5,max=4000"`
	IssuedBy    string    `json:"issued_by" validate:"required,min=2,max=150"`
}

func (r CreateDisciplinaryActionRequest) ToModel() (*m.DisciplinaryActionModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	return &m.DisciplinaryActionModel{
		DisciplinaryActionEmployeeID:  r.EmployeeID,
		DisciplinaryActionDate:        datatypes.Date(date),
		DisciplinaryActionCategory:    r.Category,
		DisciplinaryActionDescription: r.Description,
		DisciplinaryActionIssuedBy:    r.IssuedBy,
	}, nil
}

/* ===================== RESPONSES ===================== */

type DisciplinaryActionResponse struct {
	ID          uuid.UUID `json:"id"`
	EmployeeID  uuid.UUID `json:"employee_id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	IssuedBy    string    `json:"issued_by"`
}

func FromModel(row *m.DisciplinaryActionModel) DisciplinaryActionResponse {
	return DisciplinaryActionResponse{
		ID:          row.DisciplinaryActionID,
		EmployeeID:  row.DisciplinaryActionEmployeeID,
		Date:        time.Time(row.DisciplinaryActionDate).Format("2006-01-02"),
		Category:    row.DisciplinaryActionCategory,
		Description: row.DisciplinaryActionDescription,
		IssuedBy:    row.DisciplinaryActionIssuedBy,
	}
}
