package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "daycareku_backend/internals/features/hr/certifications/model"
)

/* ===================== REQUESTS ===================== */

type CreateCertificationRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	Name       string    `json:"name" validate:"required,min=2,max=200"`
	Issuer     *string   `json:"issuer" validate:"omitempty,max=200"`
	IssuedAt   string    `json:"issued_at" validate:"required,datetime=2006-01-02"`
	ExpiresAt  *string   `json:"expires_at" validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateCertificationRequest) ToModel() (*m.CertificationModel, error) {
	issued, err := time.Parse("2006-01-02", r.IssuedAt)
	if err != nil {
		return nil, err
	}
	row := &m.CertificationModel{
		CertificationEmployeeID: r.EmployeeID,
		CertificationName:       r.Name,
		CertificationIssuer:     r.Issuer,
		CertificationIssuedAt:   datatypes.Date(issued),
	}
	if r.ExpiresAt != nil {
		exp, err := time.Parse("2006-01-02", *r.ExpiresAt)
		if err != nil {
			return nil, err
		}
		d := datatypes.Date(exp)
		row.CertificationExpiresAt = &d
	}
	return row, nil
}

/* ===================== RESPONSES ===================== */

type CertificationResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	Name       string    `json:"name"`
	Issuer     *string   `json:"issuer,omitempty"`
	IssuedAt   string    `json:"issued_at"`
	ExpiresAt  *string   `json:"expires_at,omitempty"`
}

func FromModel(row *m.CertificationModel) CertificationResponse {
	resp := CertificationResponse{
		ID:         row.CertificationID,
		EmployeeID: row.CertificationEmployeeID,
		Name:       row.CertificationName,
		Issuer:     row.CertificationIssuer,
		IssuedAt:   time.Time(row.CertificationIssuedAt).Format("2006-01-02"),
	}
	if row.CertificationExpiresAt != nil {
		s := time.Time(*row.CertificationExpiresAt).Format("2006-01-02")
		resp.ExpiresAt = &s
	}
	return resp
}
