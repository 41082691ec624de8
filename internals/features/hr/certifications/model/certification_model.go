package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CertificationModel struct {
	CertificationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:certification_id" json:"certification_id"`

	CertificationEmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:certification_employee_id" json:"certification_employee_id"`
	CertificationName       string    `gorm:"not null;column:certification_name"   json:"certification_name"`
	CertificationIssuer     *string   `gorm:"column:certification_issuer"          json:"certification_issuer,omitempty"`

	CertificationIssuedAt  datatypes.Date  `gorm:"not null;column:certification_issued_at" json:"certification_issued_at"`
	CertificationExpiresAt *datatypes.Date `gorm:"column:certification_expires_at"         json:"certification_expires_at,omitempty"`

	CertificationCreatedAt time.Time      `gorm:"column:certification_created_at;autoCreateTime" json:"certification_created_at"`
	CertificationUpdatedAt *time.Time     `gorm:"column:certification_updated_at;autoUpdateTime" json:"certification_updated_at,omitempty"`
	CertificationDeletedAt gorm.DeletedAt `gorm:"column:certification_deleted_at;index"          json:"certification_deleted_at,omitempty"`
}

func (CertificationModel) TableName() string { return "certifications" }
