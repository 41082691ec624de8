package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DisciplinaryActionModel struct {
	DisciplinaryActionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:disciplinary_action_id" json:"disciplinary_action_id"`

	DisciplinaryActionEmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:disciplinary_action_employee_id" json:"disciplinary_action_employee_id"`

	DisciplinaryActionDate        datatypes.Date `gorm:"not null;column:disciplinary_action_date" json:"disciplinary_action_date"`
	DisciplinaryActionCategory    string         `gorm:"not null;column:disciplinary_action_category"    json:"disciplinary_action_category"` // verbal_warning|written_warning|suspension|termination
	DisciplinaryActionDescription string         `gorm:"not null;column:disciplinary_action_description" json:"disciplinary_action_description"`
	DisciplinaryActionIssuedBy    string         `gorm:"not null;column:disciplinary_action_issued_by"   json:"disciplinary_action_issued_by"`

	DisciplinaryActionCreatedAt time.Time      `gorm:"column:disciplinary_action_created_at;autoCreateTime" json:"disciplinary_action_created_at"`
	DisciplinaryActionDeletedAt gorm.DeletedAt `gorm:"column:disciplinary_action_deleted_at;index"          json:"disciplinary_action_deleted_at,omitempty"`
}

func (DisciplinaryActionModel) TableName() string { return "disciplinary_actions" }
