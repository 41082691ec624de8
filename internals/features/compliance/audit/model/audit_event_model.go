package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditEventModel = jejak append-only keputusan signifikan engine
// (pass selesai, alert diangkat). Delivery notifikasi ke luar
// bukan urusan tabel ini — ini catatan keputusannya.
type AuditEventModel struct {
	AuditEventID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:audit_event_id" json:"audit_event_id"`

	AuditEventType      string  `gorm:"not null;index;column:audit_event_type"  json:"audit_event_type"`
	AuditEventSeverity  *string `gorm:"column:audit_event_severity"             json:"audit_event_severity,omitempty"`
	AuditEventBucketKey *string `gorm:"column:audit_event_bucket_key"           json:"audit_event_bucket_key,omitempty"`
	AuditEventMessage   string  `gorm:"not null;column:audit_event_message"     json:"audit_event_message"`

	AuditEventPayload datatypes.JSON `gorm:"type:jsonb;column:audit_event_payload" json:"audit_event_payload,omitempty"`

	AuditEventOccurredAt time.Time `gorm:"not null;index;column:audit_event_occurred_at" json:"audit_event_occurred_at"`
	AuditEventCreatedAt  time.Time `gorm:"column:audit_event_created_at;autoCreateTime"  json:"audit_event_created_at"`
}

func (AuditEventModel) TableName() string { return "audit_events" }
