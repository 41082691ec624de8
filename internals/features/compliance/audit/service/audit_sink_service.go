// internals/features/compliance/audit/service/audit_sink_service.go
package service

import (
	"context"
	"log"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	auditModel "daycareku_backend/internals/features/compliance/audit/model"
	ratioService "daycareku_backend/internals/features/compliance/ratio/service"
)

// AuditSink mengimplementasikan EventSink engine rasio: event jadi
// baris audit_events + satu baris log. Kegagalan tulis hanya dicatat —
// caller memperlakukannya fire-and-forget.
type AuditSink struct {
	DB *gorm.DB
}

func NewAuditSink(db *gorm.DB) *AuditSink { return &AuditSink{DB: db} }

func (s *AuditSink) Publish(ctx context.Context, ev ratioService.Event) error {
	payload, err := sonic.Marshal(ev)
	if err != nil {
		return err
	}

	row := auditModel.AuditEventModel{
		AuditEventType:       ev.Type,
		AuditEventMessage:    ev.Message,
		AuditEventPayload:    payload,
		AuditEventOccurredAt: ev.OccurredAt,
	}
	if ev.Severity != ratioService.SeverityNone {
		sev := string(ev.Severity)
		row.AuditEventSeverity = &sev
	}
	if ev.BucketKey != "" {
		key := ev.BucketKey
		row.AuditEventBucketKey = &key
	}

	log.Printf("[AUDIT] %s: %s", ev.Type, ev.Message)
	return s.DB.WithContext(ctx).Create(&row).Error
}
