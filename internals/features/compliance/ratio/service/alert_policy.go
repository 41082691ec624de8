// internals/features/compliance/ratio/service/alert_policy.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"daycareku_backend/internals/features/compliance/ratio/model"
)

/*
AlertPolicy memutuskan kapan snapshot baru menghasilkan alert:
  - violation: tidak patuh DAN ada anak
  - warning  : masih patuh tapi compliance percent >= ambang warning
Duplikat di hari+bucket yang sama ditekan, KECUALI severity naik
(warning → violation). Emisi ke sink fire-and-forget.
*/
type AlertPolicy struct {
	Store SnapshotStore
	Sink  EventSink
	Now   func() time.Time
}

func NewAlertPolicy(store SnapshotStore, sink EventSink) *AlertPolicy {
	return &AlertPolicy{Store: store, Sink: sink, Now: time.Now}
}

// ClassifySeverity: murni, tanpa I/O.
func ClassifySeverity(warningPercent int, isCompliant bool, childCount int, compliancePercent *float64) Severity {
	if !isCompliant && childCount > 0 {
		return SeverityViolation
	}
	if isCompliant && compliancePercent != nil && *compliancePercent >= float64(warningPercent) {
		return SeverityWarning
	}
	return SeverityNone
}

// ShouldRaise: murni. prev = severity alert terakhir hari itu (None bila belum ada).
// Duplikat ditekan kecuali eskalasi warning → violation.
func ShouldRaise(prev, current Severity) bool {
	if current == SeverityNone {
		return false
	}
	if prev == SeverityNone {
		return true
	}
	return prev == SeverityWarning && current == SeverityViolation
}

// severityOf menurunkan severity dari baris snapshot tersimpan.
func severityOf(snap *model.RatioSnapshotModel) Severity {
	if snap == nil {
		return SeverityNone
	}
	if !snap.RatioSnapshotIsCompliant {
		return SeverityViolation
	}
	return SeverityWarning
}

// Apply mengevaluasi snapshot yang baru tersimpan. Mengembalikan severity
// yang DIANGKAT (None bila ditekan/tidak eligible). Error cek-duplikat
// dicatat lalu dianggap "belum pernah alert" — lebih baik alert dobel
// daripada pelanggaran lolos tanpa alert.
func (p *AlertPolicy) Apply(ctx context.Context, cfg ThresholdConfig, bucket Bucket, snap *model.RatioSnapshotModel, date time.Time) Severity {
	current := ClassifySeverity(cfg.WarningPercent, snap.RatioSnapshotIsCompliant, snap.RatioSnapshotChildCount, snap.RatioSnapshotCompliancePercent)
	if current == SeverityNone {
		return SeverityNone
	}

	prev := SeverityNone
	last, err := p.Store.LastAlertedOnDate(ctx, bucket, date)
	if err != nil {
		log.Printf("[ALERT] gagal cek alert terakhir bucket=%s: %v", bucket.Key(), err)
	} else {
		prev = severityOf(last)
	}

	if !ShouldRaise(prev, current) {
		return SeverityNone
	}

	now := p.Now()
	if err := p.Store.MarkAlertSent(ctx, snap.RatioSnapshotID, now); err != nil {
		log.Printf("[ALERT] gagal tandai alert_sent snapshot=%s: %v", snap.RatioSnapshotID, err)
		return SeverityNone
	}
	snap.RatioSnapshotAlertSent = model.AlertSentYes
	snap.RatioSnapshotAlertSentTime = &now

	// 🔔 fire-and-forget: publish tidak boleh blok/menggagalkan pass
	ev := Event{
		Type:           "ratio.alert",
		Severity:       current,
		BucketKey:      bucket.Key(),
		BucketLabel:    bucket.DisplayLabel(),
		StaffCount:     snap.RatioSnapshotStaffCount,
		ChildCount:     snap.RatioSnapshotChildCount,
		RequiredRatio:  snap.RatioSnapshotRequiredRatio,
		RecipientRoles: cfg.AlertRecipientRoles,
		Message: fmt.Sprintf("%s: %d anak / %d staf (wajib 1:%d) — %s",
			bucket.DisplayLabel(), snap.RatioSnapshotChildCount, snap.RatioSnapshotStaffCount,
			snap.RatioSnapshotRequiredRatio, current),
		OccurredAt: now,
	}
	go func() {
		bg, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Sink.Publish(bg, ev); err != nil {
			log.Printf("[ALERT] publish gagal (diabaikan): %v", err)
		}
	}()

	return current
}
