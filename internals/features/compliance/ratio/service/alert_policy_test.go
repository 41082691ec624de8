package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daycareku_backend/internals/features/compliance/ratio/model"
)

/* ===================== FAKES ===================== */

type fakeStore struct {
	mu         sync.Mutex
	inserted   []*model.RatioSnapshotModel
	lastAlert  *model.RatioSnapshotModel
	lastErr    error
	marked     []uuid.UUID
	insertErr  error
	markErr    error
}

func (f *fakeStore) Insert(_ context.Context, snap *model.RatioSnapshotModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	if snap.RatioSnapshotID == uuid.Nil {
		snap.RatioSnapshotID = uuid.New()
	}
	f.inserted = append(f.inserted, snap)
	return nil
}

func (f *fakeStore) LastAlertedOnDate(_ context.Context, _ Bucket, _ time.Time) (*model.RatioSnapshotModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAlert, f.lastErr
}

func (f *fakeStore) MarkAlertSent(_ context.Context, id uuid.UUID, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, id)
	return nil
}

type fakeSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (f *fakeSink) Publish(_ context.Context, ev Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeSink) Events() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Event(nil), f.events...)
}

func (f *fakeSink) waitForEvents(t *testing.T, n int) []Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if evs := f.Events(); len(evs) >= n {
			return evs
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("menunggu %d event, dapat %d", n, len(f.Events()))
	return nil
}

/* ===================== CLASSIFY / SHOULD RAISE ===================== */

func TestClassifySeverity(t *testing.T) {
	pct := func(v float64) *float64 { return &v }

	tests := []struct {
		name      string
		compliant bool
		child     int
		percent   *float64
		want      Severity
	}{
		{"tidak patuh dengan anak = violation", false, 11, pct(110), SeverityViolation},
		{"patuh di ambang warning", true, 20, pct(100), SeverityWarning},
		{"patuh pas 90 = warning", true, 18, pct(90), SeverityWarning},
		{"patuh di bawah ambang", true, 10, pct(62.5), SeverityNone},
		{"tanpa anak tidak pernah alert", true, 0, pct(0), SeverityNone},
		{"percent undefined tidak warning", true, 5, nil, SeverityNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySeverity(90, tt.compliant, tt.child, tt.percent))
		})
	}
}

func TestShouldRaise(t *testing.T) {
	assert.True(t, ShouldRaise(SeverityNone, SeverityWarning))
	assert.True(t, ShouldRaise(SeverityNone, SeverityViolation))
	assert.True(t, ShouldRaise(SeverityWarning, SeverityViolation), "eskalasi harus lolos dedupe")

	assert.False(t, ShouldRaise(SeverityWarning, SeverityWarning), "duplikat warning ditekan")
	assert.False(t, ShouldRaise(SeverityViolation, SeverityViolation), "duplikat violation ditekan")
	assert.False(t, ShouldRaise(SeverityViolation, SeverityWarning), "de-eskalasi tidak alert ulang")
	assert.False(t, ShouldRaise(SeverityNone, SeverityNone))
}

/* ===================== APPLY ===================== */

func newTestSnapshot(staff, child, required int) *model.RatioSnapshotModel {
	snap := &model.RatioSnapshotModel{
		RatioSnapshotID:            uuid.New(),
		RatioSnapshotAgeGroup:      string(AgeGroupInfant),
		RatioSnapshotStaffCount:    staff,
		RatioSnapshotChildCount:    child,
		RatioSnapshotRequiredRatio: required,
		RatioSnapshotIsCompliant:   IsCompliant(required, staff, child),
		RatioSnapshotAlertSent:     model.AlertSentNo,
		RatioSnapshotRecordedBy:    "tester",
	}
	if pct, ok := CompliancePercent(required, staff, child); ok {
		snap.RatioSnapshotCompliancePercent = &pct
	}
	return snap
}

func TestAlertPolicyApplyViolation(t *testing.T) {
	store := &fakeStore{}
	sink := &fakeSink{}
	policy := NewAlertPolicy(store, sink)
	cfg := ThresholdConfig{WarningPercent: 90, AlertRecipientRoles: []string{"director", "supervisor"}}

	snap := newTestSnapshot(2, 11, 5)
	sev := policy.Apply(context.Background(), cfg, Bucket{AgeGroup: AgeGroupInfant}, snap, time.Now())

	require.Equal(t, SeverityViolation, sev)
	assert.Equal(t, []uuid.UUID{snap.RatioSnapshotID}, store.marked)
	assert.Equal(t, model.AlertSentYes, snap.RatioSnapshotAlertSent)
	require.NotNil(t, snap.RatioSnapshotAlertSentTime)

	evs := sink.waitForEvents(t, 1)
	assert.Equal(t, "ratio.alert", evs[0].Type)
	assert.Equal(t, SeverityViolation, evs[0].Severity)
	assert.Equal(t, []string{"director", "supervisor"}, evs[0].RecipientRoles)
}

func TestAlertPolicyApplyDedupeSameDay(t *testing.T) {
	prev := newTestSnapshot(2, 11, 5) // violation yang sudah ter-alert
	prev.RatioSnapshotAlertSent = model.AlertSentYes

	store := &fakeStore{lastAlert: prev}
	sink := &fakeSink{}
	policy := NewAlertPolicy(store, sink)
	cfg := ThresholdConfig{WarningPercent: 90}

	snap := newTestSnapshot(2, 12, 5)
	sev := policy.Apply(context.Background(), cfg, Bucket{AgeGroup: AgeGroupInfant}, snap, time.Now())

	assert.Equal(t, SeverityNone, sev, "violation kedua di hari yang sama ditekan")
	assert.Empty(t, store.marked)
	assert.Equal(t, model.AlertSentNo, snap.RatioSnapshotAlertSent)
}

func TestAlertPolicyApplyEscalation(t *testing.T) {
	prev := newTestSnapshot(1, 20, 20) // warning (pas 100%)
	prev.RatioSnapshotAlertSent = model.AlertSentYes

	store := &fakeStore{lastAlert: prev}
	sink := &fakeSink{}
	policy := NewAlertPolicy(store, sink)
	cfg := ThresholdConfig{WarningPercent: 90}

	snap := newTestSnapshot(1, 25, 20) // sekarang violation
	sev := policy.Apply(context.Background(), cfg, Bucket{AgeGroup: AgeGroupSchoolAge}, snap, time.Now())

	assert.Equal(t, SeverityViolation, sev, "warning → violation harus alert lagi")
	assert.Len(t, store.marked, 1)
}

func TestAlertPolicyApplyDedupeErrorTetapAlert(t *testing.T) {
	store := &fakeStore{lastErr: errors.New("db down")}
	sink := &fakeSink{}
	policy := NewAlertPolicy(store, sink)
	cfg := ThresholdConfig{WarningPercent: 90}

	snap := newTestSnapshot(0, 5, 10)
	sev := policy.Apply(context.Background(), cfg, Bucket{AgeGroup: AgeGroupPreschool}, snap, time.Now())

	assert.Equal(t, SeverityViolation, sev, "gagal cek duplikat tidak boleh menelan alert")
}

func TestAlertPolicyApplyMarkGagal(t *testing.T) {
	store := &fakeStore{markErr: errors.New("db down")}
	sink := &fakeSink{}
	policy := NewAlertPolicy(store, sink)
	cfg := ThresholdConfig{WarningPercent: 90}

	snap := newTestSnapshot(2, 11, 5)
	sev := policy.Apply(context.Background(), cfg, Bucket{AgeGroup: AgeGroupInfant}, snap, time.Now())

	assert.Equal(t, SeverityNone, sev)
	assert.Equal(t, model.AlertSentNo, snap.RatioSnapshotAlertSent)
	assert.Empty(t, sink.Events())
}

func TestAlertPolicyApplyPatuhTanpaWarning(t *testing.T) {
	store := &fakeStore{}
	sink := &fakeSink{}
	policy := NewAlertPolicy(store, sink)
	cfg := ThresholdConfig{WarningPercent: 90}

	snap := newTestSnapshot(3, 10, 5) // 66.7%
	sev := policy.Apply(context.Background(), cfg, Bucket{AgeGroup: AgeGroupInfant}, snap, time.Now())

	assert.Equal(t, SeverityNone, sev)
	assert.Empty(t, store.marked)
	assert.Empty(t, sink.Events())
}
