// internals/features/compliance/ratio/service/ports.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"daycareku_backend/internals/features/compliance/ratio/model"
)

// Bucket = unit pengukuran rasio: satu kelompok usia,
// atau satu kelompok usia di dalam satu ruang.
type Bucket struct {
	AgeGroup AgeGroup
	RoomName string // kosong = seluruh fasilitas
}

func (b Bucket) Key() string {
	if b.RoomName == "" {
		return string(b.AgeGroup)
	}
	return string(b.AgeGroup) + "@" + b.RoomName
}

func (b Bucket) DisplayLabel() string {
	if b.RoomName == "" {
		return b.AgeGroup.Label()
	}
	return b.AgeGroup.Label() + " - " + b.RoomName
}

// Dimension memilih enumerasi bucket dalam satu pass.
type Dimension string

const (
	DimensionByAgeGroup Dimension = "by_age_group"
	DimensionByRoom     Dimension = "by_room"
)

func (d Dimension) Valid() bool {
	return d == DimensionByAgeGroup || d == DimensionByRoom
}

/* ===================== EXTERNAL FEEDS ===================== */

// PresenceFeed: jumlah staf pengasuh yang clock-in dan ter-assign
// ke bucket pada instant (date+time) tertentu.
type PresenceFeed interface {
	StaffCount(ctx context.Context, bucket Bucket, at time.Time) (int, error)
}

// AttendanceFeed: jumlah anak yang check-in dan ter-assign
// ke bucket pada instant tertentu.
type AttendanceFeed interface {
	ChildCount(ctx context.Context, bucket Bucket, at time.Time) (int, error)
}

/* ===================== SETTINGS ===================== */

// ThresholdConfig = nilai settings yang dibekukan untuk satu pass.
type ThresholdConfig struct {
	RequiredRatios          map[AgeGroup]int
	WarningPercent          int
	SnapshotIntervalMinutes int
	OperatingStartHour      int
	OperatingEndHour        int
	AlertRecipientRoles     []string
	ActiveSchoolYearID      *uuid.UUID
}

// RequiredRatio mengembalikan rasio terkonfigurasi untuk kelompok usia,
// atau fallback ke default statutori bila nilainya di luar 1..50
// (InvalidConfiguration — ditandai usedDefault, tidak diam-diam patuh).
func (c ThresholdConfig) RequiredRatio(g AgeGroup) (ratio int, usedDefault bool) {
	r, ok := c.RequiredRatios[g]
	if !ok || r < 1 || r > 50 {
		return g.DefaultRatio(), true
	}
	return r, false
}

type SettingsSource interface {
	Load(ctx context.Context) (ThresholdConfig, error)
}

/* ===================== PERSISTENCE ===================== */

type SnapshotStore interface {
	Insert(ctx context.Context, snap *model.RatioSnapshotModel) error
	// Snapshot ter-alert terakhir untuk bucket+tanggal yang sama (nil bila belum ada)
	LastAlertedOnDate(ctx context.Context, bucket Bucket, date time.Time) (*model.RatioSnapshotModel, error)
	// Set pasangan alert_sent/alert_sent_time — sekali, setelah insert
	MarkAlertSent(ctx context.Context, snapshotID uuid.UUID, at time.Time) error
}

// RoomLister menyediakan daftar ruang aktif untuk dimensi by_room.
type RoomLister interface {
	ActiveRooms(ctx context.Context) ([]RoomInfo, error)
}

type RoomInfo struct {
	Name     string
	AgeGroup AgeGroup
}

/* ===================== EVENT SINK ===================== */

// Severity hasil klasifikasi alert policy.
type Severity string

const (
	SeverityNone      Severity = ""
	SeverityWarning   Severity = "warning"
	SeverityViolation Severity = "violation"
)

// Event dikirim fire-and-forget ke sink notifikasi/audit.
// Gagal publish tidak boleh menggagalkan penyimpanan snapshot.
type Event struct {
	Type           string    `json:"type"` // "ratio.alert" | "ratio.pass_completed"
	Severity       Severity  `json:"severity,omitempty"`
	BucketKey      string    `json:"bucket_key,omitempty"`
	BucketLabel    string    `json:"bucket_label,omitempty"`
	StaffCount     int       `json:"staff_count,omitempty"`
	ChildCount     int       `json:"child_count,omitempty"`
	RequiredRatio  int       `json:"required_ratio,omitempty"`
	RecipientRoles []string  `json:"recipient_roles,omitempty"`
	Message        string    `json:"message"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type EventSink interface {
	Publish(ctx context.Context, ev Event) error
}
