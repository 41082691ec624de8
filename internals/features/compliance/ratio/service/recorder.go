// internals/features/compliance/ratio/service/recorder.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"daycareku_backend/internals/features/compliance/ratio/model"
)

/*
SnapshotRecorder menjalankan satu recording pass: enumerasi bucket,
tarik 2 feed, hitung, evaluasi alert, simpan.

Catatan konsistensi: staff count dan child count dibaca berurutan
(2 query terpisah) dalam satu timeout per-bucket. Skew kecil di antara
keduanya DITERIMA sebagai aproksimasi — snapshot adalah observasi,
bukan read transaksional lintas feed.

Idempotensi: pemanggilan berulang untuk (tahun-ajaran, tanggal, jam,
bucket) yang sama menghasilkan observasi independen baru. TIDAK ada
de-duplikasi; baris ganda tinggal teragregasi di history.

Kebijakan gagal: continue-on-error per bucket. Satu feed error tidak
membatalkan bucket lain; hasil pass selalu daftar campuran.
*/
type SnapshotRecorder struct {
	Presence   PresenceFeed
	Attendance AttendanceFeed
	Store      SnapshotStore
	Settings   SettingsSource
	Rooms      RoomLister
	Policy     *AlertPolicy
	Sink       EventSink

	BucketTimeout time.Duration // default 3s
	Now           func() time.Time
}

func NewSnapshotRecorder(presence PresenceFeed, attendance AttendanceFeed, store SnapshotStore, settings SettingsSource, rooms RoomLister, policy *AlertPolicy, sink EventSink) *SnapshotRecorder {
	return &SnapshotRecorder{
		Presence:      presence,
		Attendance:    attendance,
		Store:         store,
		Settings:      settings,
		Rooms:         rooms,
		Policy:        policy,
		Sink:          sink,
		BucketTimeout: 3 * time.Second,
		Now:           time.Now,
	}
}

type RecordPassInput struct {
	SchoolYearID *uuid.UUID
	Date         time.Time // tanggal kalender
	Time         time.Time // jam:menit perekaman
	RecordedBy   string    // nama orang, atau model.RecordedByAutomatic
	IsAutomatic  bool
	Dimension    Dimension
	Notes        string
}

type BucketResult struct {
	Bucket     Bucket     `json:"-"`
	BucketKey  string     `json:"bucket_key"`
	Label      string     `json:"label"`
	SnapshotID *uuid.UUID `json:"snapshot_id,omitempty"`
	Severity   Severity   `json:"severity,omitempty"`
	Error      string     `json:"error,omitempty"`
}

type PassResult struct {
	Results   []BucketResult `json:"results"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

// Summary ala "3 recorded, 1 failed (Toddler: feed unavailable)".
func (r PassResult) Summary() string {
	s := fmt.Sprintf("%d recorded, %d failed", r.Succeeded, r.Failed)
	for _, br := range r.Results {
		if br.Error != "" {
			s += fmt.Sprintf(" (%s: %s)", br.Label, br.Error)
		}
	}
	return s
}

// RecordPass = SATU-SATUNYA entry point perekaman; trigger manual dan
// scheduler dua-duanya lewat sini supaya semantiknya identik.
func (r *SnapshotRecorder) RecordPass(ctx context.Context, input RecordPassInput) (PassResult, error) {
	if !input.Dimension.Valid() {
		return PassResult{}, fmt.Errorf("dimension tidak dikenal: %q", input.Dimension)
	}
	if input.RecordedBy == "" {
		input.RecordedBy = model.RecordedByAutomatic
	}

	// Settings dibaca SEKALI — pass reproducible dari satu config beku
	cfg, err := r.Settings.Load(ctx)
	if err != nil {
		return PassResult{}, fmt.Errorf("gagal baca compliance settings: %w", err)
	}
	if input.SchoolYearID == nil {
		input.SchoolYearID = cfg.ActiveSchoolYearID
	}

	buckets, err := r.enumerateBuckets(ctx, input.Dimension)
	if err != nil {
		return PassResult{}, err
	}

	result := PassResult{Results: make([]BucketResult, 0, len(buckets))}
	for _, b := range buckets {
		br := r.recordBucket(ctx, cfg, input, b)
		if br.Error != "" {
			result.Failed++
		} else {
			result.Succeeded++
		}
		result.Results = append(result.Results, br)
	}

	// 📣 audit event penyelesaian pass — fire-and-forget
	ev := Event{
		Type:       "ratio.pass_completed",
		Message:    result.Summary(),
		OccurredAt: r.Now(),
	}
	go func() {
		bg, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.Sink.Publish(bg, ev); err != nil {
			log.Printf("[RATIO] publish pass event gagal (diabaikan): %v", err)
		}
	}()

	return result, nil
}

func (r *SnapshotRecorder) enumerateBuckets(ctx context.Context, dim Dimension) ([]Bucket, error) {
	if dim == DimensionByAgeGroup {
		groups := AllAgeGroups()
		buckets := make([]Bucket, 0, len(groups))
		for _, g := range groups {
			buckets = append(buckets, Bucket{AgeGroup: g})
		}
		return buckets, nil
	}

	rooms, err := r.Rooms.ActiveRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("gagal baca daftar ruang: %w", err)
	}
	buckets := make([]Bucket, 0, len(rooms))
	for _, room := range rooms {
		buckets = append(buckets, Bucket{AgeGroup: room.AgeGroup, RoomName: room.Name})
	}
	return buckets, nil
}

func (r *SnapshotRecorder) recordBucket(ctx context.Context, cfg ThresholdConfig, input RecordPassInput, bucket Bucket) BucketResult {
	br := BucketResult{Bucket: bucket, BucketKey: bucket.Key(), Label: bucket.DisplayLabel()}

	timeout := r.BucketTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	bctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	at := combine(input.Date, input.Time)

	// 2 read berurutan — skew kecil diterima (lihat catatan di atas)
	staffCount, err := r.Presence.StaffCount(bctx, bucket, at)
	if err != nil {
		log.Printf("[RATIO] presence feed gagal bucket=%s: %v", bucket.Key(), err)
		br.Error = "feed unavailable"
		return br
	}
	childCount, err := r.Attendance.ChildCount(bctx, bucket, at)
	if err != nil {
		log.Printf("[RATIO] attendance feed gagal bucket=%s: %v", bucket.Key(), err)
		br.Error = "feed unavailable"
		return br
	}

	requiredRatio, usedDefault := cfg.RequiredRatio(bucket.AgeGroup)

	snap := buildSnapshot(input, bucket, staffCount, childCount, requiredRatio, usedDefault)
	if err := r.Store.Insert(bctx, snap); err != nil {
		log.Printf("[RATIO] insert snapshot gagal bucket=%s: %v", bucket.Key(), err)
		br.Error = "persistence failure"
		return br
	}

	br.SnapshotID = &snap.RatioSnapshotID
	br.Severity = r.Policy.Apply(bctx, cfg, bucket, snap, input.Date)
	return br
}

// buildSnapshot: murni — membekukan counts + ratio saat perekaman.
func buildSnapshot(input RecordPassInput, bucket Bucket, staffCount, childCount, requiredRatio int, usedDefault bool) *model.RatioSnapshotModel {
	snap := &model.RatioSnapshotModel{
		RatioSnapshotSchoolYearID:  input.SchoolYearID,
		RatioSnapshotDate:          datatypes.Date(input.Date),
		RatioSnapshotTime:          datatypes.NewTime(input.Time.Hour(), input.Time.Minute(), 0, 0),
		RatioSnapshotAgeGroup:      string(bucket.AgeGroup),
		RatioSnapshotStaffCount:    staffCount,
		RatioSnapshotChildCount:    childCount,
		RatioSnapshotRequiredRatio: requiredRatio,
		RatioSnapshotIsCompliant:   IsCompliant(requiredRatio, staffCount, childCount),
		RatioSnapshotAlertSent:     model.AlertSentNo,
		RatioSnapshotRecordedBy:    input.RecordedBy,
	}
	if bucket.RoomName != "" {
		room := bucket.RoomName
		snap.RatioSnapshotRoomName = &room
	}
	if ratio, ok := ActualRatio(staffCount, childCount); ok {
		snap.RatioSnapshotActualRatio = &ratio
	}
	if pct, ok := CompliancePercent(requiredRatio, staffCount, childCount); ok {
		snap.RatioSnapshotCompliancePercent = &pct
	}

	notes := input.Notes
	if usedDefault {
		// InvalidConfiguration fallback — WAJIB terlihat di baris, bukan diam-diam
		if notes != "" {
			notes += "; "
		}
		notes += "default ratio applied"
	}
	if notes != "" {
		snap.RatioSnapshotNotes = &notes
	}
	return snap
}

func combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, date.Location())
}
