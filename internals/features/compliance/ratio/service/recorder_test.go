package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ===================== FAKES ===================== */

// fakeCounts: satu feed untuk staf atau anak, count per bucket key.
type fakeCounts struct {
	counts map[string]int
	errFor map[string]error
}

func (f *fakeCounts) count(bucket Bucket) (int, error) {
	if err := f.errFor[bucket.Key()]; err != nil {
		return 0, err
	}
	return f.counts[bucket.Key()], nil
}

type fakePresence struct{ fakeCounts }

func (f *fakePresence) StaffCount(_ context.Context, bucket Bucket, _ time.Time) (int, error) {
	return f.count(bucket)
}

type fakeAttendance struct{ fakeCounts }

func (f *fakeAttendance) ChildCount(_ context.Context, bucket Bucket, _ time.Time) (int, error) {
	return f.count(bucket)
}

type fakeSettings struct {
	cfg ThresholdConfig
	err error
}

func (f *fakeSettings) Load(_ context.Context) (ThresholdConfig, error) {
	return f.cfg, f.err
}

type fakeRooms struct {
	rooms []RoomInfo
	err   error
}

func (f *fakeRooms) ActiveRooms(_ context.Context) ([]RoomInfo, error) {
	return f.rooms, f.err
}

func defaultTestConfig() ThresholdConfig {
	return ThresholdConfig{
		RequiredRatios: map[AgeGroup]int{
			AgeGroupInfant:    5,
			AgeGroupToddler:   8,
			AgeGroupPreschool: 10,
			AgeGroupSchoolAge: 20,
		},
		WarningPercent:          90,
		SnapshotIntervalMinutes: 30,
		OperatingStartHour:      6,
		OperatingEndHour:        19,
	}
}

func newTestRecorder(presence PresenceFeed, attendance AttendanceFeed, store *fakeStore, settings SettingsSource, rooms RoomLister, sink *fakeSink) *SnapshotRecorder {
	return NewSnapshotRecorder(presence, attendance, store, settings, rooms, NewAlertPolicy(store, sink), sink)
}

/* ===================== TESTS ===================== */

func TestRecordPassByAgeGroup(t *testing.T) {
	presence := &fakePresence{fakeCounts{counts: map[string]int{
		"infant": 2, "toddler": 3, "preschool": 2, "school_age": 1,
	}}}
	attendance := &fakeAttendance{fakeCounts{counts: map[string]int{
		"infant": 8, "toddler": 0, "preschool": 15, "school_age": 20,
	}}}
	store := &fakeStore{}
	sink := &fakeSink{}
	rec := newTestRecorder(presence, attendance, store, &fakeSettings{cfg: defaultTestConfig()}, &fakeRooms{}, sink)

	now := time.Date(2026, 3, 9, 9, 30, 0, 0, time.UTC)
	result, err := rec.RecordPass(context.Background(), RecordPassInput{
		Date:      now,
		Time:      now,
		Dimension: DimensionByAgeGroup,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Succeeded)
	assert.Zero(t, result.Failed)
	require.Len(t, store.inserted, 4)

	// urutan bucket tetap: infant, toddler, preschool, school_age
	byGroup := map[string]int{}
	for i, snap := range store.inserted {
		byGroup[snap.RatioSnapshotAgeGroup] = i
		assert.Equal(t, "automatic", snap.RatioSnapshotRecordedBy)
	}
	infant := store.inserted[byGroup["infant"]]
	assert.Equal(t, 2, infant.RatioSnapshotStaffCount)
	assert.Equal(t, 8, infant.RatioSnapshotChildCount)
	assert.Equal(t, 5, infant.RatioSnapshotRequiredRatio)
	assert.True(t, infant.RatioSnapshotIsCompliant)
	require.NotNil(t, infant.RatioSnapshotActualRatio)
	assert.InDelta(t, 4.0, *infant.RatioSnapshotActualRatio, 1e-9)

	// toddler tanpa anak: ratio undefined → NULL, tetap patuh
	toddler := store.inserted[byGroup["toddler"]]
	assert.Nil(t, toddler.RatioSnapshotActualRatio)
	assert.True(t, toddler.RatioSnapshotIsCompliant)

	// preschool 15 anak / 2 staf wajib 1:10 → patuh
	preschool := store.inserted[byGroup["preschool"]]
	assert.True(t, preschool.RatioSnapshotIsCompliant)

	evs := sink.waitForEvents(t, 1)
	var passEv *Event
	for i := range evs {
		if evs[i].Type == "ratio.pass_completed" {
			passEv = &evs[i]
		}
	}
	require.NotNil(t, passEv)
	assert.Contains(t, passEv.Message, "4 recorded, 0 failed")
}

func TestRecordPassContinueOnError(t *testing.T) {
	presence := &fakePresence{fakeCounts{
		counts: map[string]int{"infant": 2, "preschool": 1, "school_age": 1},
		errFor: map[string]error{"toddler": errors.New("feed timeout")},
	}}
	attendance := &fakeAttendance{fakeCounts{counts: map[string]int{
		"infant": 8, "toddler": 5, "preschool": 9, "school_age": 12,
	}}}
	store := &fakeStore{}
	sink := &fakeSink{}
	rec := newTestRecorder(presence, attendance, store, &fakeSettings{cfg: defaultTestConfig()}, &fakeRooms{}, sink)

	result, err := rec.RecordPass(context.Background(), RecordPassInput{
		Date:      time.Now(),
		Time:      time.Now(),
		Dimension: DimensionByAgeGroup,
	})
	require.NoError(t, err, "satu bucket gagal tidak menggagalkan pass")

	assert.Equal(t, 3, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, store.inserted, 3)

	var failed *BucketResult
	for i := range result.Results {
		if result.Results[i].Error != "" {
			failed = &result.Results[i]
		}
	}
	require.NotNil(t, failed)
	assert.Equal(t, "toddler", failed.BucketKey)
	assert.Equal(t, "feed unavailable", failed.Error)
	assert.Nil(t, failed.SnapshotID)

	assert.Contains(t, result.Summary(), "3 recorded, 1 failed")
	assert.Contains(t, result.Summary(), "Toddler: feed unavailable")
}

func TestRecordPassPersistenceFailure(t *testing.T) {
	presence := &fakePresence{fakeCounts{counts: map[string]int{"infant": 1, "toddler": 1, "preschool": 1, "school_age": 1}}}
	attendance := &fakeAttendance{fakeCounts{counts: map[string]int{"infant": 1, "toddler": 1, "preschool": 1, "school_age": 1}}}
	store := &fakeStore{insertErr: errors.New("disk full")}
	sink := &fakeSink{}
	rec := newTestRecorder(presence, attendance, store, &fakeSettings{cfg: defaultTestConfig()}, &fakeRooms{}, sink)

	result, err := rec.RecordPass(context.Background(), RecordPassInput{
		Date:      time.Now(),
		Time:      time.Now(),
		Dimension: DimensionByAgeGroup,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Failed)
	for _, br := range result.Results {
		assert.Equal(t, "persistence failure", br.Error)
	}
}

func TestRecordPassByRoom(t *testing.T) {
	rooms := &fakeRooms{rooms: []RoomInfo{
		{Name: "Melati", AgeGroup: AgeGroupInfant},
		{Name: "Mawar", AgeGroup: AgeGroupToddler},
	}}
	presence := &fakePresence{fakeCounts{counts: map[string]int{
		"infant@Melati": 1, "toddler@Mawar": 2,
	}}}
	attendance := &fakeAttendance{fakeCounts{counts: map[string]int{
		"infant@Melati": 6, "toddler@Mawar": 10,
	}}}
	store := &fakeStore{}
	sink := &fakeSink{}
	rec := newTestRecorder(presence, attendance, store, &fakeSettings{cfg: defaultTestConfig()}, rooms, sink)

	result, err := rec.RecordPass(context.Background(), RecordPassInput{
		Date:       time.Now(),
		Time:       time.Now(),
		RecordedBy: "Bu Sari",
		Dimension:  DimensionByRoom,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	require.Len(t, store.inserted, 2)

	melati := store.inserted[0]
	require.NotNil(t, melati.RatioSnapshotRoomName)
	assert.Equal(t, "Melati", *melati.RatioSnapshotRoomName)
	assert.False(t, melati.RatioSnapshotIsCompliant, "6 bayi / 1 staf wajib 1:5")
	assert.Equal(t, "Bu Sari", melati.RatioSnapshotRecordedBy)
}

func TestRecordPassDimensionTidakDikenal(t *testing.T) {
	store := &fakeStore{}
	sink := &fakeSink{}
	rec := newTestRecorder(&fakePresence{}, &fakeAttendance{}, store, &fakeSettings{cfg: defaultTestConfig()}, &fakeRooms{}, sink)

	_, err := rec.RecordPass(context.Background(), RecordPassInput{Dimension: "by_planet"})
	require.Error(t, err)
	assert.Empty(t, store.inserted)
}

func TestRecordPassSettingsGagal(t *testing.T) {
	rec := newTestRecorder(&fakePresence{}, &fakeAttendance{}, &fakeStore{}, &fakeSettings{err: errors.New("db down")}, &fakeRooms{}, &fakeSink{})

	_, err := rec.RecordPass(context.Background(), RecordPassInput{Dimension: DimensionByAgeGroup})
	require.Error(t, err)
}

// Rasio di luar 1..50 di settings → fallback default + catatan di baris.
func TestRecordPassRasioInvalidPakaiDefault(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.RequiredRatios[AgeGroupInfant] = 0 // invalid

	presence := &fakePresence{fakeCounts{counts: map[string]int{"infant": 2, "toddler": 1, "preschool": 1, "school_age": 1}}}
	attendance := &fakeAttendance{fakeCounts{counts: map[string]int{"infant": 9, "toddler": 1, "preschool": 1, "school_age": 1}}}
	store := &fakeStore{}
	rec := newTestRecorder(presence, attendance, store, &fakeSettings{cfg: cfg}, &fakeRooms{}, &fakeSink{})

	_, err := rec.RecordPass(context.Background(), RecordPassInput{
		Date:      time.Now(),
		Time:      time.Now(),
		Dimension: DimensionByAgeGroup,
	})
	require.NoError(t, err)

	for _, snap := range store.inserted {
		if snap.RatioSnapshotAgeGroup == "infant" {
			assert.Equal(t, 5, snap.RatioSnapshotRequiredRatio, "fallback ke default statutori")
			require.NotNil(t, snap.RatioSnapshotNotes)
			assert.Contains(t, *snap.RatioSnapshotNotes, "default ratio applied")
		} else {
			assert.Nil(t, snap.RatioSnapshotNotes)
		}
	}
}

// required_ratio dibekukan per baris: dua pass dengan settings berbeda
// menghasilkan baris dengan rasio masing-masing.
func TestRecordPassMembekukanRasio(t *testing.T) {
	presence := &fakePresence{fakeCounts{counts: map[string]int{"infant": 2, "toddler": 1, "preschool": 1, "school_age": 1}}}
	attendance := &fakeAttendance{fakeCounts{counts: map[string]int{"infant": 8, "toddler": 1, "preschool": 1, "school_age": 1}}}
	store := &fakeStore{}
	settings := &fakeSettings{cfg: defaultTestConfig()}
	rec := newTestRecorder(presence, attendance, store, settings, &fakeRooms{}, &fakeSink{})

	input := RecordPassInput{Date: time.Now(), Time: time.Now(), Dimension: DimensionByAgeGroup}
	_, err := rec.RecordPass(context.Background(), input)
	require.NoError(t, err)

	// settings berubah di antara dua pass
	changed := defaultTestConfig()
	changed.RequiredRatios[AgeGroupInfant] = 3
	settings.cfg = changed
	_, err = rec.RecordPass(context.Background(), input)
	require.NoError(t, err)

	var infantRatios []int
	for _, snap := range store.inserted {
		if snap.RatioSnapshotAgeGroup == "infant" {
			infantRatios = append(infantRatios, snap.RatioSnapshotRequiredRatio)
		}
	}
	assert.Equal(t, []int{5, 3}, infantRatios)
}

// Pemanggilan berulang = observasi independen, tanpa de-duplikasi.
func TestRecordPassBerulangTanpaDedupe(t *testing.T) {
	presence := &fakePresence{fakeCounts{counts: map[string]int{"infant": 1, "toddler": 1, "preschool": 1, "school_age": 1}}}
	attendance := &fakeAttendance{fakeCounts{counts: map[string]int{"infant": 1, "toddler": 1, "preschool": 1, "school_age": 1}}}
	store := &fakeStore{}
	rec := newTestRecorder(presence, attendance, store, &fakeSettings{cfg: defaultTestConfig()}, &fakeRooms{}, &fakeSink{})

	input := RecordPassInput{Date: time.Now(), Time: time.Now(), Dimension: DimensionByAgeGroup}
	for i := 0; i < 3; i++ {
		_, err := rec.RecordPass(context.Background(), input)
		require.NoError(t, err)
	}
	assert.Len(t, store.inserted, 12)
}

func TestRecordPassSchoolYearDariSettings(t *testing.T) {
	yearID := uuid.New()
	cfg := defaultTestConfig()
	cfg.ActiveSchoolYearID = &yearID

	presence := &fakePresence{fakeCounts{counts: map[string]int{"infant": 1, "toddler": 1, "preschool": 1, "school_age": 1}}}
	attendance := &fakeAttendance{fakeCounts{counts: map[string]int{"infant": 1, "toddler": 1, "preschool": 1, "school_age": 1}}}
	store := &fakeStore{}
	rec := newTestRecorder(presence, attendance, store, &fakeSettings{cfg: cfg}, &fakeRooms{}, &fakeSink{})

	_, err := rec.RecordPass(context.Background(), RecordPassInput{
		Date:      time.Now(),
		Time:      time.Now(),
		Dimension: DimensionByAgeGroup,
	})
	require.NoError(t, err)
	for _, snap := range store.inserted {
		require.NotNil(t, snap.RatioSnapshotSchoolYearID)
		assert.Equal(t, yearID, *snap.RatioSnapshotSchoolYearID)
	}
}
