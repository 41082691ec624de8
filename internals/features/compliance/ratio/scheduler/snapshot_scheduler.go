package scheduler

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	attendanceService "daycareku_backend/internals/features/childcare/attendance/service"
	roomService "daycareku_backend/internals/features/childcare/rooms/service"
	auditService "daycareku_backend/internals/features/compliance/audit/service"
	"daycareku_backend/internals/features/compliance/ratio/service"
	presenceService "daycareku_backend/internals/features/hr/timeclock/service"
	"daycareku_backend/internals/helpers/dbtime"
)

/*
Scheduler snapshot rasio: cron tick tiap menit, merekam hanya ketika
menit-sejak-tengah-malam habis dibagi snapshot_interval_minutes DAN
jam sekarang ada di rentang jam operasional [start, end).
Interval dan jam operasional dibaca dari compliance settings di tiap
tick — perubahan settings langsung berlaku tanpa restart.
*/

// StartSnapshotScheduler dipanggil sekali saat bootstrap.
func StartSnapshotScheduler(db *gorm.DB) {
	store := service.NewGormSnapshotStore(db)
	settings := service.NewGormSettingsSource(db)
	sink := auditService.NewAuditSink(db)
	recorder := service.NewSnapshotRecorder(
		presenceService.NewPresenceFeed(db),
		attendanceService.NewAttendanceFeed(db),
		store,
		settings,
		roomService.NewRoomLister(db),
		service.NewAlertPolicy(store, sink),
		sink,
	)

	dimension := service.Dimension(getEnvOrDefault("RATIO_SCHEDULER_DIMENSION", string(service.DimensionByAgeGroup)))
	if !dimension.Valid() {
		log.Printf("[SCHEDULER] RATIO_SCHEDULER_DIMENSION %q tidak dikenal, pakai by_age_group", dimension)
		dimension = service.DimensionByAgeGroup
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc("* * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		cfg, err := settings.Load(ctx)
		if err != nil {
			log.Printf("[SCHEDULER] baca settings gagal: %v", err)
			return
		}

		now := dbtime.NowFacility()
		if !shouldRecordAt(now, cfg.SnapshotIntervalMinutes, cfg.OperatingStartHour, cfg.OperatingEndHour) {
			return
		}

		result, err := recorder.RecordPass(ctx, service.RecordPassInput{
			Date:        now,
			Time:        now,
			IsAutomatic: true,
			Dimension:   dimension,
		})
		if err != nil {
			log.Printf("[SCHEDULER] recording pass gagal: %v", err)
			return
		}
		log.Printf("[SCHEDULER] pass %s: %s", dimension, result.Summary())
	})
	if err != nil {
		log.Fatalf("[SCHEDULER] add cron gagal: %v", err)
	}

	log.Printf("[SCHEDULER] ratio snapshot scheduler started dimension=%s", dimension)
	c.Start()
}

// shouldRecordAt: murni. Interval <= 0 dianggap 30 menit.
func shouldRecordAt(now time.Time, intervalMinutes, startHour, endHour int) bool {
	if intervalMinutes <= 0 {
		intervalMinutes = 30
	}
	if now.Hour() < startHour || now.Hour() >= endHour {
		return false
	}
	minuteOfDay := now.Hour()*60 + now.Minute()
	return minuteOfDay%intervalMinutes == 0
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
