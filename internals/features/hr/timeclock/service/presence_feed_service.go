// internals/features/hr/timeclock/service/presence_feed_service.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"daycareku_backend/internals/constants"
	ratioService "daycareku_backend/internals/features/compliance/ratio/service"
)

// PresenceFeed mengimplementasikan feed kehadiran staf untuk engine
// rasio: jumlah staf pengasuh yang clock-in dan ter-assign ke bucket
// pada instant tertentu. Hanya role pengasuh langsung yang dihitung.
type PresenceFeed struct {
	DB *gorm.DB
}

func NewPresenceFeed(db *gorm.DB) *PresenceFeed { return &PresenceFeed{DB: db} }

func (s *PresenceFeed) StaffCount(ctx context.Context, bucket ratioService.Bucket, at time.Time) (int, error) {
	q := s.DB.WithContext(ctx).Table("timeclock_entries").
		Joins("JOIN employees ON employees.employee_id = timeclock_entries.timeclock_entry_employee_id").
		Where("timeclock_entries.timeclock_entry_deleted_at IS NULL").
		Where("employees.employee_deleted_at IS NULL").
		Where("employees.employee_role IN ?", constants.CaregivingRoles).
		Where("timeclock_entries.timeclock_entry_age_group = ?", string(bucket.AgeGroup)).
		Where("timeclock_entries.timeclock_entry_clock_in <= ?", at).
		Where("(timeclock_entries.timeclock_entry_clock_out IS NULL OR timeclock_entries.timeclock_entry_clock_out > ?)", at)

	if bucket.RoomName != "" {
		q = q.Joins("JOIN rooms ON rooms.room_id = timeclock_entries.timeclock_entry_room_id").
			Where("rooms.room_name = ?", bucket.RoomName)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
