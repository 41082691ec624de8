// internals/features/childcare/attendance/service/attendance_feed_service.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	ratioService "daycareku_backend/internals/features/compliance/ratio/service"
)

// AttendanceFeed mengimplementasikan feed kehadiran anak untuk engine
// rasio: jumlah anak yang check-in dan ter-assign ke bucket pada
// instant tertentu.
type AttendanceFeed struct {
	DB *gorm.DB
}

func NewAttendanceFeed(db *gorm.DB) *AttendanceFeed { return &AttendanceFeed{DB: db} }

func (s *AttendanceFeed) ChildCount(ctx context.Context, bucket ratioService.Bucket, at time.Time) (int, error) {
	q := s.DB.WithContext(ctx).Table("child_attendances").
		Where("child_attendances.child_attendance_deleted_at IS NULL").
		Where("child_attendances.child_attendance_age_group = ?", string(bucket.AgeGroup)).
		Where("child_attendances.child_attendance_check_in <= ?", at).
		Where("(child_attendances.child_attendance_check_out IS NULL OR child_attendances.child_attendance_check_out > ?)", at)

	if bucket.RoomName != "" {
		q = q.Joins("JOIN rooms ON rooms.room_id = child_attendances.child_attendance_room_id").
			Where("rooms.room_name = ?", bucket.RoomName)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
