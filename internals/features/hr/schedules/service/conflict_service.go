// internals/features/hr/schedules/service/conflict_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleModel "daycareku_backend/internals/features/hr/schedules/model"
)

/*
Deteksi konflik jadwal: tes overlap sederhana antar shift pegawai yang
sama di hari yang sama. Interval dianggap setengah-terbuka [start, end)
— shift 06:00-14:00 TIDAK konflik dengan 14:00-22:00.
Shift lewat tengah malam tidak didukung (start < end selalu).
*/

// RangesOverlap: murni. start/end dalam menit-sejak-tengah-malam.
func RangesOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}

type ConflictChecker struct {
	DB *gorm.DB
}

func NewConflictChecker(db *gorm.DB) *ConflictChecker { return &ConflictChecker{DB: db} }

// HasConflict true bila pegawai sudah punya assignment di weekday yang
// sama dengan rentang jam yang overlap dengan template shift baru.
func (s *ConflictChecker) HasConflict(ctx context.Context, employeeID uuid.UUID, weekday int, newTemplate *scheduleModel.ShiftTemplateModel) (bool, error) {
	type row struct {
		Start int64 `gorm:"column:start_s"`
		End   int64 `gorm:"column:end_s"`
	}
	var rows []row
	err := s.DB.WithContext(ctx).Table("schedule_assignments").
		Joins("JOIN shift_templates ON shift_templates.shift_template_id = schedule_assignments.schedule_assignment_shift_template_id").
		Where("schedule_assignments.schedule_assignment_deleted_at IS NULL").
		Where("shift_templates.shift_template_deleted_at IS NULL").
		Where("schedule_assignments.schedule_assignment_employee_id = ?", employeeID).
		Where("schedule_assignments.schedule_assignment_weekday = ?", weekday).
		Select(`
			EXTRACT(EPOCH FROM shift_templates.shift_template_start_time)::bigint AS start_s,
			EXTRACT(EPOCH FROM shift_templates.shift_template_end_time)::bigint AS end_s
		`).
		Scan(&rows).Error
	if err != nil {
		return false, err
	}

	newStart := minutesOf(newTemplate.ShiftTemplateStartTime.String())
	newEnd := minutesOf(newTemplate.ShiftTemplateEndTime.String())
	for _, r := range rows {
		if RangesOverlap(newStart, newEnd, int(r.Start/60), int(r.End/60)) {
			return true, nil
		}
	}
	return false, nil
}

// minutesOf mengubah "HH:MM:SS" (format datatypes.Time) jadi menit.
func minutesOf(hms string) int {
	if len(hms) < 5 {
		return 0
	}
	h := int(hms[0]-'0')*10 + int(hms[1]-'0')
	m := int(hms[3]-'0')*10 + int(hms[4]-'0')
	return h*60 + m
}
