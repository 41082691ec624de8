// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"strings"
	"time"

	"daycareku_backend/internals/configs"
)

// Format standar yang dipakai di query param & kolom DB
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Ambil *time.Location fasilitas:
// 1) dari configs.Timezone (di-load saat boot)
// 2) Fallback: Asia/Jakarta
// 3) Fallback terakhir: time.UTC
func GetFacilityLocation() *time.Location {
	tz := strings.TrimSpace(configs.Timezone)
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.UTC
}

// NowFacility = time.Now() di timezone fasilitas.
func NowFacility() time.Time {
	return time.Now().In(GetFacilityLocation())
}

// ParseDate menerima "YYYY-MM-DD"; string kosong → hari ini (facility tz).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		now := NowFacility()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.ParseInLocation(DateLayout, s, GetFacilityLocation())
}

// ParseClock menerima "HH:MM"; string kosong → jam sekarang (facility tz).
func ParseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NowFacility(), nil
	}
	return time.ParseInLocation(TimeLayout, s, GetFacilityLocation())
}

// CombineDateClock menempelkan jam:menit dari clock ke tanggal date.
func CombineDateClock(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, GetFacilityLocation())
}
