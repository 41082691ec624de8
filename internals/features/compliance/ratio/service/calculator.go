// internals/features/compliance/ratio/service/calculator.go
package service

import "math"

/*
Kalkulator rasio: murni, deterministik, tanpa I/O.
Nilai "undefined" dikembalikan sebagai (0, false) — bukan 0 —
supaya presentasi bisa menampilkan "No Staff"/"No Children".
Pembulatan 1 desimal hanya untuk display (RoundDisplay);
nilai tersimpan/terbanding selalu presisi penuh.
*/

// ActualRatio = childCount / staffCount.
// Undefined jika salah satu count <= 0.
func ActualRatio(staffCount, childCount int) (float64, bool) {
	if staffCount <= 0 || childCount <= 0 {
		return 0, false
	}
	return float64(childCount) / float64(staffCount), true
}

// IsCompliant:
//   - childCount <= 0            → true (tidak ada anak = patuh)
//   - childCount > 0 && staff==0 → false
//   - lainnya                    → actualRatio <= requiredRatio (pas di batas = patuh)
func IsCompliant(requiredRatio, staffCount, childCount int) bool {
	if childCount <= 0 {
		return true
	}
	if staffCount <= 0 {
		return false
	}
	return float64(childCount)/float64(staffCount) <= float64(requiredRatio)
}

// CompliancePercent = childCount / (staffCount * requiredRatio) * 100.
// Undefined jika staffCount <= 0 atau requiredRatio <= 0.
func CompliancePercent(requiredRatio, staffCount, childCount int) (float64, bool) {
	if staffCount <= 0 || requiredRatio <= 0 {
		return 0, false
	}
	return float64(childCount) / (float64(staffCount) * float64(requiredRatio)) * 100, true
}

// AdditionalCapacity = staffCount*requiredRatio - childCount.
// Negatif berarti kelebihan kapasitas.
func AdditionalCapacity(requiredRatio, staffCount, childCount int) int {
	return staffCount*requiredRatio - childCount
}

// StaffNeeded = max(0, ceil(childCount/requiredRatio) - staffCount).
// 0 jika childCount <= 0. Nilai minimal k sehingga staf+k patuh.
func StaffNeeded(requiredRatio, staffCount, childCount int) int {
	if childCount <= 0 || requiredRatio <= 0 {
		return 0
	}
	need := int(math.Ceil(float64(childCount)/float64(requiredRatio))) - staffCount
	if need < 0 {
		return 0
	}
	return need
}

// RoundDisplay membulatkan 1 desimal — hanya untuk presentasi.
func RoundDisplay(v float64) float64 {
	return math.Round(v*10) / 10
}
