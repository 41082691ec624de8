package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplianceRateOf(t *testing.T) {
	// nol snapshot = 100% patuh, tidak pernah NaN
	assert.Equal(t, 100.0, ComplianceRateOf(0, 0))
	assert.Equal(t, 100.0, ComplianceRateOf(10, 10))
	assert.InDelta(t, 75.0, ComplianceRateOf(4, 3), 1e-9)
	assert.Zero(t, ComplianceRateOf(5, 0))
}

func TestNonComplianceRateOf(t *testing.T) {
	assert.Zero(t, NonComplianceRateOf(0, 0))
	assert.InDelta(t, 25.0, NonComplianceRateOf(4, 1), 1e-9)
	assert.Equal(t, 100.0, NonComplianceRateOf(3, 3))
}

func TestFinalizeDailySummary(t *testing.T) {
	s := FinalizeDailySummary("2026-03-09", 10, 8, 2.4, 13.1)
	assert.Equal(t, "2026-03-09", s.Date)
	assert.Equal(t, int64(10), s.TotalSnapshots)
	assert.Equal(t, int64(8), s.CompliantSnapshots)
	assert.Equal(t, int64(2), s.NonCompliantSnapshots)
	assert.InDelta(t, 80.0, s.ComplianceRate, 1e-9)

	// hari tanpa snapshot: semua nol, rate 100
	empty := FinalizeDailySummary("2026-03-10", 0, 0, 0, 0)
	assert.Zero(t, empty.TotalSnapshots)
	assert.Zero(t, empty.NonCompliantSnapshots)
	assert.Equal(t, 100.0, empty.ComplianceRate)
}

func TestOnlyRiskHours(t *testing.T) {
	hours := []PeakHour{
		{Hour: 7, TotalSnapshots: 4, NonCompliantSnapshots: 3, NonComplianceRate: 75},
		{Hour: 9, TotalSnapshots: 6, NonCompliantSnapshots: 0, NonComplianceRate: 0},
		{Hour: 17, TotalSnapshots: 5, NonCompliantSnapshots: 1, NonComplianceRate: 20},
	}
	risk := OnlyRiskHours(hours)
	assert.Len(t, risk, 2)
	assert.Equal(t, 7, risk[0].Hour)
	assert.Equal(t, 17, risk[1].Hour)

	assert.Empty(t, OnlyRiskHours(nil))
	assert.Empty(t, OnlyRiskHours([]PeakHour{{Hour: 10, TotalSnapshots: 2}}))
}
