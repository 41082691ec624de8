package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActualRatio(t *testing.T) {
	tests := []struct {
		name        string
		staff       int
		child       int
		want        float64
		wantDefined bool
	}{
		{"normal", 2, 11, 5.5, true},
		{"satu staf", 1, 20, 20.0, true},
		{"tanpa anak undefined", 3, 0, 0, false},
		{"tanpa staf undefined", 0, 5, 0, false},
		{"dua-duanya nol undefined", 0, 0, 0, false},
		{"staf negatif undefined", -1, 5, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ActualRatio(tt.staff, tt.child)
			assert.Equal(t, tt.wantDefined, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestIsCompliant(t *testing.T) {
	tests := []struct {
		name     string
		required int
		staff    int
		child    int
		want     bool
	}{
		{"infant overload", 5, 2, 11, false},
		{"tanpa anak selalu patuh", 8, 3, 0, true},
		{"tanpa anak tanpa staf patuh", 8, 0, 0, true},
		{"pas di batas patuh", 20, 1, 20, true},
		{"ada anak tanpa staf tidak patuh", 10, 0, 5, false},
		{"di bawah batas", 5, 3, 14, true},
		{"satu anak lebih dari batas", 5, 3, 16, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCompliant(tt.required, tt.staff, tt.child))
		})
	}
}

func TestCompliancePercent(t *testing.T) {
	pct, ok := CompliancePercent(5, 2, 11)
	require.True(t, ok)
	assert.InDelta(t, 110.0, pct, 1e-9)

	pct, ok = CompliancePercent(20, 1, 20)
	require.True(t, ok)
	assert.InDelta(t, 100.0, pct, 1e-9)

	// child=0 terdefinisi sebagai 0 (selama ada staf)
	pct, ok = CompliancePercent(8, 3, 0)
	require.True(t, ok)
	assert.Zero(t, pct)

	// tanpa staf / ratio non-positif → undefined, bukan div-by-zero
	_, ok = CompliancePercent(10, 0, 5)
	assert.False(t, ok)
	_, ok = CompliancePercent(0, 2, 5)
	assert.False(t, ok)
}

func TestAdditionalCapacity(t *testing.T) {
	assert.Equal(t, 24, AdditionalCapacity(8, 3, 0))
	assert.Equal(t, -1, AdditionalCapacity(5, 2, 11)) // kelebihan 1 anak
	assert.Equal(t, 0, AdditionalCapacity(20, 1, 20))
	assert.Equal(t, -5, AdditionalCapacity(10, 0, 5))
}

func TestStaffNeeded(t *testing.T) {
	tests := []struct {
		name     string
		required int
		staff    int
		child    int
		want     int
	}{
		{"infant kurang satu", 5, 2, 11, 1}, // ceil(11/5)=3, 3-2=1
		{"tanpa staf", 10, 0, 5, 1},         // ceil(5/10)=1
		{"sudah cukup", 20, 1, 20, 0},
		{"kelebihan staf tidak negatif", 5, 10, 3, 0},
		{"tanpa anak nol", 5, 0, 0, 0},
		{"ceil bukan floor", 8, 1, 9, 1}, // ceil(9/8)=2, 2-1=1
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StaffNeeded(tt.required, tt.staff, tt.child))
		})
	}
}

// Properti: staf+StaffNeeded selalu patuh, dan StaffNeeded minimal.
func TestStaffNeededMembuatPatuh(t *testing.T) {
	for required := 1; required <= 20; required++ {
		for staff := 0; staff <= 6; staff++ {
			for child := 0; child <= 40; child++ {
				need := StaffNeeded(required, staff, child)
				assert.True(t, IsCompliant(required, staff+need, child),
					"required=%d staff=%d child=%d need=%d", required, staff, child, need)
				if need > 0 {
					assert.False(t, IsCompliant(required, staff+need-1, child),
						"need tidak minimal: required=%d staff=%d child=%d need=%d", required, staff, child, need)
				}
			}
		}
	}
}

func TestRoundDisplay(t *testing.T) {
	assert.Equal(t, 5.5, RoundDisplay(5.5))
	assert.Equal(t, 3.7, RoundDisplay(11.0/3.0))
	assert.Equal(t, 110.0, RoundDisplay(110.0))
	assert.Equal(t, 0.1, RoundDisplay(0.05))
}
