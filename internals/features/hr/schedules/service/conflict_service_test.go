package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		startA, endA, startB, endB int
		want                           bool
	}{
		{"overlap sebagian", 360, 840, 600, 1080, true},
		{"B di dalam A", 360, 1080, 600, 840, true},
		{"identik", 360, 840, 360, 840, true},
		{"back-to-back tidak konflik", 360, 840, 840, 1320, false},
		{"terpisah jauh", 360, 600, 900, 1080, false},
		{"urutan dibalik tetap simetris", 840, 1320, 360, 840, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.startA, tt.endA, tt.startB, tt.endB))
			assert.Equal(t, tt.want, RangesOverlap(tt.startB, tt.endB, tt.startA, tt.endA), "harus simetris")
		})
	}
}

func TestMinutesOf(t *testing.T) {
	assert.Equal(t, 6*60, minutesOf("06:00:00"))
	assert.Equal(t, 14*60+30, minutesOf("14:30:00"))
	assert.Equal(t, 0, minutesOf("00:00:00"))
	assert.Equal(t, 23*60+59, minutesOf("23:59:59"))
	assert.Equal(t, 0, minutesOf(""), "input rusak tidak panic")
}
