package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 9, hour, minute, 0, 0, time.UTC)
}

func TestShouldRecordAt(t *testing.T) {
	// interval 30 menit, jam operasional 06:00-19:00
	assert.True(t, shouldRecordAt(at(6, 0), 30, 6, 19))
	assert.True(t, shouldRecordAt(at(9, 30), 30, 6, 19))
	assert.False(t, shouldRecordAt(at(9, 31), 30, 6, 19))
	assert.False(t, shouldRecordAt(at(9, 15), 30, 6, 19))

	// di luar jam operasional tidak merekam, meski menitnya pas
	assert.False(t, shouldRecordAt(at(5, 30), 30, 6, 19))
	assert.False(t, shouldRecordAt(at(19, 0), 30, 6, 19), "end hour eksklusif")
	assert.True(t, shouldRecordAt(at(18, 30), 30, 6, 19))

	// interval 45 relatif tengah malam, bukan relatif start hour
	assert.True(t, shouldRecordAt(at(6, 45), 45, 6, 19)) // 405 % 45 == 0
	assert.False(t, shouldRecordAt(at(6, 30), 45, 6, 19))

	// interval rusak → fallback 30 menit
	assert.True(t, shouldRecordAt(at(10, 0), 0, 6, 19))
	assert.False(t, shouldRecordAt(at(10, 7), -5, 6, 19))
}
