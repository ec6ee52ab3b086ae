package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func TestShiftContainsTime_DayWindow(t *testing.T) {
	shift := &Shift{Name: "Day", StartTime: "08:00", EndTime: "20:00", IsActive: true}

	assert.True(t, shift.ContainsTime(at(8, 0)))
	assert.True(t, shift.ContainsTime(at(14, 30)))
	assert.True(t, shift.ContainsTime(at(19, 59)))

	// Конец окна не включается
	assert.False(t, shift.ContainsTime(at(20, 0)))
	assert.False(t, shift.ContainsTime(at(7, 59)))
	assert.False(t, shift.ContainsTime(at(23, 0)))
}

func TestShiftContainsTime_OvernightWindow(t *testing.T) {
	shift := &Shift{Name: "Night", StartTime: "22:00", EndTime: "06:00", IsActive: true}

	assert.True(t, shift.ContainsTime(at(22, 0)))
	assert.True(t, shift.ContainsTime(at(23, 30)))
	assert.True(t, shift.ContainsTime(at(2, 0)))
	assert.True(t, shift.ContainsTime(at(5, 59)))

	assert.False(t, shift.ContainsTime(at(6, 0)))
	assert.False(t, shift.ContainsTime(at(12, 0)))
	assert.False(t, shift.ContainsTime(at(21, 59)))
}

func TestShiftContainsTime_InactiveNeverMatches(t *testing.T) {
	shift := &Shift{Name: "Day", StartTime: "00:00", EndTime: "00:00", IsActive: false}
	assert.False(t, shift.ContainsTime(at(12, 0)))

	shift = &Shift{Name: "Day", StartTime: "08:00", EndTime: "20:00", IsActive: false}
	assert.False(t, shift.ContainsTime(at(14, 0)))
}

func TestShiftContainsTime_InvalidWindow(t *testing.T) {
	shift := &Shift{Name: "Broken", StartTime: "25:99", EndTime: "20:00", IsActive: true}
	assert.False(t, shift.ContainsTime(at(12, 0)))
}
