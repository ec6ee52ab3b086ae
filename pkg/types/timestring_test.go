package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"9:30:00", "25:00", "12:60", "noon", ""} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input=%q", invalid)
	}
}

func TestTimeStringMinutes(t *testing.T) {
	tests := []struct {
		value    TimeString
		expected int
	}{
		{"00:00", 0},
		{"08:30", 510},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		minutes, err := tt.value.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.expected, minutes)
	}

	_, err := TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("20:00"))
	assert.False(t, TimeString("20:00").IsBefore("08:00"))
	assert.True(t, TimeString("20:00").IsAfter("08:00"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("23:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), ts)

	ts, err = TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), ts)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("15:30")))
	assert.Equal(t, TimeString("15:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 7, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
