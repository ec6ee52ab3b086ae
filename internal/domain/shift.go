package domain

import (
	"time"

	"github.com/parkirc/parking-service/pkg/types"
)

// Shift represents a recurring operator shift defined by a daily time window
type Shift struct {
	ID        int64
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContainsTime reports whether the given instant falls inside the shift
// window. A window whose end is not after its start spans midnight:
// a 22:00-06:00 shift matches 23:30 and 02:00 but not 12:00.
// Inactive shifts never match.
func (s *Shift) ContainsTime(t time.Time) bool {
	if !s.IsActive {
		return false
	}

	start, err := s.StartTime.Minutes()
	if err != nil {
		return false
	}
	end, err := s.EndTime.Minutes()
	if err != nil {
		return false
	}

	m := t.Hour()*60 + t.Minute()

	if start < end {
		return m >= start && m < end
	}
	// overnight window
	return m >= start || m < end
}
