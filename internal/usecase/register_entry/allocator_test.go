package register_entry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/pkg/ptr"
)

func freeSpace(id int64, number string, lastOccupied *time.Time) *domain.ParkingSpace {
	return &domain.ParkingSpace{
		ID:               id,
		SpaceNumber:      number,
		SpaceType:        "car",
		IsActive:         true,
		IsOccupied:       false,
		LastOccupiedTime: lastOccupied,
	}
}

func TestSelectSpace_NeverOccupiedFirst(t *testing.T) {
	old := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	candidates := []*domain.ParkingSpace{
		freeSpace(1, "A-01", ptr.Ptr(old)),
		freeSpace(2, "A-02", nil),
		freeSpace(3, "A-03", ptr.Ptr(old.Add(time.Hour))),
	}

	selected := selectSpace(candidates, "car")
	require.NotNil(t, selected)
	assert.Equal(t, int64(2), selected.ID)
}

func TestSelectSpace_OldestLastOccupiedWins(t *testing.T) {
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	candidates := []*domain.ParkingSpace{
		freeSpace(1, "A-01", ptr.Ptr(base.Add(2*time.Hour))),
		freeSpace(2, "A-02", ptr.Ptr(base)),
		freeSpace(3, "A-03", ptr.Ptr(base.Add(time.Hour))),
	}

	selected := selectSpace(candidates, "car")
	require.NotNil(t, selected)
	assert.Equal(t, int64(2), selected.ID)
}

func TestSelectSpace_TieBrokenBySpaceNumber(t *testing.T) {
	ts := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	candidates := []*domain.ParkingSpace{
		freeSpace(5, "B-02", ptr.Ptr(ts)),
		freeSpace(7, "B-01", ptr.Ptr(ts)),
	}

	selected := selectSpace(candidates, "car")
	require.NotNil(t, selected)
	assert.Equal(t, "B-01", selected.SpaceNumber)

	// Оба никогда не занимались - тот же порядок
	candidates = []*domain.ParkingSpace{
		freeSpace(5, "B-02", nil),
		freeSpace(7, "B-01", nil),
	}
	selected = selectSpace(candidates, "car")
	require.NotNil(t, selected)
	assert.Equal(t, "B-01", selected.SpaceNumber)
}

func TestSelectSpace_SkipsOccupiedAndInactive(t *testing.T) {
	occupied := freeSpace(1, "A-01", nil)
	occupied.IsOccupied = true

	inactive := freeSpace(2, "A-02", nil)
	inactive.IsActive = false

	candidates := []*domain.ParkingSpace{
		occupied,
		inactive,
		freeSpace(3, "A-03", ptr.Ptr(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))),
	}

	selected := selectSpace(candidates, "car")
	require.NotNil(t, selected)
	assert.Equal(t, int64(3), selected.ID)
}

func TestSelectSpace_VehicleTypeCaseInsensitive(t *testing.T) {
	truck := freeSpace(1, "T-01", nil)
	truck.SpaceType = "Truck"

	candidates := []*domain.ParkingSpace{
		freeSpace(2, "A-01", nil),
		truck,
	}

	selected := selectSpace(candidates, "TRUCK")
	require.NotNil(t, selected)
	assert.Equal(t, int64(1), selected.ID)
}

func TestSelectSpace_NoCandidates(t *testing.T) {
	assert.Nil(t, selectSpace(nil, "car"))

	occupied := freeSpace(1, "A-01", nil)
	occupied.IsOccupied = true
	assert.Nil(t, selectSpace([]*domain.ParkingSpace{occupied}, "car"))

	// Категория не совпадает
	assert.Nil(t, selectSpace([]*domain.ParkingSpace{freeSpace(1, "A-01", nil)}, "bus"))
}

func TestSelectSpace_Deterministic(t *testing.T) {
	ts := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	build := func() []*domain.ParkingSpace {
		return []*domain.ParkingSpace{
			freeSpace(3, "C-03", ptr.Ptr(ts)),
			freeSpace(1, "C-01", ptr.Ptr(ts)),
			freeSpace(2, "C-02", ptr.Ptr(ts)),
		}
	}

	first := selectSpace(build(), "car")
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		again := selectSpace(build(), "car")
		require.NotNil(t, again)
		assert.Equal(t, first.ID, again.ID)
	}
}
