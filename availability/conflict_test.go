package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dineopen/reservation-app/models"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		ts, err = time.Parse("2006-01-02 15:04", value)
	}
	if err != nil {
		t.Fatalf("bad time literal %q: %v", value, err)
	}
	return ts
}

func reservation(t *testing.T, at string, partySize int, status models.ReservationStatus) models.Reservation {
	t.Helper()
	return models.Reservation{
		ReservationTime: mustTime(t, at),
		PartySize:       partySize,
		Status:          status,
	}
}

func TestHasConflictWindowIsSymmetricAndInclusive(t *testing.T) {
	candidate := mustTime(t, "2025-07-04 19:00")

	cases := []struct {
		existing string
		want     bool
	}{
		{"2025-07-04 18:30:00", true},  // exactly -30m, inclusive
		{"2025-07-04 19:30:00", true},  // exactly +30m, inclusive
		{"2025-07-04 18:29:59", false}, // one second outside
		{"2025-07-04 19:30:01", false},
		{"2025-07-04 19:00:00", true},
	}
	for _, tc := range cases {
		existing := []models.Reservation{reservation(t, tc.existing, 2, models.StatusConfirmed)}
		assert.Equal(t, tc.want, HasConflict(candidate, existing), "existing at %s", tc.existing)
	}
}

func TestHasConflictIgnoresInactiveStatuses(t *testing.T) {
	candidate := mustTime(t, "2025-07-04 19:00")
	existing := []models.Reservation{
		reservation(t, "2025-07-04 19:00", 4, models.StatusCancelled),
		reservation(t, "2025-07-04 19:00", 4, models.StatusCompleted),
	}

	assert.False(t, HasConflict(candidate, existing))
}

func TestRemainingCapacityReturnsRawDifference(t *testing.T) {
	candidate := mustTime(t, "2025-07-04 19:00")
	tables := []models.Table{{Capacity: 4}, {Capacity: 2}}
	existing := []models.Reservation{
		reservation(t, "2025-07-04 19:15", 5, models.StatusConfirmed),
		reservation(t, "2025-07-04 18:45", 3, models.StatusPending),
		reservation(t, "2025-07-04 12:00", 6, models.StatusConfirmed), // outside window
		reservation(t, "2025-07-04 19:00", 9, models.StatusCancelled), // inactive
	}

	// 6 seats, 8 in the window: the raw difference may go negative.
	assert.Equal(t, -2, RemainingCapacity(candidate, existing, tables))
}

func TestAvailableTablesExcludesOccupiedAndTooSmall(t *testing.T) {
	candidate := mustTime(t, "2025-07-04 19:00")

	t2 := models.Table{Capacity: 2}
	t2.ID = 1
	t4 := models.Table{Capacity: 4}
	t4.ID = 2
	t6 := models.Table{Capacity: 6}
	t6.ID = 3
	t8 := models.Table{Capacity: 8}
	t8.ID = 4

	occupied := reservation(t, "2025-07-04 19:15", 4, models.StatusConfirmed)
	occupied.TableID = &t6.ID

	free := AvailableTables(candidate, 4, []models.Reservation{occupied},
		[]models.Table{t8, t2, t6, t4})

	// t2 too small, t6 occupied in-window; smallest sufficient table first.
	assert.Len(t, free, 2)
	assert.Equal(t, uint(2), free[0].ID)
	assert.Equal(t, uint(4), free[1].ID)
}

func TestAvailableTablesIgnoresOutOfWindowOccupancy(t *testing.T) {
	candidate := mustTime(t, "2025-07-04 19:00")

	table := models.Table{Capacity: 4}
	table.ID = 7
	earlier := reservation(t, "2025-07-04 17:00", 4, models.StatusConfirmed)
	earlier.TableID = &table.ID

	free := AvailableTables(candidate, 2, []models.Reservation{earlier}, []models.Table{table})

	assert.Len(t, free, 1)
}
