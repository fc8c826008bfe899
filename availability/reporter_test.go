package availability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dineopen/reservation-app/models"
)

func newTestReporter(store Store) *Reporter {
	rp := NewReporter(store, time.UTC)
	rp.now = func() time.Time {
		return time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	}
	return rp
}

func TestRecommendRejectsPastDateWithoutStoreReads(t *testing.T) {
	store := &fakeStore{}
	rp := newTestReporter(store)

	_, err := rp.Recommend(0, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), 2, "")

	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, store.calls)
}

func TestRecommendAcceptsToday(t *testing.T) {
	rp := newTestReporter(&fakeStore{})

	_, err := rp.Recommend(0, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 2, "")

	assert.NoError(t, err)
}

func TestRecommendRejectsInvalidPartySize(t *testing.T) {
	rp := newTestReporter(&fakeStore{})

	_, err := rp.Recommend(0, testDate, 0, "")

	assert.ErrorIs(t, err, ErrInvalidPartySize)
}

func TestRecommendClosureShortCircuits(t *testing.T) {
	store := &fakeStore{
		closures: map[string]*models.Closure{
			"2025-07-04": {Date: "2025-07-04", Reason: "private event"},
		},
	}
	rp := newTestReporter(store)

	report, err := rp.Recommend(0, testDate, 2, "")

	require.NoError(t, err)
	assert.True(t, report.Closed)
	assert.Empty(t, report.Slots)
	assert.Contains(t, report.Message, "private event")
	assert.NotContains(t, store.calls, "reservations")
}

func TestRecommendAllSlotsOpenOnEmptyDay(t *testing.T) {
	rp := newTestReporter(&fakeStore{})

	report, err := rp.Recommend(0, testDate, 2, "")

	require.NoError(t, err)
	require.Len(t, report.Slots, 6)
	for _, slot := range report.Slots {
		assert.True(t, slot.Available, "slot %s", slot.Time)
		assert.Empty(t, slot.Reason)
	}
	assert.Equal(t, []string{"17:00", "17:30", "18:00"}, report.Recommendations)
}

func TestRecommendEndToEndScenario(t *testing.T) {
	// One confirmed party of 4 at 19:00; a party of 2 asks for 19:15.
	store := &fakeStore{
		reservations: []models.Reservation{
			{
				ReservationTime: time.Date(2025, 7, 4, 19, 0, 0, 0, time.UTC),
				PartySize:       4,
				Status:          models.StatusConfirmed,
			},
		},
	}
	rp := newTestReporter(store)

	report, err := rp.Recommend(0, testDate, 2, "19:15")

	require.NoError(t, err)
	assert.Equal(t, PreferredUnavailable, report.PreferredTimeStatus)
	assert.Equal(t, ReasonConflict, report.PreferredTimeReason)
	assert.Equal(t, []string{"17:00", "17:30", "18:00"}, report.Recommendations)

	bySlot := map[string]Slot{}
	for _, slot := range report.Slots {
		bySlot[slot.Time] = slot
	}
	assert.False(t, bySlot["18:30"].Available)
	assert.False(t, bySlot["19:00"].Available)
	assert.False(t, bySlot["19:30"].Available)
	assert.True(t, bySlot["18:00"].Available)
}

func TestRecommendRecommendationsCappedAtThree(t *testing.T) {
	rp := newTestReporter(&fakeStore{})

	report, err := rp.Recommend(0, testDate, 2, "")

	require.NoError(t, err)
	assert.Len(t, report.Recommendations, MaxRecommendations)
	for i := 1; i < len(report.Recommendations); i++ {
		assert.Less(t, report.Recommendations[i-1], report.Recommendations[i])
	}
}

func TestRecommendCapacityExhausted(t *testing.T) {
	store := &fakeStore{
		tables: []models.Table{{Capacity: 4, Status: models.TableAvailable}},
		reservations: []models.Reservation{
			{
				ReservationTime: time.Date(2025, 7, 4, 18, 0, 0, 0, time.UTC),
				PartySize:       3,
				Status:          models.StatusPending,
			},
		},
	}
	rp := newTestReporter(store)

	report, err := rp.Recommend(0, testDate, 2, "")

	require.NoError(t, err)
	bySlot := map[string]Slot{}
	for _, slot := range report.Slots {
		bySlot[slot.Time] = slot
	}
	// 18:00 itself conflicts; 17:00 and 19:00 sit outside the window, where
	// the party of 3 no longer counts against the 4 seats.
	assert.Equal(t, ReasonConflict, bySlot["18:00"].Reason)
	assert.True(t, bySlot["17:00"].Available)
	assert.True(t, bySlot["19:00"].Available)
}

func TestRecommendCapacityReasonWhenNoConflictButFull(t *testing.T) {
	// Tiny room: a single 2-top. A party of 4 never fits even on a free slot.
	store := &fakeStore{
		tables: []models.Table{{Capacity: 2, Status: models.TableAvailable}},
	}
	rp := newTestReporter(store)

	report, err := rp.Recommend(0, testDate, 4, "")

	require.NoError(t, err)
	for _, slot := range report.Slots {
		assert.False(t, slot.Available)
		assert.Equal(t, ReasonCapacity, slot.Reason)
	}
	assert.Empty(t, report.Recommendations)
}

func TestRecommendFailsClosedOnReservationReadError(t *testing.T) {
	store := &fakeStore{reservationsErr: errors.New("connection reset")}
	rp := newTestReporter(store)

	_, err := rp.Recommend(0, testDate, 2, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRecommendFailsClosedOnTableReadError(t *testing.T) {
	store := &fakeStore{tablesErr: errors.New("timeout")}
	rp := newTestReporter(store)

	_, err := rp.Recommend(0, testDate, 2, "")

	require.Error(t, err)
}

func TestRecommendInactiveReservationsIgnored(t *testing.T) {
	store := &fakeStore{
		reservations: []models.Reservation{
			{
				ReservationTime: time.Date(2025, 7, 4, 19, 0, 0, 0, time.UTC),
				PartySize:       4,
				Status:          models.StatusCancelled,
			},
			{
				ReservationTime: time.Date(2025, 7, 4, 18, 0, 0, 0, time.UTC),
				PartySize:       4,
				Status:          models.StatusCompleted,
			},
		},
	}
	rp := newTestReporter(store)

	report, err := rp.Recommend(0, testDate, 2, "")

	require.NoError(t, err)
	for _, slot := range report.Slots {
		assert.True(t, slot.Available, "slot %s", slot.Time)
	}
}

func TestRecommendPreferredTimeOnGridAvailable(t *testing.T) {
	rp := newTestReporter(&fakeStore{})

	report, err := rp.Recommend(0, testDate, 2, "18:00")

	require.NoError(t, err)
	assert.Equal(t, PreferredAvailable, report.PreferredTimeStatus)
	assert.Empty(t, report.PreferredTimeReason)
}

func TestRecommendPreferredTimeMalformed(t *testing.T) {
	rp := newTestReporter(&fakeStore{})

	report, err := rp.Recommend(0, testDate, 2, "7pm")

	require.NoError(t, err)
	assert.Equal(t, PreferredNotOffered, report.PreferredTimeStatus)
}

func TestCheckSlotGridStrict(t *testing.T) {
	rp := newTestReporter(&fakeStore{})

	ok, reason, err := rp.CheckSlot(0, testDate, "19:15", 2)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ReasonNotOffered, reason)
}

func TestCheckSlotAvailable(t *testing.T) {
	rp := newTestReporter(&fakeStore{})

	ok, reason, err := rp.CheckSlot(0, testDate, "19:00", 2)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestCheckSlotConflict(t *testing.T) {
	store := &fakeStore{
		reservations: []models.Reservation{
			{
				ReservationTime: time.Date(2025, 7, 4, 19, 0, 0, 0, time.UTC),
				PartySize:       2,
				Status:          models.StatusPending,
			},
		},
	}
	rp := newTestReporter(store)

	ok, reason, err := rp.CheckSlot(0, testDate, "19:00", 2)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ReasonConflict, reason)
}

func TestCheckSlotClosedDate(t *testing.T) {
	store := &fakeStore{
		closures: map[string]*models.Closure{"2025-07-04": {Date: "2025-07-04"}},
	}
	rp := newTestReporter(store)

	ok, reason, err := rp.CheckSlot(0, testDate, "19:00", 2)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, reason, "closed")
}
