package availability

import (
	"sort"
	"time"

	"github.com/dineopen/reservation-app/models"
)

// inWindow reports whether t falls within the conflict window around
// candidate. Both endpoints are inclusive.
func inWindow(candidate, t time.Time) bool {
	lo := candidate.Add(-ConflictWindow)
	hi := candidate.Add(ConflictWindow)
	return !t.Before(lo) && !t.After(hi)
}

// HasConflict reports whether any active reservation falls within the
// conflict window around candidate. Cancelled and completed reservations
// never count.
func HasConflict(candidate time.Time, existing []models.Reservation) bool {
	for i := range existing {
		r := &existing[i]
		if !r.IsActive() {
			continue
		}
		if inWindow(candidate, r.ReservationTime) {
			return true
		}
	}
	return false
}

// RemainingCapacity returns total seating capacity minus the party sizes of
// all active reservations inside the conflict window around candidate. The
// raw difference is returned and may be negative; callers clamp as needed.
func RemainingCapacity(candidate time.Time, existing []models.Reservation, tables []models.Table) int {
	total := 0
	for _, t := range tables {
		total += t.Capacity
	}
	for i := range existing {
		r := &existing[i]
		if !r.IsActive() {
			continue
		}
		if inWindow(candidate, r.ReservationTime) {
			total -= r.PartySize
		}
	}
	return total
}

// AvailableTables returns the tables that can seat partySize at candidate:
// tables already referenced by an active reservation inside the conflict
// window are excluded, the rest are filtered to capacity >= partySize and
// sorted ascending by capacity so the smallest sufficient table comes first.
func AvailableTables(candidate time.Time, partySize int, existing []models.Reservation, tables []models.Table) []models.Table {
	occupied := make(map[uint]bool)
	for i := range existing {
		r := &existing[i]
		if !r.IsActive() || r.TableID == nil {
			continue
		}
		if inWindow(candidate, r.ReservationTime) {
			occupied[*r.TableID] = true
		}
	}

	var free []models.Table
	for _, t := range tables {
		if occupied[t.ID] || t.Capacity < partySize {
			continue
		}
		free = append(free, t)
	}
	sort.SliceStable(free, func(i, j int) bool {
		return free[i].Capacity < free[j].Capacity
	})
	return free
}
