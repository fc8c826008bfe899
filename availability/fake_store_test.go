package availability

import (
	"time"

	"github.com/dineopen/reservation-app/models"
)

// fakeStore implements Store in memory, with per-method error injection and
// a call log so tests can assert which reads happened.
type fakeStore struct {
	settings    *SettingsRow
	settingsErr error

	business   map[time.Weekday]*LegacyDay
	opening    map[time.Weekday]*LegacyDay
	restaurant map[time.Weekday]*LegacyDay
	legacyErr  error

	reservations    []models.Reservation
	reservationsErr error

	closures   map[string]*models.Closure
	closureErr error

	tables    []models.Table
	tablesErr error

	calls []string
}

func (f *fakeStore) Settings(restaurantID uint) (*SettingsRow, error) {
	f.calls = append(f.calls, "settings")
	return f.settings, f.settingsErr
}

func (f *fakeStore) BusinessHoursFor(restaurantID uint, weekday time.Weekday) (*LegacyDay, error) {
	f.calls = append(f.calls, "business_hours")
	if f.legacyErr != nil {
		return nil, f.legacyErr
	}
	return f.business[weekday], nil
}

func (f *fakeStore) OpeningHoursFor(restaurantID uint, weekday time.Weekday) (*LegacyDay, error) {
	f.calls = append(f.calls, "opening_hours")
	if f.legacyErr != nil {
		return nil, f.legacyErr
	}
	return f.opening[weekday], nil
}

func (f *fakeStore) RestaurantHoursFor(restaurantID uint, weekday time.Weekday) (*LegacyDay, error) {
	f.calls = append(f.calls, "restaurant_hours")
	if f.legacyErr != nil {
		return nil, f.legacyErr
	}
	return f.restaurant[weekday], nil
}

func (f *fakeStore) ActiveReservations(restaurantID uint, from, to time.Time) ([]models.Reservation, error) {
	f.calls = append(f.calls, "reservations")
	if f.reservationsErr != nil {
		return nil, f.reservationsErr
	}
	var out []models.Reservation
	for _, r := range f.reservations {
		if !r.IsActive() {
			continue
		}
		if r.ReservationTime.Before(from) || !r.ReservationTime.Before(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeStore) ClosureOn(restaurantID uint, date string) (*models.Closure, error) {
	f.calls = append(f.calls, "closures")
	if f.closureErr != nil {
		return nil, f.closureErr
	}
	return f.closures[date], nil
}

func (f *fakeStore) ActiveTables(restaurantID uint) ([]models.Table, error) {
	f.calls = append(f.calls, "tables")
	if f.tablesErr != nil {
		return nil, f.tablesErr
	}
	if len(f.tables) == 0 {
		return DefaultTables, nil
	}
	return f.tables, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
