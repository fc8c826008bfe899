package availability

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dineopen/reservation-app/models"
)

// SettingsRow is the per-restaurant settings record: the weekly hours JSON
// document plus the flat open/close and slot parameter overrides.
type SettingsRow struct {
	WeeklyHours    string
	OpenTime       *string
	CloseTime      *string
	SlotInterval   *int
	DiningDuration *int
	TimeZone       string
}

// LegacyDay is one weekday's hours as read from a legacy hours table,
// normalized to the canonical column names.
type LegacyDay struct {
	Open   string
	Close  string
	Closed bool
}

// Store is the read-only boundary to the reservation database. A nil row
// with a nil error means "no row found". Implementations must not retry;
// the resolver treats errors from hours lookups as source-unavailable,
// while reservation and table reads propagate their errors.
type Store interface {
	Settings(restaurantID uint) (*SettingsRow, error)
	BusinessHoursFor(restaurantID uint, weekday time.Weekday) (*LegacyDay, error)
	OpeningHoursFor(restaurantID uint, weekday time.Weekday) (*LegacyDay, error)
	RestaurantHoursFor(restaurantID uint, weekday time.Weekday) (*LegacyDay, error)
	ActiveReservations(restaurantID uint, from, to time.Time) ([]models.Reservation, error)
	ClosureOn(restaurantID uint, date string) (*models.Closure, error)
	ActiveTables(restaurantID uint) ([]models.Table, error)
}

// DefaultTables is the fallback dining room used when no table rows exist
// in the database. Callers can't tell whether capacity came from the store
// or from this list.
var DefaultTables = []models.Table{
	{Name: "T1", Capacity: 2, Status: models.TableAvailable},
	{Name: "T2", Capacity: 2, Status: models.TableAvailable},
	{Name: "T3", Capacity: 4, Status: models.TableAvailable},
	{Name: "T4", Capacity: 4, Status: models.TableAvailable},
	{Name: "T5", Capacity: 6, Status: models.TableAvailable},
	{Name: "T6", Capacity: 8, Status: models.TableAvailable},
}

// GormStore implements Store over the application's GORM connection.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Settings(restaurantID uint) (*SettingsRow, error) {
	var restaurant models.Restaurant
	q := s.DB
	if restaurantID != 0 {
		q = q.Where("id = ?", restaurantID)
	}
	if err := q.First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &SettingsRow{
		WeeklyHours:    restaurant.WeeklyHours,
		OpenTime:       restaurant.OpenTime,
		CloseTime:      restaurant.CloseTime,
		SlotInterval:   restaurant.SlotInterval,
		DiningDuration: restaurant.DiningDuration,
		TimeZone:       restaurant.TimeZone,
	}, nil
}

func (s *GormStore) BusinessHoursFor(restaurantID uint, weekday time.Weekday) (*LegacyDay, error) {
	var row models.BusinessHours
	q := s.DB.Where("day_of_week = ?", int(weekday))
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &LegacyDay{Open: row.OpenTime, Close: row.CloseTime, Closed: row.IsClosed}, nil
}

func (s *GormStore) OpeningHoursFor(restaurantID uint, weekday time.Weekday) (*LegacyDay, error) {
	var row models.OpeningHours
	q := s.DB.Where("weekday = ?", int(weekday))
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &LegacyDay{Open: row.OpensAt, Close: row.ClosesAt}, nil
}

func (s *GormStore) RestaurantHoursFor(restaurantID uint, weekday time.Weekday) (*LegacyDay, error) {
	var row models.RestaurantHours
	names := dayNameKeys(weekday)
	q := s.DB.Where("LOWER(day) IN ?", names)
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &LegacyDay{Open: row.StartTime, Close: row.EndTime}, nil
}

func (s *GormStore) ActiveReservations(restaurantID uint, from, to time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	q := s.DB.Where("reservation_time >= ? AND reservation_time < ? AND status IN ?",
		from, to, models.ActiveStatuses)
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	if err := q.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *GormStore) ClosureOn(restaurantID uint, date string) (*models.Closure, error) {
	var closure models.Closure
	q := s.DB.Where("date = ?", date)
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	if err := q.First(&closure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &closure, nil
}

func (s *GormStore) ActiveTables(restaurantID uint) ([]models.Table, error) {
	var tables []models.Table
	q := s.DB.Where("status = ?", models.TableAvailable)
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	if err := q.Find(&tables).Error; err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return DefaultTables, nil
	}
	return tables, nil
}
