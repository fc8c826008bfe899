package availability

import (
	"errors"
	"fmt"
	"time"
)

// Fixed human-readable outcomes attached to slots and check results.
const (
	ReasonConflict   = "Another reservation is within 30 minutes of this time"
	ReasonCapacity   = "Not enough seats remaining for this party size"
	ReasonNotOffered = "This time is not on the booking grid for this date"

	PreferredAvailable   = "available"
	PreferredUnavailable = "unavailable"
	PreferredNotOffered  = "not_offered"
)

var (
	ErrPastDate         = errors.New("date is in the past")
	ErrInvalidPartySize = errors.New("party size must be at least 1")
)

// MaxRecommendations caps how many alternative slots a report suggests.
const MaxRecommendations = 3

// Report is the answer to "what can I book on this date".
type Report struct {
	Date                string   `json:"date"`
	Closed              bool     `json:"closed"`
	Message             string   `json:"message,omitempty"`
	Slots               []Slot   `json:"slots"`
	Recommendations     []string `json:"recommendations"`
	PreferredTime       string   `json:"preferred_time,omitempty"`
	PreferredTimeStatus string   `json:"preferred_time_status,omitempty"`
	PreferredTimeReason string   `json:"preferred_time_reason,omitempty"`
}

// Reporter composes the resolver, the slot generator and the conflict rules
// into date-level availability answers. Each call is stateless; the day's
// reservations are fetched once and reused across every slot.
type Reporter struct {
	store    Store
	resolver *Resolver
	loc      *time.Location
	now      func() time.Time
}

func NewReporter(store Store, loc *time.Location) *Reporter {
	if loc == nil {
		loc = time.UTC
	}
	return &Reporter{
		store:    store,
		resolver: NewResolver(store),
		loc:      loc,
		now:      time.Now,
	}
}

// Recommend reports every slot on date with its availability for partySize,
// up to MaxRecommendations suggested alternatives, and, when preferredTime
// is given, the status of that specific slot.
//
// A store failure while reading reservations or tables fails the whole
// report; a failed read must never pass for "no conflicts".
func (rp *Reporter) Recommend(restaurantID uint, date time.Time, partySize int, preferredTime string) (*Report, error) {
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}
	if rp.isPastDate(date) {
		return nil, ErrPastDate
	}

	dateStr := date.Format(DateFormat)
	report := &Report{Date: dateStr, Recommendations: []string{}}

	closure, err := rp.store.ClosureOn(restaurantID, dateStr)
	if err != nil {
		return nil, fmt.Errorf("checking closures: %w", err)
	}
	if closure != nil {
		report.Closed = true
		report.Message = closedMessage(closure.Reason)
		report.Slots = []Slot{}
		return report, nil
	}

	cfg := rp.resolver.Resolve(restaurantID, date)
	times := GenerateSlots(cfg)
	if cfg.Closed || len(times) == 0 {
		report.Closed = cfg.Closed
		if cfg.Closed {
			report.Message = closedMessage("")
		} else {
			report.Message = "No bookable times on this date"
		}
		report.Slots = []Slot{}
		return report, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, rp.loc)
	dayEnd := dayStart.Add(24 * time.Hour)
	reservations, err := rp.store.ActiveReservations(restaurantID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("fetching reservations: %w", err)
	}
	tables, err := rp.store.ActiveTables(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("fetching tables: %w", err)
	}

	report.Slots = make([]Slot, 0, len(times))
	for _, t := range times {
		slot := Slot{Time: t}
		candidate := rp.slotTime(date, t)
		switch {
		case HasConflict(candidate, reservations):
			slot.Reason = ReasonConflict
		case RemainingCapacity(candidate, reservations, tables) < partySize:
			slot.Reason = ReasonCapacity
		default:
			slot.Available = true
		}
		if slot.Available && len(report.Recommendations) < MaxRecommendations {
			report.Recommendations = append(report.Recommendations, t)
		}
		report.Slots = append(report.Slots, slot)
	}

	if preferredTime != "" {
		report.PreferredTime = preferredTime
		// The preferred time is judged against the raw candidate datetime, not
		// just the grid: a request for 19:15 still collides with a 19:00 party
		// even though 19:15 is not an offered slot.
		if _, err := parseClock(preferredTime); err != nil {
			report.PreferredTimeStatus = PreferredNotOffered
			report.PreferredTimeReason = ReasonNotOffered
		} else {
			candidate := rp.slotTime(date, preferredTime)
			switch {
			case HasConflict(candidate, reservations):
				report.PreferredTimeStatus = PreferredUnavailable
				report.PreferredTimeReason = ReasonConflict
			case RemainingCapacity(candidate, reservations, tables) < partySize:
				report.PreferredTimeStatus = PreferredUnavailable
				report.PreferredTimeReason = ReasonCapacity
			default:
				report.PreferredTimeStatus = PreferredAvailable
			}
		}
	}

	return report, nil
}

// CheckSlot answers "is this exact (date, time, party size) bookable right
// now". Unlike the preferred-time status in a report, booking is strict
// about the grid: a time that is not an offered slot is not bookable even
// when nothing conflicts with it.
func (rp *Reporter) CheckSlot(restaurantID uint, date time.Time, timeStr string, partySize int) (bool, string, error) {
	report, err := rp.Recommend(restaurantID, date, partySize, "")
	if err != nil {
		return false, "", err
	}
	if report.Closed {
		return false, report.Message, nil
	}
	for _, slot := range report.Slots {
		if slot.Time != timeStr {
			continue
		}
		if slot.Available {
			return true, "", nil
		}
		return false, slot.Reason, nil
	}
	return false, ReasonNotOffered, nil
}

// slotTime anchors an "HH:MM" slot onto date in the reporter's location.
func (rp *Reporter) slotTime(date time.Time, clock string) time.Time {
	m, err := parseClock(clock)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, rp.loc)
}

// isPastDate compares at day granularity in the reporter's location.
func (rp *Reporter) isPastDate(date time.Time) bool {
	now := rp.now().In(rp.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, rp.loc)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, rp.loc)
	return day.Before(today)
}

func closedMessage(reason string) string {
	if reason != "" {
		return fmt.Sprintf("The restaurant is closed on this date: %s", reason)
	}
	return "The restaurant is closed on this date"
}
