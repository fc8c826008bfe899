// Package availability computes bookable time slots for a restaurant day.
// It resolves business hours from several schema generations, generates the
// slot grid, and checks candidate times against existing reservations and
// seating capacity. All reads go through the Store interface; nothing here
// writes to the database.
package availability

import (
	"fmt"
	"strings"
	"time"
)

const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// ConflictWindow is the symmetric buffer around a candidate time. An
	// existing active reservation inside [t-window, t+window] (inclusive)
	// blocks the candidate. Fixed, not scaled by party size.
	ConflictWindow = 30 * time.Minute
)

// Hard defaults used when no hours configuration can be resolved at all.
const (
	DefaultOpenTime       = "17:00"
	DefaultCloseTime      = "21:00"
	DefaultSlotInterval   = 30 // minutes
	DefaultDiningDuration = 90 // minutes
)

// Segment is a contiguous open-to-close sub-range within a day, e.g. a
// separate lunch and dinner service.
type Segment struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// Config is the fully resolved hours configuration for one date. When
// Segments is non-empty it takes precedence over the Open/Close pair.
type Config struct {
	Open           string    `json:"open_time"`
	Close          string    `json:"close_time"`
	SlotInterval   int       `json:"slot_interval"`   // minutes
	DiningDuration int       `json:"dining_duration"` // minutes
	Segments       []Segment `json:"segments,omitempty"`
	Closed         bool      `json:"closed"`
}

// segments returns the effective segment list: Segments when present,
// otherwise the single Open/Close pair.
func (c Config) segments() []Segment {
	if len(c.Segments) > 0 {
		return c.Segments
	}
	return []Segment{{Start: c.Open, End: c.Close}}
}

// Slot is one bookable start time plus its computed availability.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: must be HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// formatClock converts minutes since midnight back into "HH:MM".
func formatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
