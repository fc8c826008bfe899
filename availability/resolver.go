package availability

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Resolver determines the hours configuration for a given date. Sources are
// consulted in precedence order and merged field by field: a field left
// unset by one source falls through to the next, and anything still unset
// at the end takes the hard default. A source that errors is treated as
// unavailable and skipped; Resolve never fails.
//
// Precedence: weekly hours JSON → flat settings columns → the business_hours
// table → the opening_hours table → the restaurant_hours table → defaults.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// partial is a config under construction. Nil fields are still unset.
type partial struct {
	Open           *string
	Close          *string
	SlotInterval   *int
	DiningDuration *int
	Segments       []Segment
	Closed         *bool
}

// fillFrom copies fields from p into dst where dst has not set them yet.
func (dst *partial) fillFrom(p *partial) {
	if dst.Open == nil {
		dst.Open = p.Open
	}
	if dst.Close == nil {
		dst.Close = p.Close
	}
	if dst.SlotInterval == nil {
		dst.SlotInterval = p.SlotInterval
	}
	if dst.DiningDuration == nil {
		dst.DiningDuration = p.DiningDuration
	}
	if len(dst.Segments) == 0 {
		dst.Segments = p.Segments
	}
	if dst.Closed == nil {
		dst.Closed = p.Closed
	}
}

func (p *partial) toConfig() Config {
	cfg := Config{
		Open:           DefaultOpenTime,
		Close:          DefaultCloseTime,
		SlotInterval:   DefaultSlotInterval,
		DiningDuration: DefaultDiningDuration,
		Segments:       p.Segments,
	}
	if p.Open != nil {
		cfg.Open = *p.Open
	}
	if p.Close != nil {
		cfg.Close = *p.Close
	}
	if p.SlotInterval != nil && *p.SlotInterval > 0 {
		cfg.SlotInterval = *p.SlotInterval
	}
	if p.DiningDuration != nil && *p.DiningDuration > 0 {
		cfg.DiningDuration = *p.DiningDuration
	}
	if p.Closed != nil {
		cfg.Closed = *p.Closed
	}
	return cfg
}

// Resolve builds the hours configuration for date. restaurantID 0 means
// "the default restaurant" (first settings row).
func (r *Resolver) Resolve(restaurantID uint, date time.Time) Config {
	weekday := date.Weekday()

	settings, err := r.store.Settings(restaurantID)
	if err != nil {
		settings = nil
	}

	merged := &partial{}

	if settings != nil {
		if p := parseWeeklyHours(settings.WeeklyHours, weekday); p != nil {
			merged.fillFrom(p)
		}
		merged.fillFrom(&partial{
			Open:           settings.OpenTime,
			Close:          settings.CloseTime,
			SlotInterval:   settings.SlotInterval,
			DiningDuration: settings.DiningDuration,
		})
	}

	legacyLookups := []func(uint, time.Weekday) (*LegacyDay, error){
		r.store.BusinessHoursFor,
		r.store.OpeningHoursFor,
		r.store.RestaurantHoursFor,
	}
	for _, lookup := range legacyLookups {
		day, err := lookup(restaurantID, weekday)
		if err != nil || day == nil {
			continue
		}
		merged.fillFrom(legacyPartial(day))
	}

	return merged.toConfig()
}

func legacyPartial(day *LegacyDay) *partial {
	p := &partial{}
	if day.Closed {
		closed := true
		p.Closed = &closed
		return p
	}
	open := false
	p.Closed = &open
	if _, err := parseClock(day.Open); err == nil {
		s := strings.TrimSpace(day.Open)
		p.Open = &s
	}
	if _, err := parseClock(day.Close); err == nil {
		s := strings.TrimSpace(day.Close)
		p.Close = &s
	}
	return p
}

// dayNameKeys lists the lowercase keys a weekday may appear under in the
// weekly hours document: full and abbreviated English names, the Spanish
// and Portuguese names some older installs exported, and the Sunday-based
// numeric index.
func dayNameKeys(w time.Weekday) []string {
	aliases := map[time.Weekday][]string{
		time.Sunday:    {"sunday", "sun", "domingo", "dom"},
		time.Monday:    {"monday", "mon", "lunes", "lun", "segunda", "seg"},
		time.Tuesday:   {"tuesday", "tue", "tues", "martes", "terca", "ter"},
		time.Wednesday: {"wednesday", "wed", "miercoles", "mie", "quarta", "qua"},
		time.Thursday:  {"thursday", "thu", "thurs", "jueves", "jue", "quinta", "qui"},
		time.Friday:    {"friday", "fri", "viernes", "vie", "sexta", "sex"},
		time.Saturday:  {"saturday", "sat", "sabado", "sab"},
	}
	return append(aliases[w], strconv.Itoa(int(w)))
}

// parseWeeklyHours extracts the entry for weekday from the weekly hours
// JSON document. Three historical shapes are accepted: a map keyed by day
// name or numeric weekday, an array of {day, start, end} entries, and an
// array of {day, segments} entries. Returns nil when the document is empty,
// malformed, or has no entry for the day.
func parseWeeklyHours(doc string, weekday time.Weekday) *partial {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}

	var raw any
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case map[string]any:
		lowered := make(map[string]any, len(v))
		for k, val := range v {
			lowered[strings.ToLower(strings.TrimSpace(k))] = val
		}
		for _, key := range dayNameKeys(weekday) {
			if entry, ok := lowered[key]; ok {
				return parseDayEntry(entry)
			}
		}
	case []any:
		var segments []Segment
		closed := false
		found := false
		for _, item := range v {
			entry, ok := item.(map[string]any)
			if !ok || !entryMatchesDay(entry, weekday) {
				continue
			}
			found = true
			p := parseDayEntry(entry)
			if p == nil {
				continue
			}
			if p.Closed != nil && *p.Closed {
				closed = true
				continue
			}
			segments = append(segments, partialSegments(p)...)
		}
		if !found {
			return nil
		}
		if closed && len(segments) == 0 {
			t := true
			return &partial{Closed: &t}
		}
		return segmentsPartial(segments)
	}
	return nil
}

func entryMatchesDay(entry map[string]any, weekday time.Weekday) bool {
	day, ok := entry["day"]
	if !ok {
		day, ok = entry["weekday"]
	}
	if !ok {
		return false
	}
	switch d := day.(type) {
	case string:
		d = strings.ToLower(strings.TrimSpace(d))
		for _, key := range dayNameKeys(weekday) {
			if d == key {
				return true
			}
		}
	case float64:
		return int(d) == int(weekday)
	}
	return false
}

// parseDayEntry interprets a single weekday entry: either an object with
// start/end (or open/close) strings, an object with a segments array, a
// bare segments array, or {"closed": true}.
func parseDayEntry(entry any) *partial {
	switch v := entry.(type) {
	case map[string]any:
		if isClosed(v) {
			t := true
			return &partial{Closed: &t}
		}
		if segs, ok := v["segments"].([]any); ok {
			return segmentsPartial(parseSegmentList(segs))
		}
		start := stringField(v, "start", "open", "start_time", "open_time")
		end := stringField(v, "end", "close", "end_time", "close_time")
		if seg, ok := validSegment(start, end); ok {
			return segmentsPartial([]Segment{seg})
		}
	case []any:
		return segmentsPartial(parseSegmentList(v))
	}
	return nil
}

func isClosed(entry map[string]any) bool {
	if b, ok := entry["closed"].(bool); ok && b {
		return true
	}
	if b, ok := entry["is_closed"].(bool); ok && b {
		return true
	}
	if b, ok := entry["enabled"].(bool); ok && !b {
		return true
	}
	return false
}

func parseSegmentList(items []any) []Segment {
	var segments []Segment
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		start := stringField(m, "start", "open", "start_time", "open_time")
		end := stringField(m, "end", "close", "end_time", "close_time")
		if seg, ok := validSegment(start, end); ok {
			segments = append(segments, seg)
		}
	}
	return segments
}

// validSegment checks both endpoints parse and start < end.
func validSegment(start, end string) (Segment, bool) {
	s, err := parseClock(start)
	if err != nil {
		return Segment{}, false
	}
	e, err := parseClock(end)
	if err != nil {
		return Segment{}, false
	}
	if s >= e {
		return Segment{}, false
	}
	return Segment{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}, true
}

// segmentsPartial maps a segment list onto a partial: a single segment
// becomes the open/close pair, multiple segments are kept as Segments.
func segmentsPartial(segments []Segment) *partial {
	if len(segments) == 0 {
		return nil
	}
	open := false
	p := &partial{Closed: &open}
	if len(segments) == 1 {
		p.Open = &segments[0].Start
		p.Close = &segments[0].End
		return p
	}
	p.Segments = segments
	return p
}

func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// partialSegments flattens a partial back into its segment list.
func partialSegments(p *partial) []Segment {
	if len(p.Segments) > 0 {
		return p.Segments
	}
	if p.Open != nil && p.Close != nil {
		return []Segment{{Start: *p.Open, End: *p.Close}}
	}
	return nil
}
