package availability

import (
	"sort"
)

// GenerateSlots produces the ordered, deduplicated list of bookable start
// times for a resolved configuration.
//
// For each segment the last bookable start is close minus the dining
// duration, floored down to the interval grid from midnight so slots always
// line up even when closing time is off-grid. A segment too short to seat a
// full dining duration contributes nothing. Results across segments are
// unioned, deduplicated and sorted ascending.
func GenerateSlots(cfg Config) []string {
	if cfg.Closed || cfg.SlotInterval <= 0 || cfg.DiningDuration <= 0 {
		return nil
	}

	seen := make(map[int]bool)
	for _, seg := range cfg.segments() {
		start, err := parseClock(seg.Start)
		if err != nil {
			continue
		}
		end, err := parseClock(seg.End)
		if err != nil {
			continue
		}

		lastStart := end - cfg.DiningDuration
		lastFloored := lastStart - lastStart%cfg.SlotInterval
		if lastFloored <= start {
			continue
		}
		for t := start; t <= lastFloored; t += cfg.SlotInterval {
			seen[t] = true
		}
	}

	minutes := make([]int, 0, len(seen))
	for m := range seen {
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	slots := make([]string, len(minutes))
	for i, m := range minutes {
		slots[i] = formatClock(m)
	}
	return slots
}
