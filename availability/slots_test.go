package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlotsDefaultEvening(t *testing.T) {
	cfg := Config{Open: "17:00", Close: "21:00", SlotInterval: 30, DiningDuration: 90}

	slots := GenerateSlots(cfg)

	assert.Equal(t, []string{"17:00", "17:30", "18:00", "18:30", "19:00", "19:30"}, slots)
}

func TestGenerateSlotsFloorsOffGridClose(t *testing.T) {
	// 21:10 close − 90 min = 19:40, floored to the 30-minute grid at 19:30.
	cfg := Config{Open: "17:00", Close: "21:10", SlotInterval: 30, DiningDuration: 90}

	slots := GenerateSlots(cfg)

	assert.Equal(t, "19:30", slots[len(slots)-1])
}

func TestGenerateSlotsSegmentTooShort(t *testing.T) {
	cfg := Config{Open: "18:00", Close: "19:00", SlotInterval: 30, DiningDuration: 90}

	assert.Empty(t, GenerateSlots(cfg))
}

func TestGenerateSlotsSegmentExactlyDiningDuration(t *testing.T) {
	// lastFloored == start contributes nothing.
	cfg := Config{Open: "18:00", Close: "19:30", SlotInterval: 30, DiningDuration: 90}

	assert.Empty(t, GenerateSlots(cfg))
}

func TestGenerateSlotsSegmentsUnion(t *testing.T) {
	cfg := Config{
		SlotInterval:   30,
		DiningDuration: 60,
		Segments: []Segment{
			{Start: "12:00", End: "14:00"},
			{Start: "18:00", End: "21:00"},
		},
	}

	slots := GenerateSlots(cfg)

	assert.Equal(t, []string{"12:00", "12:30", "13:00", "18:00", "18:30", "19:00", "19:30", "20:00"}, slots)
}

func TestGenerateSlotsSegmentsTakePrecedenceOverOpenClose(t *testing.T) {
	cfg := Config{
		Open: "09:00", Close: "23:00",
		SlotInterval:   60,
		DiningDuration: 60,
		Segments:       []Segment{{Start: "18:00", End: "20:00"}},
	}

	assert.Equal(t, []string{"18:00", "19:00"}, GenerateSlots(cfg))
}

func TestGenerateSlotsOverlappingSegmentsDeduplicate(t *testing.T) {
	cfg := Config{
		SlotInterval:   30,
		DiningDuration: 60,
		Segments: []Segment{
			{Start: "18:00", End: "20:00"},
			{Start: "18:30", End: "20:30"},
		},
	}

	slots := GenerateSlots(cfg)

	seen := map[string]bool{}
	for _, s := range slots {
		assert.False(t, seen[s], "duplicate slot %s", s)
		seen[s] = true
	}
	assert.Equal(t, []string{"18:00", "18:30", "19:00", "19:30"}, slots)
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	cfg := Config{Open: "17:00", Close: "21:00", SlotInterval: 30, DiningDuration: 90, Closed: true}

	assert.Empty(t, GenerateSlots(cfg))
}
