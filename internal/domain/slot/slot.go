package slot

import (
	"errors"
	"fmt"
)

var ErrUnknownSlot = errors.New("unknown time slot")

// pattern is the hand-authored availability table standing in for real
// inventory. Rows cover 15:00 to 00:00 and then the 01:00 slot; columns are
// courts 1 to 4.
var pattern = [...][CourtCount]bool{
	{true, true, true, true},
	{true, true, true, true},
	{true, true, false, true},
	{true, false, true, true},
	{true, true, true, false},
	{false, true, true, true},
	{true, true, false, true},
	{true, false, true, true},
	{false, true, true, true},
	{true, true, false, true},
	{true, false, true, true},
}

const (
	firstHour = 15
	lastHour  = 24
)

type TimeSlot struct {
	id     string
	label  string
	hour   int
	courts [CourtCount]bool
}

// Generate returns the day's slot table. It is the same for every date.
func Generate() []TimeSlot {
	slots := make([]TimeSlot, 0, len(pattern))
	for i, hour := 0, firstHour; hour <= lastHour; i, hour = i+1, hour+1 {
		display := hour
		if hour == lastHour {
			display = 0
		}
		slots = append(slots, TimeSlot{
			id:     fmt.Sprintf("slot-%d", hour),
			label:  fmt.Sprintf("%d:00", display),
			hour:   display,
			courts: pattern[i],
		})
	}
	// the late slot keeps its zero-padded label
	slots = append(slots, TimeSlot{
		id:     "slot-1",
		label:  "01:00",
		hour:   1,
		courts: pattern[len(pattern)-1],
	})
	return slots
}

// Find returns the slot whose label is exactly label, e.g. "20:00".
func Find(label string) (TimeSlot, error) {
	for _, s := range Generate() {
		if s.label == label {
			return s, nil
		}
	}
	return TimeSlot{}, fmt.Errorf("%w: %q", ErrUnknownSlot, label)
}

func (s TimeSlot) ID() string   { return s.id }
func (s TimeSlot) Time() string { return s.label }
func (s TimeSlot) Hour() int    { return s.hour }

// Available reports whether at least one court is free.
func (s TimeSlot) Available() bool {
	for _, free := range s.courts {
		if free {
			return true
		}
	}
	return false
}

func (s TimeSlot) CourtAvailable(c Court) bool {
	return s.courts[c.index()]
}

func (s TimeSlot) Courts() [CourtCount]bool {
	return s.courts
}
