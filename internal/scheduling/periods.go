// Package scheduling holds the slot arithmetic shared by slot generation
// and appointment booking: a working day is split into two half-day
// periods around a fixed lunch break, and each period is walked in
// fixed-size increments.
package scheduling

import (
	"fmt"
	"time"
)

const (
	// SlotMinutes is the length of one bookable slot.
	SlotMinutes = 15
)

var (
	// LunchStart and LunchEnd bound the midday break. No slot crosses it.
	LunchStart = MustParse("12:00")
	LunchEnd   = MustParse("13:00")
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// Parse converts an HH:MM string into a TimeOfDay
func Parse(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// MustParse is Parse for compile-time constants
func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FromTime converts the clock portion of t into a TimeOfDay
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Add steps the time forward by the given number of minutes
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Period is one half-day working window
type Period struct {
	Start TimeOfDay
	End   TimeOfDay
}

// WorkPeriods splits a declared shift around the lunch break. A period
// whose start does not precede its end yields no slots.
func WorkPeriods(start, end TimeOfDay) []Period {
	return []Period{
		{Start: start, End: LunchStart},
		{Start: LunchEnd, End: end},
	}
}

// BookingPeriods builds the two lookup periods for a requested visit
// time, anchored at the requested time for the morning half and at the
// end of the lunch break for the afternoon half. Order matters: the
// morning period is always evaluated first.
func BookingPeriods(ordered TimeOfDay) []Period {
	return []Period{
		{Start: ordered, End: LunchStart},
		{Start: LunchEnd, End: ordered},
	}
}

// Slot is one bookable increment inside a period
type Slot struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Slots walks both work periods of a shift in SlotMinutes increments.
// An increment landing exactly on the period end is still emitted; one
// that would pass it is not.
func Slots(start, end TimeOfDay) []Slot {
	var slots []Slot
	for _, p := range WorkPeriods(start, end) {
		if p.Start >= p.End {
			continue
		}
		for t := p.Start; t.Add(SlotMinutes) <= p.End; t = t.Add(SlotMinutes) {
			slots = append(slots, Slot{Start: t, End: t.Add(SlotMinutes)})
		}
	}
	return slots
}
