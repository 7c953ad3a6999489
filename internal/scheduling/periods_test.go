package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "12:00", want: 720},
		{in: "13:00", want: 780},
		{in: "23:45", want: 1425},
		{in: "24:00", wantErr: true},
		{in: "9am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, c := range cases {
		got, err := Parse(c.in)
		if c.wantErr {
			assert.Error(t, err, "input %q", c.in)
			continue
		}
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", MustParse("09:05").String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "14:35", TimeOfDay(875).String())
}

func TestSlotsMorningOnly(t *testing.T) {
	// 09:00-13:00 covers only the morning period; the afternoon period
	// 13:00-13:00 is empty. 09:00..12:00 in 15-minute steps = 12 slots.
	slots := Slots(MustParse("09:00"), MustParse("13:00"))
	require.Len(t, slots, 12)
	assert.Equal(t, "09:00", slots[0].Start.String())
	assert.Equal(t, "09:15", slots[0].End.String())
	assert.Equal(t, "11:45", slots[11].Start.String())
	assert.Equal(t, "12:00", slots[11].End.String())
}

func TestSlotsFullDay(t *testing.T) {
	slots := Slots(MustParse("09:00"), MustParse("17:00"))
	// 12 morning slots + 16 afternoon slots
	require.Len(t, slots, 28)

	for i, s := range slots {
		assert.Equal(t, TimeOfDay(SlotMinutes), s.End-s.Start, "slot %d duration", i)
		// none crosses the lunch break
		assert.False(t, s.Start < LunchStart && s.End > LunchStart, "slot %d crosses lunch start", i)
		assert.False(t, s.Start >= LunchStart && s.Start < LunchEnd, "slot %d inside lunch", i)
	}

	// contiguous within each period
	assert.Equal(t, "12:00", slots[11].End.String())
	assert.Equal(t, "13:00", slots[12].Start.String())
	assert.Equal(t, "17:00", slots[27].End.String())

	for i := 1; i < 12; i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
	for i := 13; i < 28; i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}

func TestSlotsAfternoonOnly(t *testing.T) {
	// startTime past noon skips the morning period entirely
	slots := Slots(MustParse("14:00"), MustParse("15:00"))
	require.Len(t, slots, 4)
	assert.Equal(t, "14:00", slots[0].Start.String())
	assert.Equal(t, "15:00", slots[3].End.String())
}

func TestSlotsInclusiveBoundary(t *testing.T) {
	// an increment landing exactly on the period end is still emitted
	slots := Slots(MustParse("11:45"), MustParse("12:00"))
	require.Len(t, slots, 1)
	assert.Equal(t, "11:45", slots[0].Start.String())
	assert.Equal(t, "12:00", slots[0].End.String())
}

func TestSlotsPartialTail(t *testing.T) {
	// a trailing remainder shorter than a slot is dropped
	slots := Slots(MustParse("13:00"), MustParse("13:20"))
	require.Len(t, slots, 1)
	assert.Equal(t, "13:15", slots[0].End.String())
}

func TestSlotsEmptyShift(t *testing.T) {
	assert.Empty(t, Slots(MustParse("12:00"), MustParse("13:00")))
	assert.Empty(t, Slots(MustParse("12:30"), MustParse("12:45")))
}

func TestBookingPeriodsOrder(t *testing.T) {
	periods := BookingPeriods(MustParse("09:30"))
	require.Len(t, periods, 2)
	// morning period first, anchored at the requested time
	assert.Equal(t, MustParse("09:30"), periods[0].Start)
	assert.Equal(t, LunchStart, periods[0].End)
	// afternoon period anchored at the end of the lunch break
	assert.Equal(t, LunchEnd, periods[1].Start)
	assert.Equal(t, MustParse("09:30"), periods[1].End)
}
