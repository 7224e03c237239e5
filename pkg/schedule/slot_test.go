package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	s, err := ParseSlot("MON : 09:20 - 11:20")
	require.NoError(t, err)
	require.Equal(t, Slot{Day: "MON", Start: 9*60 + 20, End: 11*60 + 20}, s)
	require.Equal(t, 2*time.Hour, s.Duration())

	s, err = ParseSlot("THU:8:30-10:20")
	require.NoError(t, err)
	require.Equal(t, "THU : 08:30 - 10:20", s.String())

	s, err = ParseSlot("WED\u00a0:\u00a013:20\u00a0-\u00a015:20")
	require.NoError(t, err)
	require.Equal(t, Slot{Day: "WED", Start: 13*60 + 20, End: 15*60 + 20}, s)

	_, err = ParseSlot("Online")
	require.Error(t, err)
}

func TestParseSlots_DropsUnparseable(t *testing.T) {
	slots := ParseSlots([]string{"MON : 09:00 - 10:00", "TBA", "FRI : 15:20 - 17:20"})
	require.Len(t, slots, 2)
	require.Equal(t, "FRI", slots[1].Day)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"MON : 09:20 - 11:20", "MON : 09:00 - 11:30", true},
		{"TUE : 14:45 - 16:15", "TUE : 14:30 - 16:30", true},
		{"WED : 08:30 - 10:00", "WED : 09:00 - 10:00", true},
		{"THU : 18:30 - 21:00", "THU : 18:30 - 20:00", true},
		{"FRI : 13:00 - 14:30", "FRI : 13:00 - 14:30", true},
		{"FRI : 13:40 - 14:50", "FRI : 13:30 - 15:00", true},
		{"SAT : 07:00 - 08:00", "SAT : 09:00 - 09:30", true},
		{"MON : 10:10 - 10:00", "", false},
		{"TUE : 12:00 - 11:00", "", false},
	}

	for _, tt := range tests {
		s, err := ParseSlot(tt.in)
		require.NoError(t, err)

		got, ok := Normalize(s)
		require.Equal(t, tt.ok, ok, tt.in)
		if ok {
			require.Equal(t, tt.want, got.String(), tt.in)
		}
	}
}

func TestRoundBounds(t *testing.T) {
	require.Equal(t, 9*60, RoundDown(7*60+45))
	require.Equal(t, 19*60+30, RoundDown(20*60+15))
	require.Equal(t, 9*60+30, RoundUp(8*60+10))
	require.Equal(t, 20*60, RoundUp(20*60+5))
	require.Equal(t, 12*60, RoundUp(11*60+31))
}

func TestOverlap(t *testing.T) {
	a := Slot{Day: "MON", Start: 540, End: 660}
	require.True(t, Overlap(a, Slot{Day: "MON", Start: 600, End: 700}))
	require.False(t, Overlap(a, Slot{Day: "MON", Start: 660, End: 700}), "touching slots do not overlap")
	require.False(t, Overlap(a, Slot{Day: "TUE", Start: 540, End: 660}))
}

func TestWeekday(t *testing.T) {
	wd, ok := Weekday("WED")
	require.True(t, ok)
	require.Equal(t, time.Wednesday, wd)

	_, ok = Weekday("XYZ")
	require.False(t, ok)
}
