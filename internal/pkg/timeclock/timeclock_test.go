package timeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		name string
		in   TimeOfDay
		want string
	}{
		{"morning", TimeOfDay{Hour: "09", Minute: "30", Meridiem: AM}, "09:30"},
		{"afternoon", TimeOfDay{Hour: "05", Minute: "15", Meridiem: PM}, "17:15"},
		{"noon", TimeOfDay{Hour: "12", Minute: "00", Meridiem: PM}, "12:00"},
		{"midnight", TimeOfDay{Hour: "12", Minute: "00", Meridiem: AM}, "00:00"},
		{"unpadded hour", TimeOfDay{Hour: "9", Minute: "05", Meridiem: AM}, "09:05"},
		{"missing hour", TimeOfDay{Minute: "30", Meridiem: AM}, ""},
		{"missing minute", TimeOfDay{Hour: "09", Meridiem: AM}, ""},
		{"empty", TimeOfDay{}, ""},
		{"garbage hour", TimeOfDay{Hour: "nine", Minute: "30", Meridiem: AM}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.To24Hour())
		})
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "09:30 AM", TimeOfDay{Hour: "09", Minute: "30", Meridiem: AM}.Display())
	// Display keeps stored padding verbatim.
	assert.Equal(t, "9:05 PM", TimeOfDay{Hour: "9", Minute: "05", Meridiem: PM}.Display())
	assert.Equal(t, "", TimeOfDay{Hour: "09"}.Display())
	assert.Equal(t, "", TimeOfDay{}.Display())
}

func TestFromClock(t *testing.T) {
	cases := []struct {
		name string
		hour int
		min  int
		want TimeOfDay
	}{
		{"midnight", 0, 0, TimeOfDay{Hour: "12", Minute: "00", Meridiem: AM}},
		{"noon", 12, 0, TimeOfDay{Hour: "12", Minute: "00", Meridiem: PM}},
		{"morning", 9, 5, TimeOfDay{Hour: "09", Minute: "05", Meridiem: AM}},
		{"evening", 21, 45, TimeOfDay{Hour: "09", Minute: "45", Meridiem: PM}},
		{"one pm", 13, 0, TimeOfDay{Hour: "01", Minute: "00", Meridiem: PM}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clock := time.Date(2024, time.March, 15, tc.hour, tc.min, 0, 0, time.UTC)
			assert.Equal(t, tc.want, FromClock(clock))
		})
	}
}

func TestComputeHours(t *testing.T) {
	cases := []struct {
		name string
		in   TimeOfDay
		out  TimeOfDay
		brk  int
		want float64
	}{
		{
			name: "standard day with default break",
			in:   TimeOfDay{Hour: "09", Minute: "00", Meridiem: AM},
			out:  TimeOfDay{Hour: "06", Minute: "00", Meridiem: PM},
			brk:  60,
			want: 8.0,
		},
		{
			name: "half hour break",
			in:   TimeOfDay{Hour: "09", Minute: "00", Meridiem: AM},
			out:  TimeOfDay{Hour: "05", Minute: "30", Meridiem: PM},
			brk:  30,
			want: 8.0,
		},
		{
			name: "fractional result",
			in:   TimeOfDay{Hour: "09", Minute: "00", Meridiem: AM},
			out:  TimeOfDay{Hour: "05", Minute: "30", Meridiem: PM},
			brk:  60,
			want: 7.5,
		},
		{
			name: "overnight shift",
			in:   TimeOfDay{Hour: "09", Minute: "00", Meridiem: PM},
			out:  TimeOfDay{Hour: "05", Minute: "00", Meridiem: AM},
			brk:  0,
			want: 8.0,
		},
		{
			name: "equal in and out wraps to next day",
			in:   TimeOfDay{Hour: "09", Minute: "00", Meridiem: AM},
			out:  TimeOfDay{Hour: "09", Minute: "00", Meridiem: AM},
			brk:  0,
			want: 24.0,
		},
		{
			name: "break exceeds shift floors to zero",
			in:   TimeOfDay{Hour: "09", Minute: "00", Meridiem: AM},
			out:  TimeOfDay{Hour: "10", Minute: "00", Meridiem: AM},
			brk:  120,
			want: 0,
		},
		{
			name: "unset in time",
			in:   TimeOfDay{},
			out:  TimeOfDay{Hour: "05", Minute: "00", Meridiem: PM},
			brk:  60,
			want: 0,
		},
		{
			name: "unset out time",
			in:   TimeOfDay{Hour: "09", Minute: "00", Meridiem: AM},
			out:  TimeOfDay{},
			brk:  60,
			want: 0,
		},
		{
			name: "zero break",
			in:   TimeOfDay{Hour: "08", Minute: "15", Meridiem: AM},
			out:  TimeOfDay{Hour: "04", Minute: "15", Meridiem: PM},
			brk:  0,
			want: 8.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ComputeHours(tc.in, tc.out, tc.brk), 1e-9)
		})
	}
}

func TestComputeHoursNeverNegative(t *testing.T) {
	in := TimeOfDay{Hour: "09", Minute: "00", Meridiem: AM}
	out := TimeOfDay{Hour: "09", Minute: "30", Meridiem: AM}
	for _, brk := range []int{0, 15, 30, 31, 60, 600} {
		got := ComputeHours(in, out, brk)
		assert.GreaterOrEqual(t, got, 0.0, "break %d", brk)
	}
}
