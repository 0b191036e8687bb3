package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemaining_Daily(t *testing.T) {
	tests := []struct {
		spec    string
		h, m, s int
		in      bool
		seconds int
	}{
		{"830-12", 7, 0, 0, false, 60 * 90},
		{"830-12", 7, 0, 1, false, 60*90 - 1},
		{"830-12", 7, 1, 0, false, 60 * 89},
		{"830-12", 8, 29, 59, false, 1},
		{"830-12", 8, 30, 0, true, 60 * 210},
		{"830-12", 8, 30, 1, true, 60*210 - 1},
		{"830-12", 8, 31, 1, true, 60*209 - 1},
		{"830-12", 11, 59, 59, true, 1},
		{"830-12", 12, 0, 0, false, 3600*24 - 60*210},
		{"830-12", 12, 0, 1, false, 3600*24 - 60*210 - 1},
		{"830-12", 12, 1, 1, false, 3600*24 - 60*210 - 61},
		{"830-12", 13, 0, 0, false, 3600*23 - 60*210},
		{"830-12&13-14", 7, 0, 0, false, 60 * 90},
		{"830-12&13-14", 7, 0, 1, false, 60*90 - 1},
		{"830-12&13-14", 7, 1, 0, false, 60 * 89},
		{"830-12&13-14", 8, 29, 59, false, 1},
		{"830-12&13-14", 8, 30, 0, true, 60 * 210},
		{"830-12&13-14", 8, 30, 1, true, 60*210 - 1},
		{"830-12&13-14", 8, 31, 1, true, 60*209 - 1},
		{"830-12&13-14", 11, 59, 59, true, 1},
		{"830-12&13-14", 12, 0, 0, false, 3600},
		{"830-12&13-14", 12, 0, 1, false, 3600 - 1},
		{"830-12&13-14", 12, 1, 1, false, 3600 - 61},
		{"830-12&13-14", 12, 59, 59, false, 1},
		{"830-12&13-14", 13, 0, 0, true, 3600},
		{"830-12&13-15", 15, 0, 0, false, 63000},
		{"830-12&13-15", 15, 0, 1, false, 63000 - 1},
		{"P830-12", 12, 0, 0, false, 3600*24 - 60*210},
		{"P830-12", 9, 0, 0, true, 3 * 3600},
		{"0-24", 23, 59, 59, true, 1},
		{"0-24", 0, 0, 0, true, 24 * 3600},
		// The next day opens at midnight, so the answer is the wait until
		// midnight. The next day's 8h open stretch is deliberately not
		// added on top.
		{"0-8", 9, 0, 0, false, 15 * 3600},
	}
	for _, test := range tests {
		spec, err := Parse(test.spec)
		require.NoError(t, err)
		when := at(test.h, test.m, test.s)

		got := Remaining(spec, when)
		assert.Equal(t, Result{Valid: true, InSchedule: test.in, Seconds: test.seconds}, got,
			"%s at %02d:%02d:%02d", test.spec, test.h, test.m, test.s)
	}
}

func TestRemaining_DailySubSecond(t *testing.T) {
	spec := MustParse("830-12")
	day := mustDay(t, "830-12")
	tests := []struct {
		when    time.Time
		in      bool
		seconds int
	}{
		{at(8, 29, 59).Add(500 * time.Millisecond), false, 1},
		{at(8, 29, 59).Add(999 * time.Millisecond), false, 1},
		{at(7, 0, 0).Add(300 * time.Millisecond), false, 60 * 90},
		{at(11, 59, 59).Add(700 * time.Millisecond), true, 1},
		{at(12, 0, 0).Add(time.Nanosecond), false, 3600*24 - 60*210},
	}
	for _, test := range tests {
		got := Remaining(spec, test.when)
		assert.Equal(t, Result{Valid: true, InSchedule: test.in, Seconds: test.seconds}, got, test.when.String())
		assert.Equal(t, got, day.Remaining(test.when), test.when.String())
	}

	r := Remaining(spec, at(8, 0, 0).Add(250*time.Millisecond))
	assert.True(t, at(8, 30, 0).Equal(r.ChangesAt(at(8, 0, 0).Add(250*time.Millisecond))))
}

func TestRemaining_AgreesWithDay(t *testing.T) {
	for _, s := range []string{"830-12", "830-12&13-14", "0-1&23-2359", "6-730&8-9&20-22"} {
		day := mustDay(t, s)
		spec, err := NewDailySpec(day)
		require.NoError(t, err)
		for minute := 0; minute < 24*60; minute += 7 {
			when := at(0, 0, 0).Add(time.Duration(minute)*time.Minute + 13*time.Second)
			assert.Equal(t, day.Remaining(when), Remaining(spec, when), "%s at %s", s, when)
		}
	}
}

// 2015-05-11 is a Monday.
func wk(day, h, m int) time.Time {
	return time.Date(2015, time.May, day, h, m, 0, 0, time.UTC)
}

func TestRemaining_Weekly(t *testing.T) {
	spec, err := Parse("MWF8-12|R13-14")
	require.NoError(t, err)

	tests := []struct {
		when    time.Time
		in      bool
		seconds int
	}{
		{wk(11, 7, 0), false, 3600},
		{wk(11, 9, 0), true, 3 * 3600},
		// Monday after closing to Wednesday 08:00
		{wk(11, 12, 0), false, 44 * 3600},
		// Tuesday is closed all day
		{wk(12, 0, 0), false, 32 * 3600},
		{wk(14, 12, 30), false, 30 * 60},
		{wk(14, 13, 30), true, 30 * 60},
		// Friday after closing rolls into next Monday 08:00
		{wk(15, 12, 0), false, (2*24 + 12 + 8) * 3600},
		{wk(16, 12, 0), false, (24 + 12 + 8) * 3600},
		{wk(17, 23, 0), false, 9 * 3600},
	}
	for _, test := range tests {
		got := Remaining(spec, test.when)
		assert.Equal(t, Result{Valid: true, InSchedule: test.in, Seconds: test.seconds}, got, test.when.String())
	}
}

func TestRemaining_WeeklyAcrossMidnight(t *testing.T) {
	spec, err := Parse("U22-24|M0-2")
	require.NoError(t, err)

	// Sunday 23:00: the Monday range belongs to the next calendar week,
	// so the change is reported at the week boundary.
	got := Remaining(spec, wk(17, 23, 0))
	assert.Equal(t, Result{Valid: true, InSchedule: true, Seconds: 3600}, got)

	got = Remaining(spec, wk(18, 1, 0))
	assert.Equal(t, Result{Valid: true, InSchedule: true, Seconds: 3600}, got)

	// Saturday noon; the Sunday range is in the same week.
	got = Remaining(spec, wk(16, 12, 0))
	assert.Equal(t, Result{Valid: true, Seconds: 34 * 3600}, got)
}

func TestRemaining_Raw(t *testing.T) {
	spec, err := ParseInLocation("20150516121900-20150516122000", time.UTC)
	require.NoError(t, err)

	assert.Equal(t, Result{Valid: true, Seconds: 60}, Remaining(spec, at(12, 18, 0)))
	assert.Equal(t, Result{Valid: true, InSchedule: true, Seconds: 30}, Remaining(spec, at(12, 19, 30)))
	// after the range there is nothing to roll into
	assert.Equal(t, Result{Valid: true}, Remaining(spec, at(12, 20, 0)))
}

func TestRemaining_Invalid(t *testing.T) {
	assert.False(t, Remaining(nil, at(8, 0, 0)).Valid)
	assert.False(t, Remaining(MustParse("8-12"), time.Time{}).Valid)
}

func TestResult_ChangesAt(t *testing.T) {
	r := Remaining(MustParse("830-12"), at(7, 0, 0))
	assert.Equal(t, 90*time.Minute, r.Duration())
	assert.True(t, at(8, 30, 0).Equal(r.ChangesAt(at(7, 0, 0))))
}

func TestMaterialize(t *testing.T) {
	var s Schedule
	Materialize(MustParse("P9-17"), at(3, 0, 0), &s)
	Materialize(MustParse("8-10&1630-18"), at(3, 0, 0), &s)
	ranges := s.Ranges()
	require.Len(t, ranges, 1)
	assert.True(t, at(8, 0, 0).Equal(ranges[0].Start))
	assert.True(t, at(18, 0, 0).Equal(ranges[0].Stop))
}
