package hours

import "time"

// Result answers a remaining query. InSchedule and Seconds are meaningless
// when Valid is false.
type Result struct {
	Valid      bool
	InSchedule bool
	// Seconds until InSchedule flips.
	Seconds int
}

// Duration returns Seconds as a time.Duration.
func (r Result) Duration() time.Duration {
	return time.Duration(r.Seconds) * time.Second
}

// ChangesAt returns the instant at which the state changes, given the
// instant the result was computed for.
func (r Result) ChangesAt(t time.Time) time.Time {
	return t.Truncate(time.Second).Add(r.Duration())
}

// maxRollovers bounds how many empty periods Remaining skips. Parsed
// specs always have at least one range per period they cover, so a single
// rollover reaches the next range.
const maxRollovers = 2

// Materialize adds the ranges spec yields for the period containing
// anchor: the anchor's day for daily specs, and the range itself for raw
// specs. Weekly specs materialize every weekday of the Monday to Sunday
// week containing anchor, not only the anchor's weekday, so rolling over
// to the next week never skips the rest of the current one.
func Materialize(spec Spec, anchor time.Time, schedule *Schedule) {
	switch s := spec.(type) {
	case *DailySpec:
		s.day.AddToSchedule(anchor, schedule)
	case *WeekdailySpec:
		s.day.AddToSchedule(anchor, schedule)
	case *WeeklySpec:
		s.week.AddToSchedule(anchor, schedule)
	case *RawSpec:
		schedule.Insert(s.rng)
	}
}

// nextPeriod returns the start of the period after the one containing t,
// or false when spec does not recur.
func nextPeriod(spec Spec, t time.Time) (time.Time, bool) {
	switch spec.(type) {
	case *DailySpec, *WeekdailySpec:
		return startOfDay(t).AddDate(0, 0, 1), true
	case *WeeklySpec:
		return startOfWeek(t).AddDate(0, 0, 7), true
	}
	return time.Time{}, false
}

// Remaining reports whether t, truncated to the second, is inside spec and
// how many seconds remain until that changes. When the period containing t has no further
// transition, the query rolls over into the next period.
func Remaining(spec Spec, t time.Time) Result {
	if spec == nil || t.IsZero() {
		return Result{}
	}
	// Results count whole seconds, so the fraction is dropped up front. A
	// sub-second gap would otherwise read as "nothing left this period".
	t = t.Truncate(time.Second)
	skipped := 0
	anchor := t
	for i := 0; i <= maxRollovers; i++ {
		var schedule Schedule
		Materialize(spec, anchor, &schedule)
		result := schedule.Remaining(anchor)
		if result.InSchedule || result.Seconds != 0 {
			if skipped == 0 {
				return result
			}
			// t was outside. If the next period opens on its first
			// second, the change happens at the period boundary.
			if result.InSchedule {
				return Result{Valid: true, Seconds: skipped}
			}
			result.Seconds += skipped
			return result
		}
		next, ok := nextPeriod(spec, anchor)
		if !ok {
			return result
		}
		skipped += seconds(next.Sub(anchor))
		anchor = next
	}
	return Result{}
}
