package hours

import (
	"strings"
	"time"
)

// Day is the set of open ranges within one day. Ranges are kept sorted by
// start and no two of them overlap or abut.
//
// The zero Day is empty and ready to use. Insert never writes into storage
// another Day value may hold, so copies made by assignment stay independent.
type Day struct {
	ranges []Range
}

// NewDay builds a Day by inserting every range.
func NewDay(ranges ...Range) Day {
	var d Day
	for _, r := range ranges {
		d.Insert(r)
	}
	return d
}

// ParseDay parses one or more ranges joined by '&', for example
// "830-12&13-1730". Ranges are inserted, so "6-730&7-8" becomes "6-8".
func ParseDay(s string) (Day, error) {
	if s == "" {
		return Day{}, parseError(s, ErrEmptyInput)
	}
	var d Day
	for _, token := range strings.Split(s, "&") {
		r, err := ParseRange(token)
		if err != nil {
			return Day{}, err
		}
		d.Insert(r)
	}
	return d, nil
}

// Insert adds r, merging it with any range it overlaps or abuts.
func (d *Day) Insert(r Range) {
	ranges := make([]Range, len(d.ranges), len(d.ranges)+1)
	copy(ranges, d.ranges)
	d.ranges = ranges

	merged := false
	i := 0
	for ; i < len(d.ranges); i++ {
		x := d.ranges[i]
		if overlapsOrAbuts(r, x) {
			d.ranges[i] = merge(x, r)
			merged = true
			break
		}
		if r.Start.Before(x.Start) {
			break
		}
	}
	if !merged {
		d.ranges = append(d.ranges, Range{})
		copy(d.ranges[i+1:], d.ranges[i:])
		d.ranges[i] = r
		return
	}
	d.coalesce()
}

// coalesce merges adjacent ranges until a full sweep changes nothing.
func (d *Day) coalesce() {
	for changed := true; changed; {
		changed = false
		for i := 1; i < len(d.ranges); i++ {
			if overlapsOrAbuts(d.ranges[i-1], d.ranges[i]) {
				d.ranges[i-1] = merge(d.ranges[i-1], d.ranges[i])
				d.ranges = append(d.ranges[:i], d.ranges[i+1:]...)
				changed = true
				break
			}
		}
	}
}

// Merge inserts every range of src into d.
func (d *Day) Merge(src Day) {
	for _, r := range src.ranges {
		d.Insert(r)
	}
}

// Clone returns a deep copy of d.
func (d Day) Clone() Day {
	if d.ranges == nil {
		return Day{}
	}
	ranges := make([]Range, len(d.ranges))
	copy(ranges, d.ranges)
	return Day{ranges: ranges}
}

// Ranges returns a copy of the ranges in ascending order.
func (d Day) Ranges() []Range {
	return d.Clone().ranges
}

func (d Day) Len() int { return len(d.ranges) }

func (d Day) IsEmpty() bool { return len(d.ranges) == 0 }

// Equal reports whether both days hold the same ranges.
func (d Day) Equal(other Day) bool {
	if len(d.ranges) != len(other.ranges) {
		return false
	}
	for i := range d.ranges {
		if d.ranges[i] != other.ranges[i] {
			return false
		}
	}
	return true
}

// Contains reports whether t falls in one of the ranges.
func (d Day) Contains(t TimeOfDay) bool {
	for _, r := range d.ranges {
		if r.Contains(t) {
			return true
		}
	}
	return false
}

// Seconds returns the total open time.
func (d Day) Seconds() int {
	total := 0
	for _, r := range d.ranges {
		total += r.Seconds()
	}
	return total
}

// String returns the canonical text form, e.g. "830-12&13-14".
func (d Day) String() string {
	parts := make([]string, len(d.ranges))
	for i, r := range d.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, "&")
}

// AddToSchedule anchors every range to the start of anchor's day.
func (d Day) AddToSchedule(anchor time.Time, schedule *Schedule) {
	midnight := startOfDay(anchor)
	for _, r := range d.ranges {
		schedule.Insert(TimeRange{
			Start: midnight.Add(time.Duration(r.Start.SecondsOfDay()) * time.Second),
			Stop:  midnight.Add(time.Duration(r.Stop.SecondsOfDay()) * time.Second),
		})
	}
}

// Remaining answers the daily question for t directly, without building a
// Schedule: when t is past the last range the answer is the time until
// the first range of the next day.
func (d Day) Remaining(t time.Time) Result {
	if d.IsEmpty() || t.IsZero() {
		return Result{}
	}
	t = t.Truncate(time.Second)
	target := int(t.Sub(startOfDay(t)) / time.Second)
	for _, r := range d.ranges {
		stop := r.Stop.SecondsOfDay()
		if target >= stop {
			continue
		}
		start := r.Start.SecondsOfDay()
		if start <= target {
			return Result{Valid: true, InSchedule: true, Seconds: stop - target}
		}
		return Result{Valid: true, Seconds: start - target}
	}
	return Result{Valid: true, Seconds: secondsPerDay - target + d.ranges[0].Start.SecondsOfDay()}
}

func startOfDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, t.Location())
}
