package hours

import (
	"fmt"
	"strings"
	"time"
)

// weekdayLetters is indexed by time.Weekday.
const weekdayLetters = "UMTWRFA"

// mondayFirst is the order groups are printed in.
var mondayFirst = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeekdayLetter returns the single letter code for wd: M T W R F A U.
func WeekdayLetter(wd time.Weekday) byte {
	return weekdayLetters[wd]
}

// ParseWeekdayLetter is the inverse of WeekdayLetter.
func ParseWeekdayLetter(c byte) (time.Weekday, bool) {
	i := strings.IndexByte(weekdayLetters, c)
	if i < 0 {
		return 0, false
	}
	return time.Weekday(i), true
}

// Week holds an optional Day for each weekday. A weekday without a Day is
// closed.
type Week struct {
	days [7]*Day
}

// ParseWeek parses groups joined by '|'. Each group is one or more weekday
// letters followed by a Day, e.g. "MWF8-12|R9-10&13-14".
func ParseWeek(s string) (Week, error) {
	if s == "" {
		return Week{}, parseError(s, ErrEmptyInput)
	}
	var w Week
	for _, group := range strings.Split(s, "|") {
		if err := w.parseGroup(group); err != nil {
			return Week{}, err
		}
	}
	return w, nil
}

func (w *Week) parseGroup(group string) error {
	n := 0
	var weekdays []time.Weekday
	for ; n < len(group); n++ {
		c := group[n]
		if '0' <= c && c <= '9' {
			break
		}
		wd, ok := ParseWeekdayLetter(c)
		if !ok {
			return parseError(group, fmt.Errorf("%w %q", ErrUnknownWeekdayLetter, c))
		}
		weekdays = append(weekdays, wd)
	}
	if len(weekdays) == 0 {
		return parseError(group, ErrUnknownWeekdayLetter)
	}
	day, err := ParseDay(group[n:])
	if err != nil {
		return err
	}
	for _, wd := range weekdays {
		w.set(wd, day)
	}
	return nil
}

// Add opens wd for the ranges of day, in addition to any it already has.
// Empty days are ignored.
func (w *Week) Add(wd time.Weekday, day Day) {
	if day.IsEmpty() {
		return
	}
	w.set(wd, day)
}

// set merges day into wd's Day, taking a copy.
func (w *Week) set(wd time.Weekday, day Day) {
	if w.days[wd] == nil {
		c := day.Clone()
		w.days[wd] = &c
		return
	}
	w.days[wd].Merge(day)
}

// Day returns a copy of the Day for wd, or false when wd is closed.
func (w Week) Day(wd time.Weekday) (Day, bool) {
	d := w.days[wd]
	if d == nil {
		return Day{}, false
	}
	return d.Clone(), true
}

// Clone returns a deep copy of w.
func (w Week) Clone() Week {
	var c Week
	for wd, d := range w.days {
		if d != nil {
			dc := d.Clone()
			c.days[wd] = &dc
		}
	}
	return c
}

// IsEmpty reports whether every weekday is closed.
func (w Week) IsEmpty() bool {
	for _, d := range w.days {
		if d != nil && !d.IsEmpty() {
			return false
		}
	}
	return true
}

// String groups weekdays with identical hours, Monday first:
// "MWF8-12|R9-10".
func (w Week) String() string {
	var groups []string
	done := make(map[time.Weekday]bool)
	for i, wd := range mondayFirst {
		d := w.days[wd]
		if d == nil || done[wd] {
			continue
		}
		letters := []byte{WeekdayLetter(wd)}
		for _, other := range mondayFirst[i+1:] {
			if o := w.days[other]; o != nil && !done[other] && o.Equal(*d) {
				letters = append(letters, WeekdayLetter(other))
				done[other] = true
			}
		}
		groups = append(groups, string(letters)+d.String())
	}
	return strings.Join(groups, "|")
}

// AddToSchedule materializes the calendar week, Monday to Sunday, that
// contains anchor.
func (w Week) AddToSchedule(anchor time.Time, schedule *Schedule) {
	monday := startOfWeek(anchor)
	for i, wd := range mondayFirst {
		if d := w.days[wd]; d != nil {
			d.AddToSchedule(monday.AddDate(0, 0, i), schedule)
		}
	}
}

// startOfWeek returns Monday 00:00 of t's week.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}
