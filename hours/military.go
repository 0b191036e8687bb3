package hours

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// TimeOfDay is a wall clock hour and minute. 24:00 is allowed and means
// midnight at the end of the day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Midnight is 00:00.
var Midnight = TimeOfDay{}

// NewTimeOfDay validates hour and minute.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	t := TimeOfDay{Hour: hour, Minute: minute}
	if err := t.Validate(); err != nil {
		return TimeOfDay{}, err
	}
	return t, nil
}

// Validate checks 0 <= hour <= 24, 0 <= minute <= 59 and that 24 only
// appears as 24:00.
func (t TimeOfDay) Validate() error {
	if t.Hour < 0 || t.Hour > 24 {
		return fmt.Errorf("hour %d: %w", t.Hour, ErrOutOfRange)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("minute %d: %w", t.Minute, ErrOutOfRange)
	}
	if t.Hour == 24 && t.Minute != 0 {
		return fmt.Errorf("%02d:%02d: %w", t.Hour, t.Minute, ErrOutOfRange)
	}
	return nil
}

// Compare returns -1, 0 or 1.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	switch {
	case t.Hour < other.Hour:
		return -1
	case t.Hour > other.Hour:
		return 1
	case t.Minute < other.Minute:
		return -1
	case t.Minute > other.Minute:
		return 1
	}
	return 0
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.Compare(other) < 0 }

func (t TimeOfDay) Equal(other TimeOfDay) bool { return t.Compare(other) == 0 }

// SecondsOfDay returns the number of seconds since 00:00.
func (t TimeOfDay) SecondsOfDay() int {
	return t.Hour*secondsPerHour + t.Minute*secondsPerMinute
}

// Sub returns t - prior in seconds. It panics if prior is later than t.
func (t TimeOfDay) Sub(prior TimeOfDay) int {
	seconds := t.SecondsOfDay() - prior.SecondsOfDay()
	if seconds < 0 {
		panic(fmt.Sprintf("hours: %s is before %s", t, prior))
	}
	return seconds
}

// next returns the time one minute later. 23:59 becomes 24:00.
func (t TimeOfDay) next() TimeOfDay {
	if t.Minute == 59 {
		return TimeOfDay{Hour: t.Hour + 1}
	}
	return TimeOfDay{Hour: t.Hour, Minute: t.Minute + 1}
}

// String returns the shortest numeral that parses back to t: "8", "10",
// "830", "1001".
func (t TimeOfDay) String() string {
	if t.Minute == 0 {
		return strconv.Itoa(t.Hour)
	}
	return fmt.Sprintf("%d%02d", t.Hour, t.Minute)
}

// ParseTimeOfDay parses a 1 to 4 digit numeral. One or two digits are the
// hour; three digits are a one digit hour and two digit minute; four
// digits are HHMM.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if s == "" {
		return TimeOfDay{}, parseError(s, ErrEmptyInput)
	}
	var hh, mm string
	switch len(s) {
	case 1, 2:
		hh, mm = s, "0"
	case 3:
		hh, mm = s[:1], s[1:]
	case 4:
		hh, mm = s[:2], s[2:]
	default:
		return TimeOfDay{}, parseError(s, ErrInvalidDigitCount)
	}
	if !isDigits(s) {
		return TimeOfDay{}, parseError(s, ErrInvalidDigitCount)
	}
	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)
	t := TimeOfDay{Hour: hour, Minute: minute}
	if err := t.Validate(); err != nil {
		return TimeOfDay{}, parseError(s, err)
	}
	return t, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Range is the half open interval [Start, Stop) within one day.
type Range struct {
	Start TimeOfDay
	Stop  TimeOfDay
}

// NewRange validates both ends and that start is before stop.
func NewRange(start, stop TimeOfDay) (Range, error) {
	if err := start.Validate(); err != nil {
		return Range{}, err
	}
	if err := stop.Validate(); err != nil {
		return Range{}, err
	}
	if !start.Before(stop) {
		return Range{}, fmt.Errorf("%s-%s: %w", start, stop, ErrNonMonotonicRange)
	}
	return Range{Start: start, Stop: stop}, nil
}

// ParseRange parses "start-stop", splitting on the first dash.
func ParseRange(s string) (Range, error) {
	if s == "" {
		return Range{}, parseError(s, ErrEmptyInput)
	}
	l := strings.SplitN(s, "-", 2)
	if len(l) != 2 {
		return Range{}, parseError(s, ErrMissingSeparator)
	}
	start, err := ParseTimeOfDay(l[0])
	if err != nil {
		return Range{}, fmt.Errorf("cannot parse range %q: %w", s, err)
	}
	stop, err := ParseTimeOfDay(l[1])
	if err != nil {
		return Range{}, fmt.Errorf("cannot parse range %q: %w", s, err)
	}
	if !start.Before(stop) {
		return Range{}, parseError(s, ErrNonMonotonicRange)
	}
	return Range{Start: start, Stop: stop}, nil
}

// Compare orders by start, then stop.
func (r Range) Compare(other Range) int {
	if c := r.Start.Compare(other.Start); c != 0 {
		return c
	}
	return r.Stop.Compare(other.Stop)
}

// Contains reports whether t is in [Start, Stop).
func (r Range) Contains(t TimeOfDay) bool {
	return !t.Before(r.Start) && t.Before(r.Stop)
}

// Seconds returns the length of the range.
func (r Range) Seconds() int {
	return r.Stop.Sub(r.Start)
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.Stop.String()
}

// overlapsOrAbuts reports whether a and b intersect, touch, or are
// separated by a single minute.
func overlapsOrAbuts(a, b Range) bool {
	earlier, later := a, b
	if b.Start.Before(a.Start) {
		earlier, later = b, a
	}
	return !earlier.Stop.next().Before(later.Start)
}

// merge returns the smallest range covering a and b. Only meaningful when
// overlapsOrAbuts(a, b).
func merge(a, b Range) Range {
	m := a
	if b.Start.Before(m.Start) {
		m.Start = b.Start
	}
	if m.Stop.Before(b.Stop) {
		m.Stop = b.Stop
	}
	return m
}
