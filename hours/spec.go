// Package hours parses compact hours specifications and answers whether an
// instant is inside the schedule and how long until that changes.
//
// Accepted forms:
//
//	8-12                           daily, 08:00 to 12:00
//	830-12&13-1730                 daily, two ranges
//	P9-17                          daily, weekday notation
//	MWF8-12|R9-10                  weekly
//	20150516121900-20150516122000  raw, a single occurrence
//	_20150516121900-20150516122000 raw, explicit marker
//
// Biweekly ("B...") is recognized but not supported.
package hours

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the recurrence kind of a specification.
type Kind int

const (
	Invalid Kind = iota
	Daily
	Weekdaily
	Weekly
	Biweekly
	Raw
)

var kindNames = [...]string{
	Invalid:   "invalid",
	Daily:     "daily",
	Weekdaily: "weekdaily",
	Weekly:    "weekly",
	Biweekly:  "biweekly",
	Raw:       "raw",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Invalid]
	}
	return kindNames[k]
}

// rawDashOffset is where the dash sits in YYYYMMDDHHMMSS-YYYYMMDDHHMMSS.
const rawDashOffset = len(RawLayout)

// Classify looks at the first character and the position of the first
// dash to decide which parser applies. It does not validate the rest.
func Classify(s string) Kind {
	dash := strings.IndexByte(s, '-')
	if s == "" || dash < 0 {
		return Invalid
	}
	c := s[0]
	switch {
	case '0' <= c && c <= '9':
		if dash == rawDashOffset {
			return Raw
		}
		if dash <= 4 {
			return Daily
		}
		return Invalid
	case c == 'P':
		return Weekdaily
	case c == 'B':
		return Biweekly
	case c == '_':
		return Raw
	case strings.IndexByte(weekdayLetters, c) >= 0:
		return Weekly
	}
	return Invalid
}

// Spec is a parsed specification: one of *DailySpec, *WeekdailySpec,
// *WeeklySpec or *RawSpec. Specs are immutable.
type Spec interface {
	Kind() Kind
	// String returns the canonical text form, which parses back to an
	// equal Spec.
	String() string

	isSpec()
}

// DailySpec repeats the same Day every calendar day.
type DailySpec struct {
	day Day
}

// WeekdailySpec is the "P" notation of a daily schedule.
type WeekdailySpec struct {
	day Day
}

// WeeklySpec repeats a Week every calendar week.
type WeeklySpec struct {
	week Week
}

// RawSpec is a single, non recurring range.
type RawSpec struct {
	rng TimeRange
}

// NewDailySpec copies day into a DailySpec. An empty day is rejected with
// ErrEmptyInput.
func NewDailySpec(day Day) (*DailySpec, error) {
	if day.IsEmpty() {
		return nil, fmt.Errorf("daily spec: %w", ErrEmptyInput)
	}
	return &DailySpec{day: day.Clone()}, nil
}

// NewWeekdailySpec is NewDailySpec for the "P" notation.
func NewWeekdailySpec(day Day) (*WeekdailySpec, error) {
	if day.IsEmpty() {
		return nil, fmt.Errorf("weekdaily spec: %w", ErrEmptyInput)
	}
	return &WeekdailySpec{day: day.Clone()}, nil
}

// NewWeeklySpec copies week into a WeeklySpec. A week with every day
// closed is rejected with ErrEmptyInput.
func NewWeeklySpec(week Week) (*WeeklySpec, error) {
	if week.IsEmpty() {
		return nil, fmt.Errorf("weekly spec: %w", ErrEmptyInput)
	}
	return &WeeklySpec{week: week.Clone()}, nil
}

// NewRawSpec rejects ranges whose start is not before their stop.
func NewRawSpec(r TimeRange) (*RawSpec, error) {
	if !r.Start.Before(r.Stop) {
		return nil, fmt.Errorf("raw spec: %w", ErrNonMonotonicRange)
	}
	return &RawSpec{rng: r}, nil
}

func (*DailySpec) Kind() Kind     { return Daily }
func (*WeekdailySpec) Kind() Kind { return Weekdaily }
func (*WeeklySpec) Kind() Kind    { return Weekly }
func (*RawSpec) Kind() Kind       { return Raw }

func (s *DailySpec) String() string     { return s.day.String() }
func (s *WeekdailySpec) String() string { return "P" + s.day.String() }
func (s *WeeklySpec) String() string    { return s.week.String() }
func (s *RawSpec) String() string       { return s.rng.String() }

// Day returns a copy of the daily hours.
func (s *DailySpec) Day() Day { return s.day.Clone() }

// Day returns a copy of the daily hours.
func (s *WeekdailySpec) Day() Day { return s.day.Clone() }

// Week returns a copy of the weekly hours.
func (s *WeeklySpec) Week() Week { return s.week.Clone() }

// Range returns the raw range.
func (s *RawSpec) Range() TimeRange { return s.rng }

func (*DailySpec) isSpec()     {}
func (*WeekdailySpec) isSpec() {}
func (*WeeklySpec) isSpec()    {}
func (*RawSpec) isSpec()       {}

// Parse parses s, reading raw instants in the local time zone.
func Parse(s string) (Spec, error) {
	return ParseInLocation(s, time.Local)
}

// ParseInLocation parses s, reading raw instants in loc.
func ParseInLocation(s string, loc *time.Location) (Spec, error) {
	switch kind := Classify(s); kind {
	case Daily:
		day, err := ParseDay(s)
		if err != nil {
			return nil, err
		}
		return &DailySpec{day: day}, nil
	case Weekdaily:
		day, err := ParseDay(s[1:])
		if err != nil {
			return nil, err
		}
		return &WeekdailySpec{day: day}, nil
	case Weekly:
		week, err := ParseWeek(s)
		if err != nil {
			return nil, err
		}
		return &WeeklySpec{week: week}, nil
	case Raw:
		r, err := ParseTimeRange(s, loc)
		if err != nil {
			return nil, err
		}
		return &RawSpec{rng: r}, nil
	case Biweekly:
		return nil, parseError(s, ErrUnsupportedKind)
	default:
		if s == "" {
			return nil, parseError(s, ErrEmptyInput)
		}
		return nil, parseError(s, ErrUnrecognizedKind)
	}
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Spec {
	spec, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return spec
}
