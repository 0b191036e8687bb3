package hours

import (
	"fmt"
	"strings"
	"time"
)

// RawLayout is the text form of each end of a raw range.
const RawLayout = "20060102150405"

// TimeRange is the half open interval [Start, Stop) between two instants.
type TimeRange struct {
	Start time.Time
	Stop  time.Time
}

// ParseTimeRange parses "YYYYMMDDHHMMSS-YYYYMMDDHHMMSS", optionally
// prefixed with '_', interpreting both ends in loc.
func ParseTimeRange(s string, loc *time.Location) (TimeRange, error) {
	body := strings.TrimPrefix(s, "_")
	if body == "" {
		return TimeRange{}, parseError(s, ErrEmptyInput)
	}
	l := strings.SplitN(body, "-", 2)
	if len(l) != 2 {
		return TimeRange{}, parseError(s, ErrMissingSeparator)
	}
	start, err := parseInstant(l[0], loc)
	if err != nil {
		return TimeRange{}, fmt.Errorf("cannot parse range %q: %w", s, err)
	}
	stop, err := parseInstant(l[1], loc)
	if err != nil {
		return TimeRange{}, fmt.Errorf("cannot parse range %q: %w", s, err)
	}
	if !start.Before(stop) {
		return TimeRange{}, parseError(s, ErrNonMonotonicRange)
	}
	return TimeRange{Start: start, Stop: stop}, nil
}

func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, parseError(s, ErrEmptyInput)
	}
	if len(s) != len(RawLayout) || !isDigits(s) {
		return time.Time{}, parseError(s, ErrInvalidDigitCount)
	}
	t, err := time.ParseInLocation(RawLayout, s, loc)
	if err != nil {
		return time.Time{}, parseError(s, ErrOutOfRange)
	}
	return t, nil
}

// Contains reports whether t is in [Start, Stop).
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.Stop)
}

func (r TimeRange) String() string {
	return r.Start.Format(RawLayout) + "-" + r.Stop.Format(RawLayout)
}

func (r TimeRange) touches(other TimeRange) bool {
	return !other.Start.After(r.Stop) && !r.Start.After(other.Stop)
}

// Schedule is a sorted set of non overlapping instants ranges, built for a
// single query.
type Schedule struct {
	ranges []TimeRange
}

// Insert adds r, merging it with every range it overlaps or touches.
func (s *Schedule) Insert(r TimeRange) {
	out := make([]TimeRange, 0, len(s.ranges)+1)
	placed := false
	for _, x := range s.ranges {
		switch {
		case x.touches(r):
			if x.Start.Before(r.Start) {
				r.Start = x.Start
			}
			if x.Stop.After(r.Stop) {
				r.Stop = x.Stop
			}
		case x.Stop.Before(r.Start):
			out = append(out, x)
		default:
			if !placed {
				out = append(out, r)
				placed = true
			}
			out = append(out, x)
		}
	}
	if !placed {
		out = append(out, r)
	}
	s.ranges = out
}

// Ranges returns a copy of the ranges in ascending order.
func (s *Schedule) Ranges() []TimeRange {
	ranges := make([]TimeRange, len(s.ranges))
	copy(ranges, s.ranges)
	return ranges
}

func (s *Schedule) Len() int { return len(s.ranges) }

// Remaining scans for the first range that ends after t. When there is
// none the result is outside with zero seconds, meaning nothing more
// happens in this schedule.
func (s *Schedule) Remaining(t time.Time) Result {
	for _, r := range s.ranges {
		if !r.Stop.After(t) {
			continue
		}
		if !r.Start.After(t) {
			return Result{Valid: true, InSchedule: true, Seconds: seconds(r.Stop.Sub(t))}
		}
		return Result{Valid: true, Seconds: seconds(r.Start.Sub(t))}
	}
	return Result{Valid: true}
}

func seconds(d time.Duration) int {
	return int(d / time.Second)
}
