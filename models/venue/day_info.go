package venue

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hours-server/hours"
)

// DayInfo is one day of published opening hours.
type DayInfo struct {
	// DayInt is 0 for Monday through 6 for Sunday.
	DayInt  int    `json:"day_int" yaml:"day_int"`
	DayText string `json:"day_text,omitempty" yaml:"day_text,omitempty"`

	VenueOpen   string `json:"venue_open" yaml:"venue_open"`     // Read as string.
	VenueClosed string `json:"venue_closed" yaml:"venue_closed"` // Read as string.
}

// UnmarshalJSON accepts venue_open and venue_closed as numbers or strings.
func (d *DayInfo) UnmarshalJSON(data []byte) error {
	// Create an alias to avoid infinite recursion.
	type Alias DayInfo
	aux := &struct {
		VenueOpen   interface{} `json:"venue_open"`
		VenueClosed interface{} `json:"venue_closed"`
		*Alias
	}{
		Alias: (*Alias)(d),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d.VenueOpen = asString(aux.VenueOpen)
	d.VenueClosed = asString(aux.VenueClosed)
	return nil
}

func asString(v interface{}) string {
	switch val := v.(type) {
	case float64:
		return fmt.Sprintf("%d", int(val))
	case string:
		return val
	}
	return ""
}

// IsClosed reports whether the day has no opening hours.
func (d DayInfo) IsClosed() bool {
	return d.VenueOpen == "" || strings.EqualFold(d.VenueOpen, "closed")
}

// Weekday maps DayInt to a time.Weekday.
func (d DayInfo) Weekday() (time.Weekday, error) {
	if d.DayInt < 0 || d.DayInt > 6 {
		return 0, fmt.Errorf("day_int %d out of range", d.DayInt)
	}
	return time.Weekday((d.DayInt + 1) % 7), nil
}

// WeeklyHoursSpec converts per day opening hours into a weekly hours
// specification. Equal open and close times mean open all day. A close
// time before the open time continues into the next day.
func WeeklyHoursSpec(days []DayInfo) (string, error) {
	var week hours.Week
	for _, d := range days {
		if d.IsClosed() {
			continue
		}
		wd, err := d.Weekday()
		if err != nil {
			return "", err
		}
		open, err := hours.ParseTimeOfDay(d.VenueOpen)
		if err != nil {
			return "", fmt.Errorf("day %d: %w", d.DayInt, err)
		}
		closed, err := hours.ParseTimeOfDay(d.VenueClosed)
		if err != nil {
			return "", fmt.Errorf("day %d: %w", d.DayInt, err)
		}
		endOfDay := hours.TimeOfDay{Hour: 24}
		switch c := open.Compare(closed); {
		case c == 0:
			week.Add(wd, hours.NewDay(hours.Range{Start: hours.Midnight, Stop: endOfDay}))
		case c < 0:
			week.Add(wd, hours.NewDay(hours.Range{Start: open, Stop: closed}))
		default:
			if open.Before(endOfDay) {
				week.Add(wd, hours.NewDay(hours.Range{Start: open, Stop: endOfDay}))
			}
			if hours.Midnight.Before(closed) {
				week.Add((wd+1)%7, hours.NewDay(hours.Range{Start: hours.Midnight, Stop: closed}))
			}
		}
	}
	spec, err := hours.NewWeeklySpec(week)
	if err != nil {
		return "", fmt.Errorf("no open days: %w", err)
	}
	return spec.String(), nil
}
