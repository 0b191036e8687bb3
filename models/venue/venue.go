package venue

import "fmt"

// Venue is a catalog entry with its opening hours.
type Venue struct {
	VenueID      string  `json:"venue_id" yaml:"venue_id"`
	VenueName    string  `json:"venue_name" yaml:"venue_name"`
	VenueAddress string  `json:"venue_address" yaml:"venue_address"`
	VenueLat     float64 `json:"venue_lat" yaml:"venue_lat"`
	VenueLon     float64 `json:"venue_lng" yaml:"venue_lng"`
	VenueType    string  `json:"venue_type,omitempty" yaml:"venue_type,omitempty"`

	// Hours is an hours specification such as "MTWRF9-17|A10-14".
	Hours string `json:"hours,omitempty" yaml:"hours,omitempty"`

	// OpeningHours is the per day form some sources publish. It is only
	// used when Hours is empty.
	OpeningHours []DayInfo `json:"opening_hours,omitempty" yaml:"opening_hours,omitempty"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, address=%s, lat=%f, lon=%f, hours=%s)",
		v.VenueID, v.VenueName, v.VenueAddress, v.VenueLat, v.VenueLon, v.Hours)
}

// HoursSpec returns Hours, or the spec derived from OpeningHours.
func (v *Venue) HoursSpec() (string, error) {
	if v.Hours != "" {
		return v.Hours, nil
	}
	if len(v.OpeningHours) == 0 {
		return "", fmt.Errorf("venue %s has no hours", v.VenueID)
	}
	return WeeklyHoursSpec(v.OpeningHours)
}
