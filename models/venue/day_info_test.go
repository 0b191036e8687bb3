package venue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayInfo_UnmarshalJSON(t *testing.T) {
	// Arrange
	data := `[
		{"day_int": 0, "day_text": "Monday", "venue_open": 8, "venue_closed": 17},
		{"day_int": 1, "day_text": "Tuesday", "venue_open": "830", "venue_closed": "1730"},
		{"day_int": 6, "day_text": "Sunday", "venue_open": "Closed", "venue_closed": "Closed"},
		{"day_int": 5, "day_text": "Saturday"}
	]`

	// Act
	var days []DayInfo
	err := json.Unmarshal([]byte(data), &days)

	// Assert
	require.NoError(t, err)
	require.Len(t, days, 4)
	assert.Equal(t, "8", days[0].VenueOpen)
	assert.Equal(t, "17", days[0].VenueClosed)
	assert.Equal(t, "830", days[1].VenueOpen)
	assert.Equal(t, "Tuesday", days[1].DayText)
	assert.True(t, days[2].IsClosed())
	assert.True(t, days[3].IsClosed())
	assert.False(t, days[0].IsClosed())
}

func TestDayInfo_Weekday(t *testing.T) {
	wd, err := DayInfo{DayInt: 0}.Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)

	wd, err = DayInfo{DayInt: 6}.Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)

	_, err = DayInfo{DayInt: 7}.Weekday()
	assert.Error(t, err)
}

func TestWeeklyHoursSpec(t *testing.T) {
	tests := []struct {
		name string
		days []DayInfo
		want string
	}{
		{
			name: "weekdays",
			days: []DayInfo{
				{DayInt: 0, VenueOpen: "9", VenueClosed: "17"},
				{DayInt: 1, VenueOpen: "9", VenueClosed: "17"},
				{DayInt: 2, VenueOpen: "9", VenueClosed: "17"},
				{DayInt: 5, VenueOpen: "Closed"},
			},
			want: "MTW9-17",
		},
		{
			name: "crosses midnight",
			days: []DayInfo{
				{DayInt: 4, VenueOpen: "20", VenueClosed: "2"},
				{DayInt: 5, VenueOpen: "20", VenueClosed: "2"},
			},
			want: "F20-24|A0-2&20-24|U0-2",
		},
		{
			name: "open all day",
			days: []DayInfo{{DayInt: 6, VenueOpen: "0", VenueClosed: "0"}},
			want: "U0-24",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := WeeklyHoursSpec(test.days)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestWeeklyHoursSpec_Errors(t *testing.T) {
	_, err := WeeklyHoursSpec([]DayInfo{{DayInt: 0, VenueOpen: "Closed"}})
	assert.Error(t, err)

	_, err = WeeklyHoursSpec([]DayInfo{{DayInt: 0, VenueOpen: "9am", VenueClosed: "5"}})
	assert.Error(t, err)

	_, err = WeeklyHoursSpec([]DayInfo{{DayInt: 9, VenueOpen: "9", VenueClosed: "17"}})
	assert.Error(t, err)
}

func TestVenue_HoursSpec(t *testing.T) {
	v := Venue{VenueID: "v1", Hours: "8-12"}
	s, err := v.HoursSpec()
	require.NoError(t, err)
	assert.Equal(t, "8-12", s)

	v = Venue{VenueID: "v2", OpeningHours: []DayInfo{{DayInt: 0, VenueOpen: "8", VenueClosed: "12"}}}
	s, err = v.HoursSpec()
	require.NoError(t, err)
	assert.Equal(t, "M8-12", s)

	v = Venue{VenueID: "v3"}
	_, err = v.HoursSpec()
	assert.Error(t, err)
}
