package trip

import (
	"time"
)

// Trip struct that contains a single bikeshare ride
// + City: city whose dataset contained the ride
// + StartTime: timestamp in which the trip begins
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds, only meaningful when HasDuration is true
// + UserType: user category, e.g. Subscriber or Customer. Empty if unknown
// + Gender: empty if unknown or if the city does not report it
// + BirthYear: only meaningful when HasBirthYear is true
// + Month, Weekday, Hour: fields derived from StartTime before filtering
type Trip struct {
	City         string    `json:"city"`
	StartTime    time.Time `json:"start_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"`
	HasDuration  bool      `json:"-"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	HasBirthYear bool      `json:"-"`
	Month        int       `json:"month"`
	Weekday      string    `json:"weekday"`
	Hour         int       `json:"hour"`
}

// WithDerivedFields returns a copy of the trip with Month, Weekday and Hour computed from StartTime
func (t Trip) WithDerivedFields() Trip {
	t.Month = int(t.StartTime.Month())
	t.Weekday = t.StartTime.Weekday().String()
	t.Hour = t.StartTime.Hour()
	return t
}

// Route returns the (start station, end station) pair of the trip
func (t Trip) Route() Route {
	return Route{Start: t.StartStation, End: t.EndStation}
}

// Route is a combination of start station and end station
type Route struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r Route) String() string {
	return r.Start + " - " + r.End
}

// Less orders routes by start station and then by end station
func (r Route) Less(other Route) bool {
	if r.Start != other.Start {
		return r.Start < other.Start
	}
	return r.End < other.End
}
