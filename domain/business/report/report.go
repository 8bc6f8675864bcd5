package report

import (
	"bikeshare/domain/business/valuecounter"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
)

const (
	reportType = "bikeshare-report"
	stage      = "explorer"
)

// Report contains the statistics computed in one run of the explorer. A nil section means that
// there was nothing to compute, e.g. no trip matched the filters.
type Report struct {
	Metadata entities.Metadata `json:"metadata"`
	RunID    string            `json:"run_id"`
	Filters  selection.Filters `json:"filters"`
	Trips    int               `json:"trips"`
	Time     *TimeStats        `json:"time,omitempty"`
	Stations *StationStats     `json:"stations,omitempty"`
	Duration *DurationStats    `json:"duration,omitempty"`
	Users    *UserStats        `json:"users,omitempty"`
}

func NewReport(runID string, filters selection.Filters, trips int) *Report {
	return &Report{
		Metadata: entities.NewMetadata(filters.Cities.Values, reportType, stage, runID),
		RunID:    runID,
		Filters:  filters,
		Trips:    trips,
	}
}

func (r *Report) GetRunID() string {
	return r.RunID
}

// TimeStats most frequent times of travel
type TimeStats struct {
	MostCommonMonth   string `json:"most_common_month"`
	MostCommonWeekday string `json:"most_common_weekday"`
	MostCommonHour    int    `json:"most_common_hour"`
}

// StationStats most popular stations and trip. RouteDistanceKm is only set when the station
// catalog knows both ends of the route.
type StationStats struct {
	MostCommonStartStation string     `json:"most_common_start_station"`
	MostCommonEndStation   string     `json:"most_common_end_station"`
	MostCommonRoute        trip.Route `json:"most_common_route"`
	RouteTrips             int        `json:"route_trips"`
	RouteDistanceKm        *float64   `json:"route_distance_km,omitempty"`
}

// DurationStats total and mean trip duration in seconds
type DurationStats struct {
	TotalSeconds float64 `json:"total_seconds"`
	MeanSeconds  float64 `json:"mean_seconds"`
}

// UserStats demographics of the riders. Genders is only meaningful when HasGender is true and
// BirthYear is nil when the data has no birth year column or no value in it.
type UserStats struct {
	UserTypes    []valuecounter.Entry[string] `json:"user_types"`
	HasGender    bool                         `json:"has_gender"`
	Genders      []valuecounter.Entry[string] `json:"genders,omitempty"`
	HasBirthYear bool                         `json:"has_birth_year"`
	BirthYear    *BirthYearStats              `json:"birth_year,omitempty"`
}

// BirthYearStats earliest, most recent and most common year of birth
type BirthYearStats struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}
