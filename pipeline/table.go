package pipeline

import "bikeshare/domain/entities/trip"

// Table is the in-memory collection of trips used by the reports. A Table is never modified once
// built: every stage of the pipeline returns a new one.
type Table struct {
	trips        []trip.Trip
	hasGender    bool
	hasBirthYear bool
}

// NewTable builds a table. hasGender and hasBirthYear tell whether the optional columns appeared in
// at least one of the loaded datasets.
func NewTable(trips []trip.Trip, hasGender bool, hasBirthYear bool) *Table {
	return &Table{
		trips:        trips,
		hasGender:    hasGender,
		hasBirthYear: hasBirthYear,
	}
}

// Trips returns the rows of the table. The slice is shared and must not be modified.
func (t *Table) Trips() []trip.Trip {
	return t.trips
}

func (t *Table) Len() int {
	return len(t.trips)
}

func (t *Table) HasGender() bool {
	return t.hasGender
}

func (t *Table) HasBirthYear() bool {
	return t.hasBirthYear
}

// ForCity returns the rows that belong to city, in table order
func (t *Table) ForCity(city string) *Table {
	var trips []trip.Trip
	for _, tripData := range t.trips {
		if tripData.City == city {
			trips = append(trips, tripData)
		}
	}
	return t.withTrips(trips)
}

func (t *Table) withTrips(trips []trip.Trip) *Table {
	return NewTable(trips, t.hasGender, t.hasBirthYear)
}
