package pipeline

import "bikeshare/domain/entities/trip"

// Derive returns a new table where every trip has its month number, weekday name and hour of
// the day computed from the start time
func Derive(table *Table) *Table {
	trips := make([]trip.Trip, len(table.trips))
	for idx, tripData := range table.trips {
		trips[idx] = tripData.WithDerivedFields()
	}
	return table.withTrips(trips)
}
