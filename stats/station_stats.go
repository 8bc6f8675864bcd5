package stats

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/report"
	"bikeshare/domain/business/valuecounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/pipeline"
)

// RouteMeasurer returns the distance in kilometers between two stations
type RouteMeasurer interface {
	Distance(startStation string, endStation string) (float64, error)
}

// ComputeStationStats returns the most common start station, end station and route. Missing station
// names are not counted and a route needs both of them. When measurer is not nil it is used to get
// the length of the route. Returns nil for an empty table.
func ComputeStationStats(table *pipeline.Table, measurer RouteMeasurer) *report.StationStats {
	if table.Len() == 0 {
		return nil
	}

	startStations := valuecounter.NewValueCounter[string]()
	endStations := valuecounter.NewValueCounter[string]()
	routes := valuecounter.NewValueCounterFunc[trip.Route](trip.Route.Less)

	for _, tripData := range table.Trips() {
		if tripData.StartStation != "" {
			startStations.Add(tripData.StartStation)
		}
		if tripData.EndStation != "" {
			endStations.Add(tripData.EndStation)
		}
		if tripData.StartStation != "" && tripData.EndStation != "" {
			routes.Add(tripData.Route())
		}
	}

	startStation, _ := startStations.Mode()
	endStation, _ := endStations.Mode()
	route, hasRoute := routes.Mode()

	stationStats := &report.StationStats{
		MostCommonStartStation: startStation.Value,
		MostCommonEndStation:   endStation.Value,
		MostCommonRoute:        route.Value,
		RouteTrips:             route.Count,
	}

	if measurer != nil && hasRoute {
		distance, err := measurer.Distance(route.Value.Start, route.Value.End)
		if err != nil {
			log.Debugf("[component: stats][method: ComputeStationStats] cannot measure route %s: %s", route.Value, err.Error())
		} else {
			stationStats.RouteDistanceKm = &distance
		}
	}

	return stationStats
}

func renderStationStats(w io.Writer, stationStats *report.StationStats) {
	fmt.Fprintf(w, "Most common Start Station is `%s`\n", stationStats.MostCommonStartStation)
	fmt.Fprintf(w, "Most common End Station is `%s`\n", stationStats.MostCommonEndStation)
	fmt.Fprintf(w, "Most common Route is `%s` (%d trips)\n", stationStats.MostCommonRoute, stationStats.RouteTrips)
	if stationStats.RouteDistanceKm != nil {
		fmt.Fprintf(w, "Distance of the most common Route is `%.2f km`\n", *stationStats.RouteDistanceKm)
	}
}
