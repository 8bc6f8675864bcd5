package station

import "github.com/umahmood/haversine"

// StationData struct that contains the location of a station
type StationData struct {
	City      string  `json:"city"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (sd StationData) GetCoordinates() haversine.Coord {
	return haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
}
