package stations

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
	"github.com/umahmood/haversine"

	"bikeshare/domain/entities/station"
	"bikeshare/utils"
)

var (
	ErrStationNotFound = errors.New("station not found")
	ErrInvalidCatalog  = errors.New("invalid station catalog")
)

// Columns contains the header name of each field of a stations csv
type Columns struct {
	Name      string `yaml:"name" validate:"required"`
	Latitude  string `yaml:"latitude" validate:"required"`
	Longitude string `yaml:"longitude" validate:"required"`
}

func DefaultColumns() Columns {
	return Columns{
		Name:      "name",
		Latitude:  "latitude",
		Longitude: "longitude",
	}
}

// WithDefaults fills every empty header name with the one from DefaultColumns
func (c Columns) WithDefaults() Columns {
	defaults := DefaultColumns()
	if c.Name == "" {
		c.Name = defaults.Name
	}
	if c.Latitude == "" {
		c.Latitude = defaults.Latitude
	}
	if c.Longitude == "" {
		c.Longitude = defaults.Longitude
	}
	return c
}

// Catalog knows the location of stations by name. When two cities have a station with the same
// name the first one added is kept.
type Catalog struct {
	stations       map[string]station.StationData
	distancesCache map[string]float64
}

func NewCatalog() *Catalog {
	return &Catalog{
		stations:       make(map[string]station.StationData),
		distancesCache: make(map[string]float64),
	}
}

// Add adds a station to the catalog
func (c *Catalog) Add(stationData station.StationData) {
	if _, ok := c.stations[stationData.Name]; ok {
		return
	}
	c.stations[stationData.Name] = stationData
}

func (c *Catalog) Len() int {
	return len(c.stations)
}

// LoadFile adds the stations of a csv file to the catalog
func (c *Catalog) LoadFile(filepath string, city string, columns Columns) error {
	stationsFile, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", filepath, err)
	}
	defer stationsFile.Close()

	return c.Read(stationsFile, city, columns)
}

// Read adds the stations of a csv with header to the catalog. Rows with invalid coordinates are skipped.
func (c *Catalog) Read(reader io.Reader, city string, columns Columns) error {
	df := dataframe.ReadCSV(
		reader,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, df.Err.Error())
	}

	names := df.Names()
	for _, column := range []string{columns.Name, columns.Latitude, columns.Longitude} {
		if !utils.ContainsString(column, names) {
			return fmt.Errorf("%w: missing column %s", ErrInvalidCatalog, column)
		}
	}

	stationNames := df.Col(columns.Name).Records()
	latitudes := df.Col(columns.Latitude).Records()
	longitudes := df.Col(columns.Longitude).Records()

	for row := 0; row < df.Nrow(); row++ {
		latitude, errLat := strconv.ParseFloat(strings.TrimSpace(latitudes[row]), 64)
		longitude, errLong := strconv.ParseFloat(strings.TrimSpace(longitudes[row]), 64)
		if errLat != nil || errLong != nil {
			log.Debugf("[component: stations][city: %s] invalid coordinates for station %s", city, stationNames[row])
			continue
		}

		c.Add(station.StationData{
			City:      city,
			Name:      strings.TrimSpace(stationNames[row]),
			Latitude:  latitude,
			Longitude: longitude,
		})
	}
	return nil
}

// Distance returns the distance in kilometers between two stations
func (c *Catalog) Distance(startStation string, endStation string) (float64, error) {
	cacheKey := startStation + "|" + endStation
	if distance, ok := c.distancesCache[cacheKey]; ok {
		return distance, nil
	}

	start, ok := c.stations[startStation]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrStationNotFound, startStation)
	}

	end, ok := c.stations[endStation]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrStationNotFound, endStation)
	}

	_, km := haversine.Distance(start.GetCoordinates(), end.GetCoordinates())
	c.distancesCache[cacheKey] = km
	return km, nil
}
