package pipeline

import (
	"path/filepath"

	"bikeshare/utils"
)

// Columns contains the header name of each field to analyze
type Columns struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	Duration     string `yaml:"trip_duration" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender" validate:"required"`
	BirthYear    string `yaml:"birth_year" validate:"required"`
}

// DefaultColumns returns the headers used by the public bikeshare datasets
func DefaultColumns() Columns {
	return Columns{
		StartTime:    "Start Time",
		StartStation: "Start Station",
		EndStation:   "End Station",
		Duration:     "Trip Duration",
		UserType:     "User Type",
		Gender:       "Gender",
		BirthYear:    "Birth Year",
	}
}

// Dataset maps a city with the file that contains its trips
// + City: name the user types to select the city, stored lowercase
// + File: trips csv, relative to the data directory unless absolute
// + StationsFile: optional csv with station coordinates
type Dataset struct {
	City         string `yaml:"name" validate:"required"`
	File         string `yaml:"file" validate:"required"`
	StationsFile string `yaml:"stations_file"`
}

// Datasets is the static table of supported cities. The order of Cities is the order used when
// the user selects all of them.
type Datasets struct {
	DataDir string    `yaml:"data_dir"`
	Cities  []Dataset `yaml:"cities" validate:"required,min=1,dive"`
	Columns Columns   `yaml:"columns"`
}

// CityNames returns the name of every supported city
func (d Datasets) CityNames() []string {
	names := make([]string, 0, len(d.Cities))
	for _, dataset := range d.Cities {
		names = append(names, dataset.City)
	}
	return names
}

// Find returns the dataset of a city
func (d Datasets) Find(city string) (Dataset, bool) {
	for _, dataset := range d.Cities {
		if dataset.City == city {
			return dataset, true
		}
	}
	return Dataset{}, false
}

// Normalize lowercases city names so that they can be matched against user input
func (d Datasets) Normalize() Datasets {
	cities := make([]Dataset, len(d.Cities))
	for idx, dataset := range d.Cities {
		dataset.City = utils.NormalizeToken(dataset.City)
		cities[idx] = dataset
	}
	d.Cities = cities
	return d
}

// GetFilePath returns the path to the trips .csv file of the dataset
func (d Datasets) GetFilePath(dataset Dataset) string {
	return d.resolve(dataset.File)
}

// GetStationsFilePath returns the path to the stations .csv file of the dataset, empty if it has none
func (d Datasets) GetStationsFilePath(dataset Dataset) string {
	if dataset.StationsFile == "" {
		return ""
	}
	return d.resolve(dataset.StationsFile)
}

func (d Datasets) resolve(filename string) string {
	if filepath.IsAbs(filename) || d.DataDir == "" {
		return filename
	}
	return filepath.Join(d.DataDir, filename)
}

// WithDefaults fills every empty header name with the one from DefaultColumns
func (c Columns) WithDefaults() Columns {
	defaults := DefaultColumns()
	c.StartTime = withDefault(c.StartTime, defaults.StartTime)
	c.StartStation = withDefault(c.StartStation, defaults.StartStation)
	c.EndStation = withDefault(c.EndStation, defaults.EndStation)
	c.Duration = withDefault(c.Duration, defaults.Duration)
	c.UserType = withDefault(c.UserType, defaults.UserType)
	c.Gender = withDefault(c.Gender, defaults.Gender)
	c.BirthYear = withDefault(c.BirthYear, defaults.BirthYear)
	return c
}

func withDefault(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
