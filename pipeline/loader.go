package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

const (
	loaderComponent = "loader"
	missingValue    = "NaN"
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

func getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderComponent, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderComponent, method, message)
}

// Load reads the dataset of each city and concatenates them in the given order. Inside a city the
// rows keep the order of the file. Rows with an invalid start time are dropped.
func Load(datasets Datasets, cities []string) (*Table, error) {
	var trips []trip.Trip
	hasGender := false
	hasBirthYear := false

	for _, city := range cities {
		dataset, ok := datasets.Find(city)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCity, city)
		}

		filepath := datasets.GetFilePath(dataset)
		dataFile, err := os.Open(filepath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s: %s", ErrDatasetNotFound, city, filepath)
			}
			return nil, fmt.Errorf("%w: %s: %s", ErrUnreadableDataset, filepath, err.Error())
		}

		cityTable, err := ReadTrips(dataFile, city, datasets.Columns)
		_ = dataFile.Close()
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", filepath, err)
		}

		log.Debug(getLogMessage("Load", fmt.Sprintf("loaded %v trips of %s from %s", cityTable.Len(), city, filepath), nil))
		trips = append(trips, cityTable.Trips()...)
		hasGender = hasGender || cityTable.HasGender()
		hasBirthYear = hasBirthYear || cityTable.HasBirthYear()
	}

	return NewTable(trips, hasGender, hasBirthYear), nil
}

// ReadTrips parses the trips of a single city from a csv with header. A file with only the header
// is an empty table.
func ReadTrips(reader io.Reader, city string, columns Columns) (*Table, error) {
	records, err := csv.NewReader(reader).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreadableDataset, err.Error())
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrUnreadableDataset)
	}

	err = checkRequiredColumns(records[0], columns)
	if err != nil {
		return nil, err
	}

	if len(records) == 1 {
		log.Debug(getLogMessage("ReadTrips", fmt.Sprintf("[city: %s] dataset has no rows", city), nil))
		names := records[0]
		return NewTable(nil, utils.ContainsString(columns.Gender, names), utils.ContainsString(columns.BirthYear, names)), nil
	}

	df := dataframe.LoadRecords(
		records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreadableDataset, df.Err.Error())
	}

	names := df.Names()

	startTimes := df.Col(columns.StartTime).Records()
	startStations := df.Col(columns.StartStation).Records()
	endStations := df.Col(columns.EndStation).Records()
	durations := df.Col(columns.Duration).Records()
	userTypes := df.Col(columns.UserType).Records()

	hasGender := utils.ContainsString(columns.Gender, names)
	var genders []string
	if hasGender {
		genders = df.Col(columns.Gender).Records()
	}

	hasBirthYear := utils.ContainsString(columns.BirthYear, names)
	var birthYears []string
	if hasBirthYear {
		birthYears = df.Col(columns.BirthYear).Records()
	}

	trips := make([]trip.Trip, 0, df.Nrow())
	skipped := 0
	for row := 0; row < df.Nrow(); row++ {
		tripData, err := getTripData(startTimes[row], durations[row])
		if err != nil {
			if errors.Is(err, ErrInvalidTripData) {
				log.Debug(getLogMessage("ReadTrips", fmt.Sprintf("[city: %s] skipping row %v", city, row+1), err))
				skipped++
				continue
			}
			return nil, err
		}

		tripData.City = city
		tripData.StartStation = getValue(startStations[row])
		tripData.EndStation = getValue(endStations[row])
		tripData.UserType = getValue(userTypes[row])
		if hasGender {
			tripData.Gender = getValue(genders[row])
		}
		if hasBirthYear {
			tripData.BirthYear, tripData.HasBirthYear = getBirthYear(birthYears[row])
		}
		trips = append(trips, tripData)
	}

	if skipped > 0 {
		log.Warnf("[component: %s][city: %s] %v rows with invalid trip data were skipped", loaderComponent, city, skipped)
	}

	return NewTable(trips, hasGender, hasBirthYear), nil
}

func checkRequiredColumns(names []string, columns Columns) error {
	required := []string{columns.StartTime, columns.StartStation, columns.EndStation, columns.Duration, columns.UserType}
	for _, column := range required {
		if !utils.ContainsString(column, names) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
	}
	return nil
}

func getTripData(startTimeStr string, durationStr string) (trip.Trip, error) {
	startTime, err := parseTimestamp(getValue(startTimeStr))
	if err != nil {
		return trip.Trip{}, fmt.Errorf("%s %q: %w", ErrInvalidDate, startTimeStr, ErrInvalidTripData)
	}

	duration, hasDuration := getDuration(durationStr)
	return trip.Trip{
		StartTime:   startTime,
		Duration:    duration,
		HasDuration: hasDuration,
	}, nil
}

// getDuration parses a duration in seconds. Missing or invalid values return false and the trip
// is kept without a duration.
func getDuration(value string) (float64, bool) {
	value = getValue(value)
	if value == "" {
		return 0, false
	}

	duration, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Debugf("[component: %s] invalid trip duration: %v", loaderComponent, value)
		return 0, false
	}
	return duration, true
}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		timestamp, err := time.Parse(layout, value)
		if err == nil {
			return timestamp, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// getBirthYear parses values such as 1992 or 1992.0. Missing or invalid values return false.
func getBirthYear(value string) (int, bool) {
	value = getValue(value)
	if value == "" {
		return 0, false
	}

	year, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Debugf("[component: %s] invalid birth year: %v", loaderComponent, value)
		return 0, false
	}
	return int(year), true
}

func getValue(value string) string {
	value = strings.TrimSpace(value)
	if value == missingValue {
		return ""
	}
	return value
}
