package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/selection"
	"bikeshare/explorer/config"
	"bikeshare/pipeline"
	"bikeshare/prompt"
	"bikeshare/stations"
)

const (
	chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Canal St & Adams St,Clinton St & Madison St,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Customer,Male,1981.0
`
	washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
`
	chicagoStationsCSV = `name,latitude,longitude
Canal St & Adams St,41.879255,-87.639904
Clinton St & Madison St,41.882242,-87.641066
`
)

type fakePublisher struct {
	reports []*report.Report
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, rep *report.Report) error {
	f.reports = append(f.reports, rep)
	return f.err
}

func (f *fakePublisher) Close() error {
	return nil
}

func testExplorerConfig(t *testing.T) *config.ExplorerConfig {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte(chicagoCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "washington.csv"), []byte(washingtonCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chicago_stations.csv"), []byte(chicagoStationsCSV), 0o644))

	return &config.ExplorerConfig{
		LogLevel: "warn",
		Datasets: pipeline.Datasets{
			DataDir: dir,
			Cities: []pipeline.Dataset{
				{City: "chicago", File: "chicago.csv", StationsFile: "chicago_stations.csv"},
				{City: "new york city", File: "new_york_city.csv"},
				{City: "washington", File: "washington.csv"},
			},
			Columns: pipeline.DefaultColumns(),
		},
		StationsColumns: stations.DefaultColumns(),
	}
}

func runExplorer(t *testing.T, input string, publisher *fakePublisher) (string, error) {
	t.Helper()
	var out bytes.Buffer
	explorer := NewExplorer(testExplorerConfig(t), strings.NewReader(input), &out, publisher)
	err := explorer.Run(context.Background())
	return out.String(), err
}

func TestExplorerSingleCycle(t *testing.T) {
	publisher := &fakePublisher{}
	output, err := runExplorer(t, "chicago\njune\nall\nno\n", publisher)
	require.NoError(t, err)

	assert.Contains(t, output, "Hello! Let's explore some US bikeshare data!")
	assert.Contains(t, output, "Filter by cities: ['chicago']")
	assert.Contains(t, output, "Filter by months: ['june']")
	assert.Contains(t, output, "Filter by days: ['monday', 'tuesday', 'wednesday', 'thursday', 'friday', 'saturday', 'sunday']")
	assert.Contains(t, output, "Most common Month is `June`")
	assert.Contains(t, output, "Most common Week Day is `Friday`")
	assert.Contains(t, output, "Most common Hour is `15`")
	assert.Contains(t, output, "Most common Route is `Canal St & Adams St - Clinton St & Madison St` (1 trips)")
	assert.Contains(t, output, "Distance of the most common Route is `0.35 km`")
	assert.Contains(t, output, "Total travel time: 0:05:21")
	assert.Contains(t, output, "Would you like to restart? Enter yes or no.")

	require.Len(t, publisher.reports, 1)
	assert.Equal(t, 1, publisher.reports[0].Trips)
	assert.NotEmpty(t, publisher.reports[0].GetRunID())
}

func TestExplorerRestartsOnlyOnYes(t *testing.T) {
	publisher := &fakePublisher{}
	input := "chicago\nall\nall\nYES\nwashington\nall\nall\n yes\n"
	output, err := runExplorer(t, input, publisher)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(output, "Hello! Let's explore some US bikeshare data!"))
	require.Len(t, publisher.reports, 2)
	assert.Equal(t, 3, publisher.reports[0].Trips)
	assert.Equal(t, 1, publisher.reports[1].Trips)
	assert.NotEqual(t, publisher.reports[0].GetRunID(), publisher.reports[1].GetRunID())
	assert.Contains(t, output, "Gender stats cannot be calculated because Gender does not appear in the dataframe")
}

func TestExplorerExitCommand(t *testing.T) {
	publisher := &fakePublisher{}
	output, err := runExplorer(t, "chicago\nEXIT\n", publisher)

	assert.ErrorIs(t, err, prompt.ErrExitRequested)
	assert.NotContains(t, output, "Loading data")
	assert.Empty(t, publisher.reports)
}

func TestExplorerMissingDatasetIsFatal(t *testing.T) {
	publisher := &fakePublisher{}
	_, err := runExplorer(t, "new york city\nall\nall\n", publisher)

	assert.ErrorIs(t, err, pipeline.ErrDatasetNotFound)
	assert.Empty(t, publisher.reports)
}

func TestExplorerNoMatchingTrips(t *testing.T) {
	publisher := &fakePublisher{}
	output, err := runExplorer(t, "washington\njanuary\nall\nno\n", publisher)
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(output, "No trips match the selected filters."))
	require.Len(t, publisher.reports, 1)
	assert.Equal(t, 0, publisher.reports[0].Trips)
}

func TestExplorerPublishErrorIsNotFatal(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("broker down")}
	_, err := runExplorer(t, "chicago\nall\nall\nno\n", publisher)

	require.NoError(t, err)
	assert.Len(t, publisher.reports, 1)
}

func TestExplorerEndOfInputAtRestartFinishes(t *testing.T) {
	publisher := &fakePublisher{}
	_, err := runExplorer(t, "chicago\nall\nall\n", publisher)

	require.NoError(t, err)
	assert.Len(t, publisher.reports, 1)
}

func TestExplorerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	explorer := NewExplorer(testExplorerConfig(t), strings.NewReader("chicago\nall\nall\nno\n"), &out, &fakePublisher{})
	err := explorer.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestFormatSelection(t *testing.T) {
	assert.Equal(t, "['chicago', 'washington']", formatSelection(selection.NewSelection([]string{"chicago", "washington"}, false)))
	assert.Equal(t, "[]", formatSelection(selection.NewSelection(nil, false)))
}
