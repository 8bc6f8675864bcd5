package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/report"
	"bikeshare/pipeline"
)

const (
	noTripsMessage = "No trips match the selected filters."
	separatorWidth = 40
)

// Reporter prints the four reports of a filtered table. Every report measures how long it took.
type Reporter struct {
	out      io.Writer
	measurer RouteMeasurer
	now      func() time.Time
}

// NewReporter returns a reporter that writes to out. measurer may be nil.
func NewReporter(out io.Writer, measurer RouteMeasurer) *Reporter {
	return &Reporter{
		out:      out,
		measurer: measurer,
		now:      time.Now,
	}
}

// Run prints the time, station, duration and user reports and stores their results in rep
func (r *Reporter) Run(table *pipeline.Table, rep *report.Report) {
	r.section("The Most Frequent Times of Travel", func() bool {
		rep.Time = ComputeTimeStats(table)
		if rep.Time == nil {
			return false
		}
		renderTimeStats(r.out, rep.Time)
		return true
	})

	r.section("The Most Popular Stations and Trip", func() bool {
		rep.Stations = ComputeStationStats(table, r.measurer)
		if rep.Stations == nil {
			return false
		}
		renderStationStats(r.out, rep.Stations)
		return true
	})

	r.section("Trip Duration", func() bool {
		rep.Duration = ComputeDurationStats(table)
		if rep.Duration == nil {
			return false
		}
		renderDurationStats(r.out, rep.Duration)
		return true
	})

	r.section("User Stats", func() bool {
		rep.Users = ComputeUserStats(table)
		if rep.Users == nil {
			return false
		}
		renderUserStats(r.out, rep.Users)
		return true
	})
}

// section prints the title of a report, runs it and prints its execution time. compute returns
// false when the table had no trips.
func (r *Reporter) section(title string, compute func() bool) {
	fmt.Fprintf(r.out, "\nCalculating %s...\n\n", title)
	startTime := r.now()

	if !compute() {
		fmt.Fprintln(r.out, noTripsMessage)
	}

	elapsed := r.now().Sub(startTime)
	log.Debugf("[component: stats][report: %s] took %s", title, elapsed)
	fmt.Fprintf(r.out, "\nThis took %v seconds.\n", elapsed.Seconds())
	fmt.Fprintln(r.out, Separator())
}

// Separator returns the line printed between reports
func Separator() string {
	return strings.Repeat("-", separatorWidth)
}
