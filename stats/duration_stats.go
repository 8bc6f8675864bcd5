package stats

import (
	"fmt"
	"io"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/report"
	"bikeshare/pipeline"
)

// ComputeDurationStats returns the total and mean trip duration. Trips without a duration are left
// out of both. Returns nil for an empty table.
func ComputeDurationStats(table *pipeline.Table) *report.DurationStats {
	if table.Len() == 0 {
		return nil
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range table.Trips() {
		if tripData.HasDuration {
			accumulator.UpdateAccumulator(tripData.Duration)
		}
	}

	return &report.DurationStats{
		TotalSeconds: accumulator.TotalDuration,
		MeanSeconds:  accumulator.GetAverageDuration(),
	}
}

func renderDurationStats(w io.Writer, durationStats *report.DurationStats) {
	fmt.Fprintf(w, "Total travel time: %s\n", FormatDuration(durationStats.TotalSeconds))
	fmt.Fprintf(w, "Mean travel time: %s\n", FormatDuration(durationStats.MeanSeconds))
}
