package stats

import (
	"fmt"
	"io"

	"bikeshare/domain/business/report"
	"bikeshare/domain/business/valuecounter"
	"bikeshare/domain/entities/selection"
	"bikeshare/pipeline"
)

// ComputeTimeStats returns the most common month, weekday and start hour. Returns nil for an empty table.
func ComputeTimeStats(table *pipeline.Table) *report.TimeStats {
	months := valuecounter.NewValueCounter[int]()
	weekdays := valuecounter.NewValueCounter[string]()
	hours := valuecounter.NewValueCounter[int]()

	for _, tripData := range table.Trips() {
		months.Add(tripData.Month)
		if tripData.Weekday != "" {
			weekdays.Add(tripData.Weekday)
		}
		hours.Add(tripData.Hour)
	}

	month, ok := months.Mode()
	if !ok {
		return nil
	}
	weekday, _ := weekdays.Mode()
	hour, _ := hours.Mode()

	return &report.TimeStats{
		MostCommonMonth:   selection.MonthName(month.Value),
		MostCommonWeekday: weekday.Value,
		MostCommonHour:    hour.Value,
	}
}

func renderTimeStats(w io.Writer, timeStats *report.TimeStats) {
	fmt.Fprintf(w, "Most common Month is `%s`\n", timeStats.MostCommonMonth)
	fmt.Fprintf(w, "Most common Week Day is `%s`\n", timeStats.MostCommonWeekday)
	fmt.Fprintf(w, "Most common Hour is `%d`\n", timeStats.MostCommonHour)
}
