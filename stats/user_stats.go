package stats

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"bikeshare/domain/business/report"
	"bikeshare/domain/business/valuecounter"
	"bikeshare/pipeline"
)

const (
	genderMissingMessage       = "Gender stats cannot be calculated because Gender does not appear in the dataframe"
	birthYearMissingMessage    = "Birth year stats cannot be calculated because Birth Year does not appear in the dataframe"
	birthYearNoValuesMessage   = "Birth year stats cannot be calculated because Birth Year has no values for the selected trips"
	valueCountsColumnSeparator = 4
)

// ComputeUserStats returns the count of each user type and gender and the birth year stats.
// Missing values are not counted. Returns nil for an empty table.
func ComputeUserStats(table *pipeline.Table) *report.UserStats {
	if table.Len() == 0 {
		return nil
	}

	userTypes := valuecounter.NewValueCounter[string]()
	genders := valuecounter.NewValueCounter[string]()
	birthYears := valuecounter.NewValueCounter[int]()
	var birthYearStats *report.BirthYearStats

	for _, tripData := range table.Trips() {
		if tripData.UserType != "" {
			userTypes.Add(tripData.UserType)
		}
		if table.HasGender() && tripData.Gender != "" {
			genders.Add(tripData.Gender)
		}
		if !table.HasBirthYear() || !tripData.HasBirthYear {
			continue
		}

		birthYears.Add(tripData.BirthYear)
		if birthYearStats == nil {
			birthYearStats = &report.BirthYearStats{Earliest: tripData.BirthYear, MostRecent: tripData.BirthYear}
		}
		birthYearStats.Earliest = min(birthYearStats.Earliest, tripData.BirthYear)
		birthYearStats.MostRecent = max(birthYearStats.MostRecent, tripData.BirthYear)
	}

	userStats := &report.UserStats{
		UserTypes:    userTypes.Counts(),
		HasGender:    table.HasGender(),
		HasBirthYear: table.HasBirthYear(),
	}
	if table.HasGender() {
		userStats.Genders = genders.Counts()
	}
	if birthYearStats != nil {
		mostCommon, _ := birthYears.Mode()
		birthYearStats.MostCommon = mostCommon.Value
		userStats.BirthYear = birthYearStats
	}

	return userStats
}

func renderUserStats(w io.Writer, userStats *report.UserStats) {
	fmt.Fprintf(w, "User Type stats:\n%s\n", formatValueCounts(userStats.UserTypes))

	if userStats.HasGender {
		fmt.Fprintf(w, "User Gender stats:\n%s\n", formatValueCounts(userStats.Genders))
	} else {
		fmt.Fprintln(w, genderMissingMessage)
	}

	switch {
	case userStats.BirthYear != nil:
		fmt.Fprintf(w, "The Earliest year of birth: %d\n", userStats.BirthYear.Earliest)
		fmt.Fprintf(w, "Most Recent year of birth: %d\n", userStats.BirthYear.MostRecent)
		fmt.Fprintf(w, "Most Common year of birth: %d\n", userStats.BirthYear.MostCommon)
	case userStats.HasBirthYear:
		fmt.Fprintln(w, birthYearNoValuesMessage)
	default:
		fmt.Fprintln(w, birthYearMissingMessage)
	}
}

// formatValueCounts renders one value per line with its count right aligned, e.g.
//
//	Subscriber    238889
//	Customer       61110
func formatValueCounts(entries []valuecounter.Entry[string]) string {
	nameWidth := 0
	countWidth := 0
	for _, entry := range entries {
		nameWidth = max(nameWidth, runewidth.StringWidth(entry.Value))
		countWidth = max(countWidth, len(fmt.Sprint(entry.Count)))
	}

	formatted := ""
	for _, entry := range entries {
		name := runewidth.FillRight(entry.Value, nameWidth+valueCountsColumnSeparator)
		formatted += fmt.Sprintf("%s%*d\n", name, countWidth, entry.Count)
	}
	return formatted
}
