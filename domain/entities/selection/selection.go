package selection

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Months that can be selected, in calendar order
	Months = []string{"january", "february", "march", "april", "may", "june"}
	// Weekdays that can be selected, starting on monday
	Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	titleCaser = cases.Title(language.English)
)

// Selection is the validated answer to one prompt. All is true when the user typed the wildcard,
// in which case Values holds the whole enumeration.
type Selection struct {
	Values []string `json:"values"`
	All    bool     `json:"all"`
}

func NewSelection(values []string, all bool) Selection {
	return Selection{
		Values: values,
		All:    all,
	}
}

// Wildcard returns a selection with every option
func Wildcard(options []string) Selection {
	values := make([]string, len(options))
	copy(values, options)
	return NewSelection(values, true)
}

// MonthNumber returns the 1-based position of monthName in Months
func MonthNumber(monthName string) (int, bool) {
	for idx, month := range Months {
		if month == monthName {
			return idx + 1, true
		}
	}
	return 0, false
}

// MonthName returns the capitalized name of a month number, e.g. 1 -> January.
// Every calendar month can be named even if only the first six are selectable.
func MonthName(monthNumber int) string {
	if monthNumber < 1 || monthNumber > 12 {
		return ""
	}
	return calendarMonths[monthNumber-1]
}

// Title returns value in title case, e.g. monday -> Monday or new york city -> New York City
func Title(value string) string {
	return titleCaser.String(value)
}

var calendarMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Filters groups the three answers needed to run the reports
type Filters struct {
	Cities Selection `json:"cities"`
	Months Selection `json:"months"`
	Days   Selection `json:"days"`
}
