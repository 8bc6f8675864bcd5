package pipeline

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// Filter keeps the rows of a derived table whose month is one of months and whose weekday is one
// of days. A wildcard selection does not exclude any row.
//
// Each criterion is applied value by value and the partial results are concatenated in the order
// of the selection, so rows are grouped by the selected value and a value selected twice yields
// its rows twice.
func Filter(table *Table, months selection.Selection, days selection.Selection) (*Table, error) {
	index := NewIndex(table)
	rows := make([]uint32, table.Len())
	for idx := range rows {
		rows[idx] = uint32(idx)
	}

	if !months.All {
		bitmaps := make([]*roaring.Bitmap, 0, len(months.Values))
		for _, month := range months.Values {
			monthNumber, ok := selection.MonthNumber(month)
			if !ok {
				return nil, fmt.Errorf("%w: month %s", ErrInvalidSelection, month)
			}
			bitmaps = append(bitmaps, index.Month(monthNumber))
		}
		rows = concatMatchingRows(rows, bitmaps)
	}

	if !days.All {
		bitmaps := make([]*roaring.Bitmap, 0, len(days.Values))
		for _, day := range days.Values {
			if !utils.ContainsString(utils.NormalizeToken(day), selection.Weekdays) {
				return nil, fmt.Errorf("%w: day %s", ErrInvalidSelection, day)
			}
			bitmaps = append(bitmaps, index.Weekday(selection.Title(day)))
		}
		rows = concatMatchingRows(rows, bitmaps)
	}

	trips := make([]trip.Trip, 0, len(rows))
	for _, row := range rows {
		trips = append(trips, table.trips[row])
	}
	return table.withTrips(trips), nil
}

func concatMatchingRows(rows []uint32, bitmaps []*roaring.Bitmap) []uint32 {
	var matchingRows []uint32
	for _, bitmap := range bitmaps {
		for _, row := range rows {
			if bitmap.Contains(row) {
				matchingRows = append(matchingRows, row)
			}
		}
	}
	return matchingRows
}
