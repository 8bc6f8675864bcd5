package pipeline

import (
	"github.com/RoaringBitmap/roaring"
)

// Index keeps, for every derived month and weekday, the positions of the rows that have it
type Index struct {
	byMonth   map[int]*roaring.Bitmap
	byWeekday map[string]*roaring.Bitmap
}

// NewIndex indexes the rows of a derived table
func NewIndex(table *Table) *Index {
	index := &Index{
		byMonth:   make(map[int]*roaring.Bitmap),
		byWeekday: make(map[string]*roaring.Bitmap),
	}

	for idx, tripData := range table.trips {
		row := uint32(idx)
		getBitmap(index.byMonth, tripData.Month).Add(row)
		getBitmap(index.byWeekday, tripData.Weekday).Add(row)
	}
	return index
}

// Month returns the rows whose month number is month
func (i *Index) Month(month int) *roaring.Bitmap {
	if bitmap, ok := i.byMonth[month]; ok {
		return bitmap
	}
	return roaring.New()
}

// Weekday returns the rows whose weekday name is weekday, e.g. Monday
func (i *Index) Weekday(weekday string) *roaring.Bitmap {
	if bitmap, ok := i.byWeekday[weekday]; ok {
		return bitmap
	}
	return roaring.New()
}

func getBitmap[K comparable](bitmaps map[K]*roaring.Bitmap, key K) *roaring.Bitmap {
	bitmap, ok := bitmaps[key]
	if !ok {
		bitmap = roaring.New()
		bitmaps[key] = bitmap
	}
	return bitmap
}
