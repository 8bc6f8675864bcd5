package pipeline

import "errors"

var (
	ErrDatasetNotFound     = errors.New("dataset not found")
	ErrUnreadableDataset   = errors.New("unreadable dataset")
	ErrUnknownCity         = errors.New("unknown city")
	ErrMissingColumn       = errors.New("missing column")
	ErrInvalidSelection    = errors.New("invalid selection")
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrInvalidDate         = errors.New("invalid date")
)
