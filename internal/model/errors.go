package model

import "errors"

var (
	// ErrNilSide is returned when a card is built from a missing side.
	ErrNilSide = errors.New("card side must not be nil")

	// ErrEmptySide is returned when a side is built without any concept.
	ErrEmptySide = errors.New("side must have at least one concept")

	// ErrInvalidCardPair is returned when a card is added from anything but a (front, back) pair.
	ErrInvalidCardPair = errors.New("card must be a (front, back) pair")

	// ErrInvalidCSVHeader is returned when a CSV file has no front or back column.
	ErrInvalidCSVHeader = errors.New("csv header must contain front and back columns")
)
