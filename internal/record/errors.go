package record

import "errors"

var (
	// ErrParse means the input as a whole could not be read or unmarshaled.
	// Fatal to the load; nothing is rendered and prior state is kept.
	ErrParse = errors.New("input unreadable")

	// ErrMalformedRecord means a single record's timestamps could not be
	// parsed. The record is skipped and the batch continues.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrEmptyInput means zero records survived normalization.
	ErrEmptyInput = errors.New("no records to display")
)
