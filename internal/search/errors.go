package search

import "errors"

var (
	// ErrInvalidCategory is returned for category values outside the known set.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrDuplicateID indicates two catalog items share an ID.
	ErrDuplicateID = errors.New("duplicate item id")
	// ErrMissingField indicates a required catalog field is empty.
	ErrMissingField = errors.New("missing required field")
)
