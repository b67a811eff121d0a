package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidDate is returned by ParseDate when no supported layout matches.
	ErrInvalidDate = errors.New("invalid date")
)
