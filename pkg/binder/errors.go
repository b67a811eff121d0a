package binder

import "errors"

// Common binding errors
var (
	ErrInvalidForm = errors.New("failed to parse form data")
	ErrInvalidJSON = errors.New("failed to parse JSON data")
	ErrInvalidYAML = errors.New("failed to parse YAML data")
)
