package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSON decodes a single JSON value from r into v.
// Unknown object keys and data after the value are rejected.
func JSON(r io.Reader, v any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return wrap(ErrInvalidJSON, err)
	}

	// Ensure entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}

	return nil
}

func wrap(sentinel, err error) error {
	return fmt.Errorf("%w: %v", sentinel, err)
}
