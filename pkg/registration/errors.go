package registration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/signup/pkg/validator"
)

// FieldErrors maps a field name to the messages describing why its value
// was rejected. It's based on url.Values to reuse the multi-value helpers.
type FieldErrors url.Values

// ErrorMap converts a Validate error into FieldErrors.
// It returns nil when err carries no validation errors.
func ErrorMap(err error) FieldErrors {
	verrs := validator.ExtractValidationErrors(err)
	if verrs.IsEmpty() {
		return nil
	}

	fe := make(FieldErrors, len(verrs))
	for _, e := range verrs {
		fe.Add(e.Field, e.Message)
	}
	return fe
}

// Error implements the error interface.
// Returns a human-readable message listing fields in FieldOrder.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], " ")))
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// Add appends a message for a field.
func (e FieldErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for a field.
func (e FieldErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}

// Fields returns the failing fields, known fields in FieldOrder first,
// any others sorted after them.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, f := range FieldOrder {
		if e.Has(f) {
			fields = append(fields, f)
		}
	}

	var extra []string
	for f, msgs := range e {
		if len(msgs) > 0 && !slices.Contains(FieldOrder, f) {
			extra = append(extra, f)
		}
	}
	slices.Sort(extra)

	return append(fields, extra...)
}

// MarshalJSON encodes the map as a JSON object with keys in Fields order.
func (e FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range e.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e[field])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
