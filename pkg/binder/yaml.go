package binder

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML decodes a single YAML document from r into v.
// Keys that do not map to a struct field are rejected, as are further documents.
func YAML(r io.Reader, v any) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrInvalidYAML)
		}
		return wrap(ErrInvalidYAML, err)
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected additional document", ErrInvalidYAML)
	}

	return nil
}
