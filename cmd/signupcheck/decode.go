package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/signup/pkg/binder"
	"github.com/dmitrymomot/signup/pkg/registration"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatForm = "form"
)

var errNoRecords = errors.New("no records in input")

func decodeRecords(format string, data []byte) ([]registration.FormInput, error) {
	var (
		records []registration.FormInput
		err     error
	)

	switch format {
	case formatJSON:
		records, err = decodeJSON(data)
	case formatYAML:
		records, err = decodeYAML(data)
	case formatForm:
		records, err = decodeForm(data)
	default:
		return nil, fmt.Errorf("unknown format %q: must be %s, %s or %s", format, formatJSON, formatYAML, formatForm)
	}
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, errNoRecords
	}
	return records, nil
}

func decodeJSON(data []byte) ([]registration.FormInput, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var list []registration.FormInput
		if err := binder.JSON(bytes.NewReader(trimmed), &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var single registration.FormInput
	if err := binder.JSON(bytes.NewReader(trimmed), &single); err != nil {
		return nil, err
	}
	return []registration.FormInput{single}, nil
}

func decodeYAML(data []byte) ([]registration.FormInput, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", binder.ErrInvalidYAML, err)
	}

	if len(doc.Content) == 0 {
		return nil, nil
	}
	if doc.Content[0].Kind == yaml.SequenceNode {
		var list []registration.FormInput
		if err := binder.YAML(bytes.NewReader(data), &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var single registration.FormInput
	if err := binder.YAML(bytes.NewReader(data), &single); err != nil {
		return nil, err
	}
	return []registration.FormInput{single}, nil
}

// decodeForm reads one url-encoded record per line. Blank lines and lines
// starting with # are skipped.
func decodeForm(data []byte) ([]registration.FormInput, error) {
	var records []registration.FormInput

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var in registration.FormInput
		if err := binder.FormString(text, &in); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", binder.ErrInvalidForm, err)
	}

	return records, nil
}
