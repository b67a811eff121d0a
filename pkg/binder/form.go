package binder

import (
	"net/url"
)

// Form binds url-encoded form values into v, which must be a pointer to a struct.
//
// Example:
//
//	values, _ := url.ParseQuery("name=Alice&acceptTerms=on")
//	var in registration.FormInput
//	if err := binder.Form(values, &in); err != nil {
//		// handle malformed input
//	}
func Form(values url.Values, v any) error {
	return bindToStruct(v, "form", values, ErrInvalidForm)
}

// FormString parses a url-encoded string and binds it into v.
func FormString(raw string, v any) error {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return wrap(ErrInvalidForm, err)
	}
	return Form(values, v)
}
