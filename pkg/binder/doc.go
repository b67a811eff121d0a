// Package binder decodes raw form records into Go structs.
//
// Records reach the validator in three shapes: url-encoded form values, JSON
// documents and YAML documents. Each binder fills the target struct without
// applying any business rules; missing fields keep their zero value, so an
// unchecked checkbox is simply false.
//
// # Available Binders
//
//   - Form(values, v): binds url.Values using `form` struct tags
//   - JSON(r, v): strict JSON decoding, unknown fields and trailing data rejected
//   - YAML(r, v): strict YAML decoding of a single document
//
// # Form Tags
//
//	type SignupForm struct {
//	    Name   string `form:"name"`
//	    Accept bool   `form:"acceptTerms"` // "on", "yes", "1", "true" bind as true
//	    Notes  string `form:"-"`           // skipped
//	}
//
// Fields without a form tag bind to the lowercased field name.
//
// # Error Handling
//
// Errors wrap ErrInvalidForm, ErrInvalidJSON or ErrInvalidYAML, so callers
// can tell decoding failures apart from validation failures with errors.Is.
package binder
