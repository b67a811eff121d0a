package registration

import "encoding/json"

// Field names as they appear in form submissions and error maps.
const (
	FieldName          = "name"
	FieldBirthdate     = "birthdate"
	FieldAcceptTerms   = "acceptTerms"
	FieldFavoriteColor = "favoriteColor"
)

// FieldOrder is the order rules are evaluated and errors are reported in.
var FieldOrder = []string{FieldName, FieldBirthdate, FieldAcceptTerms, FieldFavoriteColor}

// FormInput is the raw form record, before validation.
type FormInput struct {
	Name          string `json:"name" yaml:"name" form:"name"`
	Birthdate     string `json:"birthdate" yaml:"birthdate" form:"birthdate"`
	AcceptTerms   bool   `json:"acceptTerms" yaml:"acceptTerms" form:"acceptTerms"`
	FavoriteColor string `json:"favoriteColor" yaml:"favoriteColor" form:"favoriteColor"`
}

// FormValues is a form record that passed validation.
// Values are only produced by Validator.Validate.
type FormValues struct {
	name          string
	birthdate     string
	acceptTerms   bool
	favoriteColor string
}

func (v FormValues) Name() string          { return v.name }
func (v FormValues) Birthdate() string     { return v.birthdate }
func (v FormValues) AcceptTerms() bool     { return v.acceptTerms }
func (v FormValues) FavoriteColor() string { return v.favoriteColor }

// Input returns the values as a plain FormInput.
func (v FormValues) Input() FormInput {
	return FormInput{
		Name:          v.name,
		Birthdate:     v.birthdate,
		AcceptTerms:   v.acceptTerms,
		FavoriteColor: v.favoriteColor,
	}
}

// MarshalJSON encodes the values with the same keys as FormInput.
func (v FormValues) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Input())
}
