package registration

import (
	"time"

	"github.com/dmitrymomot/signup/pkg/clock"
	"github.com/dmitrymomot/signup/pkg/validator"
)

// Option configures a Validator.
type Option func(*Validator)

// WithClock sets the source of "today" for the age rule. Nil is ignored.
func WithClock(c clock.Clock) Option {
	return func(v *Validator) {
		if c != nil {
			v.clock = c
		}
	}
}

// WithLocation sets the location whose calendar date counts as today.
// Nil is ignored.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.loc = loc
		}
	}
}

// Validator checks FormInput records.
type Validator struct {
	clock clock.Clock
	loc   *time.Location
}

// New returns a Validator reading the system clock in the local time zone.
func New(opts ...Option) *Validator {
	v := &Validator{
		clock: clock.System(),
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = New()

// Validate checks in with the default Validator.
func Validate(in FormInput) (FormValues, error) {
	return defaultValidator.Validate(in)
}

// Validate evaluates every field rule against in. On success it returns the
// validated values; otherwise it returns validator.ValidationErrors with one
// entry per violated rule, in FieldOrder.
func (v *Validator) Validate(in FormInput) (FormValues, error) {
	now := v.clock.Now().In(v.loc)

	if err := validator.Apply(v.rules(in, now)...); err != nil {
		return FormValues{}, err
	}

	return FormValues{
		name:          in.Name,
		birthdate:     in.Birthdate,
		acceptTerms:   in.AcceptTerms,
		favoriteColor: in.FavoriteColor,
	}, nil
}

func (v *Validator) rules(in FormInput, now time.Time) []validator.Rule {
	return []validator.Rule{
		validator.MinLenString(FieldName, in.Name, MinNameLength).WithMessage(MsgNameTooShort),
		validator.NotEmpty(FieldBirthdate, in.Birthdate).WithMessage(MsgBirthdateRequired),
		validator.MinApproxAge(FieldBirthdate, in.Birthdate, now, MinAge).WithMessage(MsgUnderAge),
		validator.Accepted(FieldAcceptTerms, in.AcceptTerms).WithMessage(MsgTermsNotAccepted),
		validator.NotEmpty(FieldFavoriteColor, in.FavoriteColor).WithMessage(MsgFavoriteColorRequired),
	}
}
