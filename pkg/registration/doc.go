// Package registration validates the sign-up form: name, birthdate, terms
// acceptance and favorite color.
//
// A Validator turns a raw FormInput into a FormValues, which can only be
// obtained from a successful Validate call, or into a validator.ValidationErrors
// listing every violated rule. ErrorMap converts that error into the
// field-keyed map shown next to form inputs.
//
//	v := registration.New()
//	values, err := v.Validate(registration.FormInput{
//	    Name:          "Alice",
//	    Birthdate:     "2000-01-01",
//	    AcceptTerms:   true,
//	    FavoriteColor: "blue",
//	})
//	if err != nil {
//	    for field, messages := range registration.ErrorMap(err) {
//	        ...
//	    }
//	}
//
// The birthdate rule computes an approximate age: the day difference between
// the birth date and today, divided by 365.25 and floored. An unparsable
// birthdate reports the same message as an under-age one.
//
// Validators hold no mutable state and are safe for concurrent use.
package registration
