// Package validator provides small, composable validation rules and an
// aggregator that reports every failure at once.
//
// A Rule couples a boolean Check with the ValidationError to report when the
// check fails. Apply evaluates all rules in order, never stopping at the first
// failure, and returns the failures as ValidationErrors, which implements
// error. A nil result means every rule passed.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MinLenString("name", name, 3),
//	    validator.NotEmpty("birthdate", birthdate),
//	    validator.MinApproxAge("birthdate", birthdate, clk.Now(), 18),
//	    validator.Accepted("acceptTerms", accepted),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// Rules carry a generic English message and a translation key. Use
// Rule.WithMessage to replace the message with one written for end users.
//
// String lengths are counted in UTF-16 code units without normalization, as a
// browser counts them, not in bytes. Age rules compare calendar dates and divide the day difference by
// DaysPerYear; they are an approximation and do not track the birthday
// boundary within the current year.
//
// The package holds no state; rules are safe to build and apply concurrently.
package validator
