package registration

// Limits enforced by the name and birthdate rules.
const (
	MinNameLength = 3
	MinAge        = 18
)

// User-facing messages, displayed verbatim.
const (
	MsgNameTooShort          = "Name must be at least 3 characters long."
	MsgBirthdateRequired     = "Birthdate is required"
	MsgUnderAge              = "You must be at least 18 years old to register"
	MsgTermsNotAccepted      = "You must accept the terms."
	MsgFavoriteColorRequired = "Please select a favorite color."
)
