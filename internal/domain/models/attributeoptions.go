// internal/domain/models/attributeoptions.go
package models

// Enumerated values accepted for the bucketed attribute/preference fields.
// Free-form fields (ethnicity, language, denomination, service time) are
// intentionally unconstrained.
var (
	SizeOptions = []string{"small", "medium", "large"}

	AgeGroupOptions = []string{
		"all ages",
		"children",
		"youth",
		"young adult",
		"middle-aged",
		"senior",
	}

	ServiceDayOptions = []string{
		"sunday", "monday", "tuesday", "wednesday",
		"thursday", "friday", "saturday",
	}
)
