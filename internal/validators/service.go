package validators

import "strings"

const MinServiceDurationMin = 15

// ValidateService holds the single source of truth for service field
// rules, shared by create and update paths.
func ValidateService(name string, price float64, durationMin int) error {
	errs := FieldErrors{}

	if strings.TrimSpace(name) == "" {
		errs["name"] = "name is required"
	}
	if price < 0 {
		errs["price"] = "price must be zero or positive"
	}
	if durationMin < MinServiceDurationMin {
		errs["duration_min"] = "duration must be at least 15 minutes"
	}

	return errs.OrNil()
}
