package validators

const MaxNotesLen = 500

// ValidateAppointmentInput checks the booking/reschedule fields shared
// by every appointment write path. Empty date/time are only legal when
// allowEmpty is set (partial reschedule).
func ValidateAppointmentInput(date, timeOfDay, notes string, allowEmpty bool) error {
	errs := FieldErrors{}

	if date == "" {
		if !allowEmpty {
			errs["date"] = "date is required"
		}
	} else if !ValidDate(date) {
		errs["date"] = "date must be formatted as 2006-01-02"
	}

	if timeOfDay == "" {
		if !allowEmpty {
			errs["time"] = "time is required"
		}
	} else if !ValidTimeOfDay(timeOfDay) {
		errs["time"] = "time must be formatted as 15:04"
	}

	if len(notes) > MaxNotesLen {
		errs["notes"] = "notes must be at most 500 characters"
	}

	return errs.OrNil()
}
