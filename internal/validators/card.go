package validators

import (
	"strings"
	"time"
)

// ValidateCard checks card details for shape only. Commission payments
// are a local bookkeeping action; no gateway ever sees these values.
func ValidateCard(number, expiry, cvv string, now time.Time) error {
	errs := FieldErrors{}

	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if !allDigits(digits) || len(digits) < 13 || len(digits) > 19 {
		errs["card_number"] = "card number must be 13-19 digits"
	}

	if exp, err := time.Parse("01/06", expiry); err != nil {
		errs["expiry"] = "expiry must be formatted as MM/YY"
	} else if exp.AddDate(0, 1, 0).Before(now) {
		errs["expiry"] = "card is expired"
	}

	if !allDigits(cvv) || len(cvv) < 3 || len(cvv) > 4 {
		errs["cvv"] = "cvv must be 3 or 4 digits"
	}

	return errs.OrNil()
}

// CardLastFour assumes the number already passed ValidateCard.
func CardLastFour(number string) string {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
