package validators

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-03-10"))
	assert.False(t, ValidDate("10/03/2025"))
	assert.False(t, ValidDate("2025-13-01"))
	assert.False(t, ValidDate(""))
}

func TestValidTimeOfDay(t *testing.T) {
	assert.True(t, ValidTimeOfDay("09:00"))
	assert.True(t, ValidTimeOfDay("16:30"))
	assert.False(t, ValidTimeOfDay("9am"))
	assert.False(t, ValidTimeOfDay("25:00"))
	assert.False(t, ValidTimeOfDay(""))
}

func TestValidateAppointmentInput(t *testing.T) {
	tests := []struct {
		name       string
		date       string
		timeOfDay  string
		notes      string
		allowEmpty bool
		badFields  []string
	}{
		{"valid booking", "2025-03-10", "10:00", "first visit", false, nil},
		{"missing both", "", "", "", false, []string{"date", "time"}},
		{"partial reschedule allows empty", "", "", "", true, nil},
		{"bad date shape", "10-03-2025", "10:00", "", false, []string{"date"}},
		{"bad time shape", "2025-03-10", "ten", "", false, []string{"time"}},
		{"notes too long", "2025-03-10", "10:00", strings.Repeat("x", MaxNotesLen+1), false, []string{"notes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAppointmentInput(tt.date, tt.timeOfDay, tt.notes, tt.allowEmpty)

			if len(tt.badFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var fields FieldErrors
			if assert.ErrorAs(t, err, &fields) {
				assert.Len(t, fields, len(tt.badFields))
				for _, f := range tt.badFields {
					assert.Contains(t, fields, f)
				}
			}
		})
	}
}

func TestValidateService(t *testing.T) {
	assert.NoError(t, ValidateService("Haircut", 50, 30))
	assert.NoError(t, ValidateService("Consultation", 0, 15))

	var fields FieldErrors

	err := ValidateService("  ", -1, 10)
	if assert.ErrorAs(t, err, &fields) {
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "price")
		assert.Contains(t, fields, "duration_min")
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	err := FieldErrors{"date": "date is required", "time": "time is required"}

	// Field order is deterministic.
	assert.Equal(t, "validation failed: date: date is required; time: time is required", err.Error())
}

func TestValidateCard(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		number    string
		expiry    string
		cvv       string
		badFields []string
	}{
		{"valid visa shape", "4111 1111 1111 1111", "12/27", "123", nil},
		{"dashes and 4-digit cvv", "4111-1111-1111-1111", "01/26", "1234", nil},
		{"too short", "4111", "12/27", "123", []string{"card_number"}},
		{"letters in number", "4111 abcd 1111 1111", "12/27", "123", []string{"card_number"}},
		{"expired card", "4111111111111111", "01/24", "123", []string{"expiry"}},
		{"bad expiry shape", "4111111111111111", "2027-12", "123", []string{"expiry"}},
		{"bad cvv", "4111111111111111", "12/27", "12", []string{"cvv"}},
		{"everything wrong", "12", "never", "x", []string{"card_number", "expiry", "cvv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCard(tt.number, tt.expiry, tt.cvv, now)

			if len(tt.badFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var fields FieldErrors
			if assert.ErrorAs(t, err, &fields) {
				for _, f := range tt.badFields {
					assert.Contains(t, fields, f)
				}
			}
		})
	}
}

func TestValidateCardExpiryEdgeOfMonth(t *testing.T) {
	// A card expiring 03/25 is still good through the end of March.
	now := time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateCard("4111111111111111", "03/25", "123", now))

	now = time.Date(2025, 4, 1, 0, 0, 1, 0, time.UTC)
	err := ValidateCard("4111111111111111", "03/25", "123", now)
	assert.Error(t, err)
}

func TestCardLastFour(t *testing.T) {
	assert.Equal(t, "1111", CardLastFour("4111 1111 1111 1111"))
	assert.Equal(t, "0005", CardLastFour("378282246310005"))
	assert.Equal(t, "12", CardLastFour("12"))
}
