package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Well-known business codes shared between use cases and handlers.
const (
	CodeSlotNotAvailable = "slot_not_available"
	CodeInvalidState     = "invalid_state"
	CodeCompanyInactive  = "company_not_active"
	CodeNotFoundEntity   = "not_found"
	CodeForbidden        = "insufficient_permissions"
	CodeHasAppointments  = "service_has_appointments"
)

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505), e.g. the partial slot index firing under a
// booking race.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
