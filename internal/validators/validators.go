package validators

import (
	"sort"
	"strings"
	"time"
)

// FieldErrors carries per-field validation messages. It is an error so
// validation functions can be used in any error-returning flow.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for name := range f {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, name := range fields {
		b.WriteString(" " + name + ": " + f[name] + ";")
	}
	return strings.TrimSuffix(b.String(), ";")
}

func (f FieldErrors) OrNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

func ValidTimeOfDay(timeOfDay string) bool {
	_, err := time.Parse(TimeLayout, timeOfDay)
	return err == nil
}
