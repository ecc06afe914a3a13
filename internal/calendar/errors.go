package calendar

import (
	"errors"
	"fmt"
)

// Sentinel errors. The concrete error types below unwrap to one of these so
// callers can branch with errors.Is.
var (
	// ErrOutOfRange is returned when a year, month or day is outside its domain.
	ErrOutOfRange = errors.New("value out of supported range")

	// ErrInvalidDate is returned for solar dates that do not exist (e.g. Feb 30).
	ErrInvalidDate = errors.New("invalid solar date")

	// ErrInvalidLeapMonth is returned when a leap month is requested for a
	// month that is not the leap month of that year.
	ErrInvalidLeapMonth = errors.New("invalid leap month")

	// ErrInvariant signals corrupted table data or a bug in the accumulation
	// logic. It is never caused by caller input.
	ErrInvariant = errors.New("calendar invariant violated")
)

// RangeError reports a field outside [Min, Max].
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// InvalidDateError reports a solar date that does not exist.
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid solar date %04d-%02d-%02d", e.Year, e.Month, e.Day)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }

// InvalidLeapMonthError reports a leap-month request for a month that is not
// doubled in that year. LeapMonth is the year's actual leap month (0 if none).
type InvalidLeapMonthError struct {
	Year      int
	Month     int
	LeapMonth int
}

func (e *InvalidLeapMonthError) Error() string {
	if e.LeapMonth == 0 {
		return fmt.Sprintf("lunar year %d has no leap month (requested leap month %d)", e.Year, e.Month)
	}
	return fmt.Sprintf("lunar year %d has leap month %d, not %d", e.Year, e.LeapMonth, e.Month)
}

func (e *InvalidLeapMonthError) Unwrap() error { return ErrInvalidLeapMonth }

// InvariantError is raised when offset arithmetic escapes every expected
// bound after all table lookups succeeded.
type InvariantError struct {
	Op     string
	Offset int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: day offset %d escaped table bounds", e.Op, e.Offset)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

// IsInputError reports whether err was caused by caller input rather than an
// internal defect.
func IsInputError(err error) bool {
	return errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidLeapMonth)
}
