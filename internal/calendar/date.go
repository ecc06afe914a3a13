package calendar

import (
	"fmt"
	"time"
)

// SolarDate is a Gregorian calendar date.
type SolarDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// LunarDate is a date in the lunar calendar. IsLeapMonth marks the inserted
// month that follows the regular month of the same number.
type LunarDate struct {
	Year        int  `json:"year"`
	Month       int  `json:"month"`
	Day         int  `json:"day"`
	IsLeapMonth bool `json:"is_leap_month"`
}

// NewSolarDate validates and returns a solar date.
func NewSolarDate(year, month, day int) (SolarDate, error) {
	if month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return SolarDate{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	return SolarDate{Year: year, Month: month, Day: day}, nil
}

// SolarDateOf returns the solar date of t in t's own location.
func SolarDateOf(t time.Time) SolarDate {
	y, m, d := t.Date()
	return SolarDate{Year: y, Month: int(m), Day: d}
}

// ParseDateString parses a date string in YYYY-MM-DD format.
func ParseDateString(s string) (SolarDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return SolarDate{}, fmt.Errorf("parse date %q: %w", s, ErrInvalidDate)
	}
	return SolarDateOf(t), nil
}

// String formats the date as YYYY-MM-DD.
func (d SolarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Weekday returns the day of the week.
func (d SolarDate) Weekday() time.Weekday {
	return time.Weekday((julianDayNumber(d.Year, d.Month, d.Day) + 1) % 7)
}

// AddDays returns the date n days after d (n may be negative).
func (d SolarDate) AddDays(n int) SolarDate {
	y, m, day := civilFromJDN(julianDayNumber(d.Year, d.Month, d.Day) + n)
	return SolarDate{Year: y, Month: m, Day: day}
}

// DaysUntil returns the number of days from d to other.
func (d SolarDate) DaysUntil(other SolarDate) int {
	return julianDayNumber(other.Year, other.Month, other.Day) - julianDayNumber(d.Year, d.Month, d.Day)
}

// Before reports whether d is strictly before other.
func (d SolarDate) Before(other SolarDate) bool {
	return d.DaysUntil(other) > 0
}

// After reports whether d is strictly after other.
func (d SolarDate) After(other SolarDate) bool {
	return d.DaysUntil(other) < 0
}

// Equal reports whether d and other are the same day.
func (d SolarDate) Equal(other SolarDate) bool {
	return d == other
}

// String formats the date as YYYY-MM-DD, with an "L" before the month for
// leap months (e.g. 2023-L02-01).
func (d LunarDate) String() string {
	if d.IsLeapMonth {
		return fmt.Sprintf("%04d-L%02d-%02d", d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
