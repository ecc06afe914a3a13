package database

import (
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// Birthday is a birthday remembered by its lunar date.
type Birthday struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	LunarYear   int       `json:"lunar_year"`
	LunarMonth  int       `json:"lunar_month"`
	LunarDay    int       `json:"lunar_day"`
	IsLeapMonth bool      `json:"is_leap_month"`
	SolarDate   string    `json:"solar_date"` // YYYY-MM-DD
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Lunar returns the birthday's lunar date.
func (b *Birthday) Lunar() calendar.LunarDate {
	return calendar.LunarDate{
		Year:        b.LunarYear,
		Month:       b.LunarMonth,
		Day:         b.LunarDay,
		IsLeapMonth: b.IsLeapMonth,
	}
}

// BirthdayPage is one page of a user's birthdays.
type BirthdayPage struct {
	Birthdays []Birthday `json:"birthdays"`
	Total     int        `json:"total"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
}
