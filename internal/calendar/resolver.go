package calendar

import "fmt"

// DayInfo describes a single solar date in both calendars.
type DayInfo struct {
	Solar     SolarDate `json:"solar"`
	Lunar     LunarDate `json:"lunar"`
	Weekday   string    `json:"weekday"`
	GanZhi    string    `json:"ganzhi"`
	Zodiac    string    `json:"zodiac"`
	MonthName string    `json:"month_name"`
	DayName   string    `json:"day_name"`
	Label     string    `json:"label"`
	Festival  Festival  `json:"festival,omitempty"`
}

// Describe resolves a solar date to its lunar date and traditional names.
//
// The stem-branch and zodiac are those of the lunar year, so dates before
// lunar new year carry the previous year's designation.
func Describe(d SolarDate) (*DayInfo, error) {
	lunar, err := SolarToLunarDate(d)
	if err != nil {
		return nil, err
	}

	info := &DayInfo{
		Solar:     d,
		Lunar:     lunar,
		Weekday:   d.Weekday().String(),
		GanZhi:    YearGanZhi(lunar.Year).String(),
		Zodiac:    Zodiac(lunar.Year),
		MonthName: MonthName(lunar.Month, lunar.IsLeapMonth),
		DayName:   DayName(lunar.Day),
		Label:     lunar.Label(),
	}
	if f, ok := FestivalOn(lunar); ok {
		info.Festival = f
	}
	return info, nil
}

// DescribeLunar resolves a lunar date and describes the resulting solar date.
func DescribeLunar(d LunarDate) (*DayInfo, error) {
	solar, err := LunarToSolarDate(d)
	if err != nil {
		return nil, err
	}
	return Describe(solar)
}

// DescribeRange describes every date from start to end inclusive.
func DescribeRange(start, end SolarDate) ([]*DayInfo, error) {
	if start.After(end) {
		return nil, fmt.Errorf("start %s is after end %s: %w", start, end, ErrOutOfRange)
	}
	out := make([]*DayInfo, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		info, err := Describe(d)
		if err != nil {
			return nil, fmt.Errorf("describe %s: %w", d, err)
		}
		out = append(out, info)
	}
	return out, nil
}

// DescribeMonth describes every day of a solar month.
func DescribeMonth(year, month int) ([]*DayInfo, error) {
	first, err := NewSolarDate(year, month, 1)
	if err != nil {
		return nil, err
	}
	last := SolarDate{Year: year, Month: month, Day: daysInMonth(year, month)}
	return DescribeRange(first, last)
}

// YearInfo summarizes a lunar year.
type YearInfo struct {
	Year          int       `json:"year"`
	GanZhi        string    `json:"ganzhi"`
	Zodiac        string    `json:"zodiac"`
	LeapMonth     int       `json:"leap_month"`
	LeapMonthDays int       `json:"leap_month_days"`
	MonthDays     []int     `json:"month_days"`
	TotalDays     int       `json:"total_days"`
	NewYear       SolarDate `json:"new_year"`
}

// DescribeYear summarizes a lunar year's layout.
func DescribeYear(year int) (*YearInfo, error) {
	r, err := recordFor(year)
	if err != nil {
		return nil, err
	}
	lengths, err := MonthLengths(year)
	if err != nil {
		return nil, err
	}
	newYear, err := CalculateSpringFestival(year)
	if err != nil {
		return nil, err
	}
	return &YearInfo{
		Year:          year,
		GanZhi:        YearGanZhi(year).String(),
		Zodiac:        Zodiac(year),
		LeapMonth:     r.leapMonth(),
		LeapMonthDays: r.leapMonthDays(),
		MonthDays:     lengths,
		TotalDays:     r.yearDays(),
		NewYear:       newYear,
	}, nil
}
