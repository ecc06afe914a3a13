package calendar

import "sort"

// yearStart[i] is the day offset from the epoch to lunar new year of
// MinYear+i. The final element is the total number of days in the table.
var yearStart = buildYearStarts()

func buildYearStarts() []int {
	starts := make([]int, len(yearInfo)+1)
	for i, info := range yearInfo {
		starts[i+1] = starts[i] + yearRecord(info).yearDays()
	}
	return starts
}

// totalDays returns the number of days covered by the table.
func totalDays() int {
	return yearStart[len(yearStart)-1]
}

// FirstSolarDate returns the earliest convertible solar date (lunar
// 1900-01-01).
func FirstSolarDate() SolarDate { return solarFromOffset(0) }

// LastSolarDate returns the latest convertible solar date (the last day of
// lunar 2100).
func LastSolarDate() SolarDate { return solarFromOffset(totalDays() - 1) }

// SolarToLunar converts a Gregorian date to its lunar equivalent.
//
// A date landing on the first day after a regular month whose number equals
// the year's leap month resolves to the leap month; the first day after the
// leap month resolves to the following regular month.
func SolarToLunar(year, month, day int) (LunarDate, error) {
	if _, err := NewSolarDate(year, month, day); err != nil {
		return LunarDate{}, err
	}
	// Lunar MaxYear ends in January of the following solar year.
	if year < MinYear || year > MaxYear+1 {
		return LunarDate{}, &RangeError{Field: "year", Value: year, Min: MinYear, Max: MaxYear + 1}
	}

	offset := epochOffset(year, month, day)
	if offset < 0 || offset >= totalDays() {
		return LunarDate{}, &RangeError{
			Field: "days since 1900-01-31",
			Value: offset,
			Min:   0,
			Max:   totalDays() - 1,
		}
	}

	// Years: the last year whose start is <= offset.
	idx := sort.Search(len(yearInfo), func(i int) bool { return yearStart[i+1] > offset })
	if idx >= len(yearInfo) {
		return LunarDate{}, &InvariantError{Op: "solar to lunar", Offset: offset}
	}
	lunarYear := MinYear + idx
	offset -= yearStart[idx]

	// Months: the leap month is consumed directly after its regular month.
	r := yearRecord(yearInfo[idx])
	leap := r.leapMonth()
	for m := 1; m <= monthsPerYear; m++ {
		n := r.monthDays(m)
		if offset < n {
			return LunarDate{Year: lunarYear, Month: m, Day: offset + 1}, nil
		}
		offset -= n

		if m == leap {
			n = r.leapMonthDays()
			if offset < n {
				return LunarDate{Year: lunarYear, Month: m, Day: offset + 1, IsLeapMonth: true}, nil
			}
			offset -= n
		}
	}

	return LunarDate{}, &InvariantError{Op: "solar to lunar", Offset: offset}
}

// SolarToLunarDate is SolarToLunar for a SolarDate value.
func SolarToLunarDate(d SolarDate) (LunarDate, error) {
	return SolarToLunar(d.Year, d.Month, d.Day)
}

// LunarToSolar converts a lunar date to its Gregorian equivalent. It is the
// exact inverse of SolarToLunar.
func LunarToSolar(year, month, day int, isLeapMonth bool) (SolarDate, error) {
	length, err := lunarMonthDays(year, month, isLeapMonth)
	if err != nil {
		return SolarDate{}, err
	}
	if day < 1 || day > length {
		return SolarDate{}, &RangeError{Field: "day", Value: day, Min: 1, Max: length}
	}

	r := yearRecord(yearInfo[year-MinYear])
	offset := yearStart[year-MinYear]
	for m := 1; m < month; m++ {
		offset += r.monthDays(m)
	}
	if leap := r.leapMonth(); leap != 0 && leap < month {
		offset += r.leapMonthDays()
	}
	if isLeapMonth {
		// The leap month follows the regular month with the same number.
		offset += r.monthDays(month)
	}
	offset += day - 1

	if offset < 0 || offset >= totalDays() {
		return SolarDate{}, &InvariantError{Op: "lunar to solar", Offset: offset}
	}
	return solarFromOffset(offset), nil
}

// LunarToSolarDate is LunarToSolar for a LunarDate value.
func LunarToSolarDate(d LunarDate) (SolarDate, error) {
	return LunarToSolar(d.Year, d.Month, d.Day, d.IsLeapMonth)
}
