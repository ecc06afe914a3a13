package calendar

// Anniversary returns the solar date on which a lunar month/day falls in the
// given lunar year.
//
// Not every lunar date recurs: a leap month exists only in some years, and a
// month may have 29 days one year and 30 the next. When the requested leap
// month does not exist in year the regular month of the same number is used,
// and day 30 moves to day 29 in a short month.
func Anniversary(month, day int, isLeapMonth bool, year int) (SolarDate, error) {
	if err := checkMonth(month); err != nil {
		return SolarDate{}, err
	}
	if day < 1 || day > longMonthDays {
		return SolarDate{}, &RangeError{Field: "day", Value: day, Min: 1, Max: longMonthDays}
	}

	leap, err := LeapMonth(year)
	if err != nil {
		return SolarDate{}, err
	}
	if isLeapMonth && leap != month {
		isLeapMonth = false
	}

	length, err := lunarMonthDays(year, month, isLeapMonth)
	if err != nil {
		return SolarDate{}, err
	}
	if day > length {
		day = length
	}
	return LunarToSolar(year, month, day, isLeapMonth)
}

// Anniversaries returns the solar dates of a lunar month/day for every lunar
// year in [fromYear, toYear].
func Anniversaries(month, day int, isLeapMonth bool, fromYear, toYear int) ([]SolarDate, error) {
	if fromYear > toYear {
		fromYear, toYear = toYear, fromYear
	}
	if _, err := recordFor(fromYear); err != nil {
		return nil, err
	}
	if _, err := recordFor(toYear); err != nil {
		return nil, err
	}
	out := make([]SolarDate, 0, toYear-fromYear+1)
	for year := fromYear; year <= toYear; year++ {
		d, err := Anniversary(month, day, isLeapMonth, year)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
