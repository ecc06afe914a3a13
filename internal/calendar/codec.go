package calendar

// Bit layout of a yearRecord. See yearInfo for the full description.
const (
	leapMonthMask  = 0xf
	leapLengthBit  = 0x10000
	monthFlagBase  = 0x10000 // month m is flagged at monthFlagBase >> m
	monthsPerYear  = 12
	shortMonthDays = 29
	longMonthDays  = 30
)

func (r yearRecord) leapMonth() int {
	return int(r & leapMonthMask)
}

func (r yearRecord) leapMonthDays() int {
	if r.leapMonth() == 0 {
		return 0
	}
	if r&leapLengthBit != 0 {
		return longMonthDays
	}
	return shortMonthDays
}

// monthDays assumes 1 <= month <= 12.
func (r yearRecord) monthDays(month int) int {
	if r&(monthFlagBase>>uint(month)) != 0 {
		return longMonthDays
	}
	return shortMonthDays
}

func (r yearRecord) yearDays() int {
	sum := shortMonthDays * monthsPerYear
	for m := 1; m <= monthsPerYear; m++ {
		if r&(monthFlagBase>>uint(m)) != 0 {
			sum++
		}
	}
	return sum + r.leapMonthDays()
}

// LeapMonth returns the leap month of a lunar year, or 0 if it has none.
func LeapMonth(year int) (int, error) {
	r, err := recordFor(year)
	if err != nil {
		return 0, err
	}
	return r.leapMonth(), nil
}

// HasLeapMonth reports whether a lunar year has a leap month.
func HasLeapMonth(year int) (bool, error) {
	leap, err := LeapMonth(year)
	if err != nil {
		return false, err
	}
	return leap != 0, nil
}

// LeapMonthDays returns the length of the leap month: 0 when the year has
// none, otherwise 29 or 30.
func LeapMonthDays(year int) (int, error) {
	r, err := recordFor(year)
	if err != nil {
		return 0, err
	}
	return r.leapMonthDays(), nil
}

// MonthDays returns the length (29 or 30) of a regular lunar month.
func MonthDays(year, month int) (int, error) {
	r, err := recordFor(year)
	if err != nil {
		return 0, err
	}
	if err := checkMonth(month); err != nil {
		return 0, err
	}
	return r.monthDays(month), nil
}

// YearDays returns the total number of days in a lunar year, leap month
// included.
func YearDays(year int) (int, error) {
	r, err := recordFor(year)
	if err != nil {
		return 0, err
	}
	return r.yearDays(), nil
}

// MonthLengths returns the twelve regular month lengths of a lunar year.
func MonthLengths(year int) ([]int, error) {
	r, err := recordFor(year)
	if err != nil {
		return nil, err
	}
	lengths := make([]int, monthsPerYear)
	for m := 1; m <= monthsPerYear; m++ {
		lengths[m-1] = r.monthDays(m)
	}
	return lengths, nil
}

// lunarMonthDays returns the length of a regular or leap month, validating
// that the leap month exists.
func lunarMonthDays(year, month int, isLeap bool) (int, error) {
	r, err := recordFor(year)
	if err != nil {
		return 0, err
	}
	if err := checkMonth(month); err != nil {
		return 0, err
	}
	if !isLeap {
		return r.monthDays(month), nil
	}
	if r.leapMonth() != month {
		return 0, &InvalidLeapMonthError{Year: year, Month: month, LeapMonth: r.leapMonth()}
	}
	return r.leapMonthDays(), nil
}

func checkMonth(month int) error {
	if month < 1 || month > monthsPerYear {
		return &RangeError{Field: "month", Value: month, Min: 1, Max: monthsPerYear}
	}
	return nil
}
