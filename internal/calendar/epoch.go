package calendar

// Day arithmetic on the proleptic Gregorian calendar, expressed as Julian day
// numbers. Everything here is whole-day integer math, independent of time zones.

// epochJDN is the Julian day number of 1900-01-31, the first day of lunar
// year 1900.
const epochJDN = 2415051

// julianDayNumber returns the Julian day number of a Gregorian date.
// Valid for all years after 4800 BC, which covers every supported date.
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// civilFromJDN converts a Julian day number back to a Gregorian date.
func civilFromJDN(jdn int) (year, month, day int) {
	l := jdn + 68569
	n := 4 * l / 146097
	l = l - (146097*n+3)/4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	k := l - 2447*j/80
	l = j / 11
	j = j + 2 - 12*l
	i = 100*(n-49) + i + l

	return i, j, k
}

// epochOffset returns the number of days from the lunar epoch to a solar date.
func epochOffset(year, month, day int) int {
	return julianDayNumber(year, month, day) - epochJDN
}

// solarFromOffset is the inverse of epochOffset.
func solarFromOffset(offset int) SolarDate {
	y, m, d := civilFromJDN(epochJDN + offset)
	return SolarDate{Year: y, Month: m, Day: d}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth returns the length of a Gregorian month.
func daysInMonth(year, month int) int {
	if month == 2 {
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
	const bits = 0b1010110101010
	return 30 + (bits>>uint(month))&1
}
