package calendar

import "fmt"

var lunarMonthNames = [12]string{"正", "二", "三", "四", "五", "六", "七", "八", "九", "十", "冬", "臘"}

var dayTens = [3]string{"初", "十", "廿"}

var dayUnits = [10]string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}

// LunarMonthNames returns the twelve traditional month names (正 … 臘).
func LunarMonthNames() []string {
	return append([]string(nil), lunarMonthNames[:]...)
}

// MonthName returns the full name of a lunar month, e.g. 正月 or 閏二月.
// Months outside 1..12 return an empty string.
func MonthName(month int, isLeapMonth bool) string {
	if month < 1 || month > monthsPerYear {
		return ""
	}
	name := lunarMonthNames[month-1] + "月"
	if isLeapMonth {
		return "閏" + name
	}
	return name
}

// DayName returns the traditional name of a lunar day: 初一 … 初十, 十一 …
// 二十, 廿一 … 三十. Days outside 1..30 return an empty string.
func DayName(day int) string {
	switch {
	case day < 1 || day > longMonthDays:
		return ""
	case day == 10:
		return "初十"
	case day == 20:
		return "二十"
	case day == 30:
		return "三十"
	}
	return dayTens[day/10] + dayUnits[day%10-1]
}

// Label returns the traditional label of a lunar date, e.g. 甲辰年正月初一.
func (d LunarDate) Label() string {
	return fmt.Sprintf("%s年%s%s", YearGanZhi(d.Year), MonthName(d.Month, d.IsLeapMonth), DayName(d.Day))
}
