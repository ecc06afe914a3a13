package calendar

import "fmt"

// Option is a value/label pair for building selection lists.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// YearOptions lists every supported lunar year, labelled with its
// stem-branch and zodiac, e.g. "1984年 (甲子鼠年)".
func YearOptions() []Option {
	opts := make([]Option, 0, MaxYear-MinYear+1)
	for year := MinYear; year <= MaxYear; year++ {
		opts = append(opts, Option{
			Value: year,
			Label: fmt.Sprintf("%d年 (%s%s年)", year, YearGanZhi(year), Zodiac(year)),
		})
	}
	return opts
}

// MonthOptions lists the twelve lunar months, e.g. "正月 (1月)".
func MonthOptions() []Option {
	opts := make([]Option, 0, monthsPerYear)
	for month := 1; month <= monthsPerYear; month++ {
		opts = append(opts, Option{
			Value: month,
			Label: fmt.Sprintf("%s (%d月)", MonthName(month, false), month),
		})
	}
	return opts
}

// DayOptions lists the days of a lunar month, sized by that month's actual
// length. Leap months are supported.
func DayOptions(year, month int, isLeapMonth bool) ([]Option, error) {
	length, err := lunarMonthDays(year, month, isLeapMonth)
	if err != nil {
		return nil, err
	}
	opts := make([]Option, 0, length)
	for day := 1; day <= length; day++ {
		opts = append(opts, Option{Value: day, Label: fmt.Sprintf("%d日", day)})
	}
	return opts, nil
}
