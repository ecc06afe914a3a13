package calendar

// Festival identifies a traditional lunar festival.
type Festival string

const (
	FestivalSpring     Festival = "春節"
	FestivalLantern    Festival = "元宵節"
	FestivalDragonBoat Festival = "端午節"
	FestivalQixi       Festival = "七夕"
	FestivalGhost      Festival = "中元節"
	FestivalMidAutumn  Festival = "中秋節"
	FestivalDoubleNine Festival = "重陽節"
	FestivalLaba       Festival = "臘八節"
	FestivalNewYearEve Festival = "除夕"
)

// fixedFestivals are festivals on a fixed (non-leap) lunar month and day.
// New Year's Eve has no fixed day and is handled separately.
var fixedFestivals = []struct {
	festival Festival
	month    int
	day      int
}{
	{FestivalSpring, 1, 1},
	{FestivalLantern, 1, 15},
	{FestivalDragonBoat, 5, 5},
	{FestivalQixi, 7, 7},
	{FestivalGhost, 7, 15},
	{FestivalMidAutumn, 8, 15},
	{FestivalDoubleNine, 9, 9},
	{FestivalLaba, 12, 8},
}

// FestivalDate is a festival resolved to both calendars.
type FestivalDate struct {
	Festival Festival  `json:"festival"`
	Lunar    LunarDate `json:"lunar"`
	Solar    SolarDate `json:"solar"`
}

// ValidFestivals returns all festivals in calendar order.
func ValidFestivals() []Festival {
	out := make([]Festival, 0, len(fixedFestivals)+1)
	for _, f := range fixedFestivals {
		out = append(out, f.festival)
	}
	return append(out, FestivalNewYearEve)
}

// IsValid checks if a festival is known.
func (f Festival) IsValid() bool {
	for _, valid := range ValidFestivals() {
		if f == valid {
			return true
		}
	}
	return false
}

// CalculateSpringFestival returns the solar date of lunar new year.
func CalculateSpringFestival(year int) (SolarDate, error) {
	return LunarToSolar(year, 1, 1, false)
}

// CalculateNewYearEve returns the solar date of the last day of the lunar
// year (the 29th or 30th of the twelfth month).
func CalculateNewYearEve(year int) (SolarDate, error) {
	days, err := MonthDays(year, 12)
	if err != nil {
		return SolarDate{}, err
	}
	return LunarToSolar(year, 12, days, false)
}

// Festivals returns every festival of a lunar year in calendar order.
func Festivals(year int) ([]FestivalDate, error) {
	out := make([]FestivalDate, 0, len(fixedFestivals)+1)
	for _, f := range fixedFestivals {
		lunar := LunarDate{Year: year, Month: f.month, Day: f.day}
		solar, err := LunarToSolarDate(lunar)
		if err != nil {
			return nil, err
		}
		out = append(out, FestivalDate{Festival: f.festival, Lunar: lunar, Solar: solar})
	}

	days, err := MonthDays(year, 12)
	if err != nil {
		return nil, err
	}
	lunarEve := LunarDate{Year: year, Month: 12, Day: days}
	eve, err := LunarToSolarDate(lunarEve)
	if err != nil {
		return nil, err
	}
	return append(out, FestivalDate{Festival: FestivalNewYearEve, Lunar: lunarEve, Solar: eve}), nil
}

// FestivalOn returns the festival falling on a lunar date, if any. Leap
// months never carry a festival.
func FestivalOn(d LunarDate) (Festival, bool) {
	if d.IsLeapMonth {
		return "", false
	}
	for _, f := range fixedFestivals {
		if f.month == d.Month && f.day == d.Day {
			return f.festival, true
		}
	}
	if d.Month == 12 {
		if days, err := MonthDays(d.Year, 12); err == nil && days == d.Day {
			return FestivalNewYearEve, true
		}
	}
	return "", false
}
