package calendar

import (
	"errors"
	"testing"
)

func TestSolarToLunar(t *testing.T) {
	tests := []struct {
		name  string
		solar SolarDate
		want  LunarDate
	}{
		{"epoch", SolarDate{1900, 1, 31}, LunarDate{1900, 1, 1, false}},
		{"1984 new year", SolarDate{1984, 2, 2}, LunarDate{1984, 1, 1, false}},
		{"2000 new year", SolarDate{2000, 2, 5}, LunarDate{2000, 1, 1, false}},
		{"2024 new year", SolarDate{2024, 2, 10}, LunarDate{2024, 1, 1, false}},
		{"2024 new year eve", SolarDate{2024, 2, 9}, LunarDate{2023, 12, 30, false}},
		{"mid autumn 2024", SolarDate{2024, 9, 17}, LunarDate{2024, 8, 15, false}},
		{"before leap month", SolarDate{2023, 3, 21}, LunarDate{2023, 2, 30, false}},
		{"first day of leap month", SolarDate{2023, 3, 22}, LunarDate{2023, 2, 1, true}},
		{"last day of leap month", SolarDate{2023, 4, 19}, LunarDate{2023, 2, 29, true}},
		{"after leap month", SolarDate{2023, 4, 20}, LunarDate{2023, 3, 1, false}},
		{"leap month 2020", SolarDate{2020, 5, 23}, LunarDate{2020, 4, 1, true}},
		{"after leap 2020", SolarDate{2020, 6, 21}, LunarDate{2020, 5, 1, false}},
		{"leap month 1900", SolarDate{1900, 9, 24}, LunarDate{1900, 8, 1, true}},
		{"end of solar 2100", SolarDate{2100, 12, 31}, LunarDate{2100, 12, 1, false}},
		{"last convertible", SolarDate{2101, 1, 28}, LunarDate{2100, 12, 29, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SolarToLunarDate(tt.solar)
			if err != nil {
				t.Fatalf("SolarToLunar(%s) error = %v", tt.solar, err)
			}
			if got != tt.want {
				t.Errorf("SolarToLunar(%s) = %+v, want %+v", tt.solar, got, tt.want)
			}
		})
	}
}

func TestLunarToSolar(t *testing.T) {
	tests := []struct {
		name  string
		lunar LunarDate
		want  SolarDate
	}{
		{"epoch", LunarDate{1900, 1, 1, false}, SolarDate{1900, 1, 31}},
		{"leap month start", LunarDate{2023, 2, 1, true}, SolarDate{2023, 3, 22}},
		{"month right after leap", LunarDate{2023, 3, 1, false}, SolarDate{2023, 4, 20}},
		{"regular month before leap", LunarDate{2023, 2, 1, false}, SolarDate{2023, 2, 20}},
		{"leap 2025", LunarDate{2025, 6, 1, true}, SolarDate{2025, 7, 25}},
		{"leap 2033", LunarDate{2033, 11, 1, true}, SolarDate{2033, 12, 22}},
		{"dragon boat 2024", LunarDate{2024, 5, 5, false}, SolarDate{2024, 6, 10}},
		{"last day of table", LunarDate{2100, 12, 29, false}, SolarDate{2101, 1, 28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LunarToSolarDate(tt.lunar)
			if err != nil {
				t.Fatalf("LunarToSolar(%s) error = %v", tt.lunar, err)
			}
			if got != tt.want {
				t.Errorf("LunarToSolar(%s) = %s, want %s", tt.lunar, got, tt.want)
			}
		})
	}
}

func TestRoundTrip_AllSolarDates(t *testing.T) {
	last := SolarDate{2100, 12, 31}
	count := 0
	for d := (SolarDate{1900, 1, 31}); !d.After(last); d = d.AddDays(1) {
		lunar, err := SolarToLunarDate(d)
		if err != nil {
			t.Fatalf("SolarToLunar(%s) error = %v", d, err)
		}
		back, err := LunarToSolarDate(lunar)
		if err != nil {
			t.Fatalf("LunarToSolar(%s) error = %v", lunar, err)
		}
		if back != d {
			t.Fatalf("round trip %s -> %s -> %s", d, lunar, back)
		}
		count++
	}
	if count == 0 {
		t.Fatal("no dates checked")
	}
}

func TestRoundTrip_AllLunarDates(t *testing.T) {
	prev := FirstSolarDate().AddDays(-1)
	for year := MinYear; year <= MaxYear; year++ {
		leap, _ := LeapMonth(year)
		for month := 1; month <= 12; month++ {
			kinds := []bool{false}
			if month == leap {
				kinds = append(kinds, true)
			}
			for _, isLeap := range kinds {
				length, err := lunarMonthDays(year, month, isLeap)
				if err != nil {
					t.Fatalf("lunarMonthDays(%d, %d, %v) error = %v", year, month, isLeap, err)
				}
				for day := 1; day <= length; day++ {
					lunar := LunarDate{year, month, day, isLeap}
					solar, err := LunarToSolarDate(lunar)
					if err != nil {
						t.Fatalf("LunarToSolar(%s) error = %v", lunar, err)
					}
					if prev.DaysUntil(solar) != 1 {
						t.Fatalf("LunarToSolar(%s) = %s, not the day after %s", lunar, solar, prev)
					}
					back, err := SolarToLunarDate(solar)
					if err != nil {
						t.Fatalf("SolarToLunar(%s) error = %v", solar, err)
					}
					if back != lunar {
						t.Fatalf("reverse round trip %s -> %s -> %s", lunar, solar, back)
					}
					prev = solar
				}
			}
		}
	}
	if prev != LastSolarDate() {
		t.Errorf("last lunar date maps to %s, want %s", prev, LastSolarDate())
	}
}

func TestLeapBoundary_BothDirections(t *testing.T) {
	for year := MinYear; year <= MaxYear; year++ {
		leap, _ := LeapMonth(year)
		if leap == 0 {
			continue
		}

		// First day after the regular month is the leap month.
		leapStart, err := LunarToSolar(year, leap, 1, true)
		if err != nil {
			t.Fatalf("LunarToSolar(%d, %d, 1, leap) error = %v", year, leap, err)
		}
		regularDays, _ := MonthDays(year, leap)
		regularStart, _ := LunarToSolar(year, leap, 1, false)
		if regularStart.AddDays(regularDays) != leapStart {
			t.Errorf("year %d: leap month does not follow regular month %d", year, leap)
		}
		got, _ := SolarToLunarDate(leapStart)
		if want := (LunarDate{year, leap, 1, true}); got != want {
			t.Errorf("SolarToLunar(%s) = %+v, want %+v", leapStart, got, want)
		}

		// First day after the leap month is the next regular month (or the
		// next year when the leap month is the twelfth).
		leapDays, _ := LeapMonthDays(year)
		after := leapStart.AddDays(leapDays)
		got, _ = SolarToLunarDate(after)
		want := LunarDate{year, leap + 1, 1, false}
		if leap == 12 {
			want = LunarDate{year + 1, 1, 1, false}
		}
		if got != want {
			t.Errorf("SolarToLunar(%s) = %+v, want %+v", after, got, want)
		}
	}
}

func TestSolarToLunar_Errors(t *testing.T) {
	tests := []struct {
		name    string
		date    SolarDate
		wantErr error
	}{
		{"before epoch", SolarDate{1900, 1, 30}, ErrOutOfRange},
		{"year 1899", SolarDate{1899, 6, 1}, ErrOutOfRange},
		{"after table", SolarDate{2101, 1, 29}, ErrOutOfRange},
		{"year 2102", SolarDate{2102, 1, 1}, ErrOutOfRange},
		{"huge year", SolarDate{50505469855535009, 6, 1}, ErrOutOfRange},
		{"february 30", SolarDate{2024, 2, 30}, ErrInvalidDate},
		{"february 29 non leap", SolarDate{2023, 2, 29}, ErrInvalidDate},
		{"month 13", SolarDate{2024, 13, 1}, ErrInvalidDate},
		{"day 0", SolarDate{2024, 1, 0}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SolarToLunarDate(tt.date)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SolarToLunar(%+v) error = %v, want %v", tt.date, err, tt.wantErr)
			}
			if !IsInputError(err) {
				t.Errorf("IsInputError(%v) = false, want true", err)
			}
		})
	}
}

func TestLunarToSolar_Errors(t *testing.T) {
	tests := []struct {
		name    string
		date    LunarDate
		wantErr error
	}{
		{"year too low", LunarDate{1899, 1, 1, false}, ErrOutOfRange},
		{"year too high", LunarDate{2101, 1, 1, false}, ErrOutOfRange},
		{"month 0", LunarDate{2024, 0, 1, false}, ErrOutOfRange},
		{"month 13", LunarDate{2024, 13, 1, false}, ErrOutOfRange},
		{"day 0", LunarDate{2024, 1, 0, false}, ErrOutOfRange},
		{"day 30 in short month", LunarDate{2023, 1, 30, false}, ErrOutOfRange},
		{"day 30 in short leap month", LunarDate{2023, 2, 30, true}, ErrOutOfRange},
		{"leap in year without leap", LunarDate{2024, 2, 1, true}, ErrInvalidLeapMonth},
		{"wrong leap month", LunarDate{2023, 3, 1, true}, ErrInvalidLeapMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LunarToSolarDate(tt.date)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LunarToSolar(%+v) error = %v, want %v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestLeapConsistency(t *testing.T) {
	for year := MinYear; year <= MaxYear; year++ {
		leap, _ := LeapMonth(year)
		for month := 1; month <= 12; month++ {
			_, err := LunarToSolar(year, month, 1, true)
			if month == leap {
				if err != nil {
					t.Errorf("LunarToSolar(%d, %d, 1, leap) error = %v", year, month, err)
				}
				continue
			}
			var leapErr *InvalidLeapMonthError
			if !errors.As(err, &leapErr) {
				t.Fatalf("LunarToSolar(%d, %d, 1, leap) error = %v, want *InvalidLeapMonthError", year, month, err)
			}
			if leapErr.LeapMonth != leap {
				t.Errorf("InvalidLeapMonthError.LeapMonth = %d, want %d", leapErr.LeapMonth, leap)
			}
		}
	}
}

func TestSolarDateRange(t *testing.T) {
	if got, want := FirstSolarDate(), (SolarDate{1900, 1, 31}); got != want {
		t.Errorf("FirstSolarDate() = %s, want %s", got, want)
	}
	if got, want := LastSolarDate(), (SolarDate{2101, 1, 28}); got != want {
		t.Errorf("LastSolarDate() = %s, want %s", got, want)
	}
}
