package calendar

import (
	"errors"
	"testing"
)

func TestFestivals(t *testing.T) {
	got, err := Festivals(2024)
	if err != nil {
		t.Fatalf("Festivals(2024) error = %v", err)
	}

	want := map[Festival]SolarDate{
		FestivalSpring:     {2024, 2, 10},
		FestivalLantern:    {2024, 2, 24},
		FestivalDragonBoat: {2024, 6, 10},
		FestivalMidAutumn:  {2024, 9, 17},
		FestivalDoubleNine: {2024, 10, 11},
		FestivalLaba:       {2025, 1, 7},
		FestivalNewYearEve: {2025, 1, 28},
	}

	if len(got) != len(ValidFestivals()) {
		t.Fatalf("len(Festivals) = %d, want %d", len(got), len(ValidFestivals()))
	}
	for _, f := range got {
		if !f.Festival.IsValid() {
			t.Errorf("festival %q is not valid", f.Festival)
		}
		if w, ok := want[f.Festival]; ok && f.Solar != w {
			t.Errorf("%s = %s, want %s", f.Festival, f.Solar, w)
		}
	}

	eve := got[len(got)-1]
	if eve.Festival != FestivalNewYearEve || eve.Lunar != (LunarDate{2024, 12, 29, false}) {
		t.Errorf("last festival = %+v, want 除夕 on 2024-12-29", eve)
	}
}

func TestCalculateSpringFestival(t *testing.T) {
	tests := map[int]SolarDate{
		1900: {1900, 1, 31},
		1984: {1984, 2, 2},
		2000: {2000, 2, 5},
		2023: {2023, 1, 22},
		2024: {2024, 2, 10},
	}
	for year, want := range tests {
		got, err := CalculateSpringFestival(year)
		if err != nil {
			t.Fatalf("CalculateSpringFestival(%d) error = %v", year, err)
		}
		if got != want {
			t.Errorf("CalculateSpringFestival(%d) = %s, want %s", year, got, want)
		}
	}
}

func TestCalculateNewYearEve(t *testing.T) {
	for year := MinYear; year < MaxYear; year++ {
		eve, err := CalculateNewYearEve(year)
		if err != nil {
			t.Fatalf("CalculateNewYearEve(%d) error = %v", year, err)
		}
		next, _ := CalculateSpringFestival(year + 1)
		if eve.AddDays(1) != next {
			t.Errorf("CalculateNewYearEve(%d) = %s, next new year %s", year, eve, next)
		}
	}
}

func TestFestivalOn(t *testing.T) {
	tests := []struct {
		date   LunarDate
		want   Festival
		wantOK bool
	}{
		{LunarDate{2024, 8, 15, false}, FestivalMidAutumn, true},
		{LunarDate{2024, 12, 29, false}, FestivalNewYearEve, true},
		{LunarDate{2023, 12, 29, false}, "", false}, // 2023's twelfth month has 30 days
		{LunarDate{2023, 12, 30, false}, FestivalNewYearEve, true},
		{LunarDate{2020, 4, 8, true}, "", false},
		{LunarDate{2024, 3, 3, false}, "", false},
	}
	for _, tt := range tests {
		got, ok := FestivalOn(tt.date)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FestivalOn(%s) = %q, %v; want %q, %v", tt.date, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAnniversary(t *testing.T) {
	tests := []struct {
		name  string
		month int
		day   int
		leap  bool
		year  int
		want  SolarDate
	}{
		{"regular", 8, 15, false, 2024, SolarDate{2024, 9, 17}},
		{"leap month exists", 6, 1, true, 2025, SolarDate{2025, 7, 25}},
		{"leap month missing falls back", 2, 1, true, 2024, SolarDate{2024, 3, 10}},
		{"day 30 in short month", 1, 30, false, 2023, SolarDate{2023, 2, 19}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Anniversary(tt.month, tt.day, tt.leap, tt.year)
			if err != nil {
				t.Fatalf("Anniversary() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Anniversary() = %s, want %s", got, tt.want)
			}
		})
	}

	if _, err := Anniversary(13, 1, false, 2024); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Anniversary(month 13) error = %v, want ErrOutOfRange", err)
	}
	if _, err := Anniversary(1, 31, false, 2024); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Anniversary(day 31) error = %v, want ErrOutOfRange", err)
	}

	for _, span := range [][2]int{{1900, 1 << 62}, {1899, 1950}, {2100, 2101}} {
		if _, err := Anniversaries(1, 1, false, span[0], span[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Anniversaries(%d..%d) error = %v, want ErrOutOfRange", span[0], span[1], err)
		}
	}

	dates, err := Anniversaries(8, 15, false, 2026, 2024)
	if err != nil {
		t.Fatalf("Anniversaries() error = %v", err)
	}
	if len(dates) != 3 || dates[0] != (SolarDate{2024, 9, 17}) {
		t.Errorf("Anniversaries() = %v, want 3 dates starting 2024-09-17", dates)
	}
}
