package calendar

import "testing"

func TestYearGanZhi(t *testing.T) {
	tests := []struct {
		year       int
		wantGanZhi string
		wantZodiac string
	}{
		{1984, "甲子", "鼠"},
		{2024, "甲辰", "龍"},
		{2025, "乙巳", "蛇"},
		{1900, "庚子", "鼠"},
		{2100, "庚申", "猴"},
		{4, "甲子", "鼠"},
		{3, "癸亥", "豬"},
		{0, "庚申", "猴"},
		{-56, "甲子", "鼠"},
		{-1, "己未", "羊"},
	}

	for _, tt := range tests {
		if got := YearGanZhi(tt.year).String(); got != tt.wantGanZhi {
			t.Errorf("YearGanZhi(%d) = %q, want %q", tt.year, got, tt.wantGanZhi)
		}
		if got := Zodiac(tt.year); got != tt.wantZodiac {
			t.Errorf("Zodiac(%d) = %q, want %q", tt.year, got, tt.wantZodiac)
		}
	}
}

func TestCycleIndex(t *testing.T) {
	for year := -200; year <= 2200; year++ {
		idx := CycleIndex(year)
		if idx < 0 || idx >= CycleLength {
			t.Fatalf("CycleIndex(%d) = %d, out of [0, 60)", year, idx)
		}
		if got := YearGanZhi(year).Index(); got != idx {
			t.Fatalf("YearGanZhi(%d).Index() = %d, want %d", year, got, idx)
		}
		if YearGanZhi(year) != YearGanZhi(year+CycleLength) {
			t.Fatalf("YearGanZhi(%d) != YearGanZhi(%d)", year, year+CycleLength)
		}
	}
}

func TestStemBranch_InvalidIndex(t *testing.T) {
	tests := []StemBranch{
		{Stem: "甲", Branch: "丑"}, // parity mismatch
		{Stem: "X", Branch: "子"},
		{Stem: "甲", Branch: ""},
	}
	for _, sb := range tests {
		if got := sb.Index(); got != -1 {
			t.Errorf("%+v.Index() = %d, want -1", sb, got)
		}
	}
}

func TestEnumerations(t *testing.T) {
	if got := len(HeavenlyStems()); got != 10 {
		t.Errorf("len(HeavenlyStems()) = %d, want 10", got)
	}
	if got := len(EarthlyBranches()); got != 12 {
		t.Errorf("len(EarthlyBranches()) = %d, want 12", got)
	}
	if got := len(ZodiacAnimals()); got != 12 {
		t.Errorf("len(ZodiacAnimals()) = %d, want 12", got)
	}
	if got := len(LunarMonthNames()); got != 12 {
		t.Errorf("len(LunarMonthNames()) = %d, want 12", got)
	}

	// Callers get copies.
	stems := HeavenlyStems()
	stems[0] = "X"
	if HeavenlyStems()[0] != "甲" {
		t.Error("HeavenlyStems() exposed package state")
	}
}
