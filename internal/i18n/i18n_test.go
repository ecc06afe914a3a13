package i18n

import (
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

func TestResolveTag(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		accept string
		want   language.Tag
	}{
		{"default", "/", "", language.TraditionalChinese},
		{"query english", "/?lang=en", "", language.English},
		{"query regional english", "/?lang=en-GB", "", language.English},
		{"query beats header", "/?lang=zh-Hant", "en-US", language.TraditionalChinese},
		{"bad query falls through to header", "/?lang=!!", "en", language.English},
		{"accept taiwan", "/", "zh-TW,zh;q=0.9", language.TraditionalChinese},
		{"accept english", "/", "en-US,en;q=0.8", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			if got := ResolveTag(r, Default()); got != tt.want {
				t.Errorf("ResolveTag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	if tag, ok := ParseTag("en"); !ok || tag != language.English {
		t.Errorf("ParseTag(en) = %v, %v", tag, ok)
	}
	if _, ok := ParseTag("not a tag"); ok {
		t.Error("ParseTag(garbage) ok = true, want false")
	}
}

func TestLocalizer_English(t *testing.T) {
	info, err := calendar.Describe(calendar.SolarDate{Year: 2023, Month: 3, Day: 22})
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}

	got := NewLocalizer(language.English).Day(info)
	if got.Zodiac != "Rabbit" {
		t.Errorf("Zodiac = %q, want Rabbit", got.Zodiac)
	}
	if got.Weekday != "Wednesday" {
		t.Errorf("Weekday = %q, want Wednesday", got.Weekday)
	}
	if got.MonthName != "Leap Month 2" || got.DayName != "Day 1" {
		t.Errorf("names = %q %q, want Leap Month 2 / Day 1", got.MonthName, got.DayName)
	}
	if want := "Day 1 of Leap Month 2, 癸卯 year"; got.Label != want {
		t.Errorf("Label = %q, want %q", got.Label, want)
	}

	// The source is untouched
	if info.Zodiac != "兔" {
		t.Errorf("source Zodiac changed to %q", info.Zodiac)
	}
}

func TestLocalizer_Chinese(t *testing.T) {
	info, err := calendar.Describe(calendar.SolarDate{Year: 2024, Month: 2, Day: 10})
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}

	got := NewLocalizer(language.TraditionalChinese).Day(info)
	if got.Weekday != "星期六" {
		t.Errorf("Weekday = %q, want 星期六", got.Weekday)
	}
	if got.Zodiac != "龍" || got.Festival != calendar.FestivalSpring {
		t.Errorf("Zodiac/Festival = %q/%q", got.Zodiac, got.Festival)
	}
	if got.Label != info.Label {
		t.Errorf("Label = %q, want %q", got.Label, info.Label)
	}
}

func TestLocalizer_Festivals(t *testing.T) {
	fs, err := calendar.Festivals(2024)
	if err != nil {
		t.Fatalf("Festivals() error = %v", err)
	}
	got := NewLocalizer(language.English).Festivals(fs)
	if got[0].Festival != "Spring Festival" {
		t.Errorf("first festival = %q, want Spring Festival", got[0].Festival)
	}
	if fs[0].Festival != calendar.FestivalSpring {
		t.Errorf("source festival changed to %q", fs[0].Festival)
	}
}

func TestCatalogComplete(t *testing.T) {
	l := NewLocalizer(language.English)
	for _, animal := range calendar.ZodiacAnimals() {
		if l.T(animal) == animal {
			t.Errorf("no English entry for %q", animal)
		}
	}
	for _, f := range calendar.ValidFestivals() {
		if l.T(string(f)) == string(f) {
			t.Errorf("no English entry for %q", f)
		}
	}
}
