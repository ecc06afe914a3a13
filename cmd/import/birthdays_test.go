package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
	"github.com/zapponejosh/lunar-calendar-api/internal/logger"
)

const sampleYAML = `
birthdays:
  - name: Mom
    solar_date: 1965-06-01
  - name: Grandpa
    lunar: {year: 1950, month: 8, day: 15}
    notes: mooncakes
  - name: Baby
    lunar:
      year: 2023
      month: 2
      day: 1
      leap: true
`

const sampleJSON = `{"birthdays": [
  {"name": "Dad", "solar_date": "1963-11-20"},
  {"name": "Aunt", "lunar": {"year": 1970, "month": 5, "day": 5}}
]}`

func testDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(database.Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}, logger.Discard())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func TestParseFile_YAML(t *testing.T) {
	f, err := parseFile("birthdays.yaml", []byte(sampleYAML))
	if err != nil {
		t.Fatalf("parseFile() error = %v", err)
	}

	birthdays, err := f.toBirthdays("user-1")
	if err != nil {
		t.Fatalf("toBirthdays() error = %v", err)
	}
	if len(birthdays) != 3 {
		t.Fatalf("len = %d, want 3", len(birthdays))
	}

	if got := birthdays[0].Lunar(); got != (calendar.LunarDate{Year: 1965, Month: 5, Day: 2}) {
		t.Errorf("Mom lunar = %s, want 1965-05-02", got)
	}
	if birthdays[1].SolarDate != "1950-09-26" || birthdays[1].Notes == nil {
		t.Errorf("Grandpa = %+v", birthdays[1])
	}
	if !birthdays[2].IsLeapMonth || birthdays[2].SolarDate != "2023-03-22" {
		t.Errorf("Baby = %+v", birthdays[2])
	}
}

func TestParseFile_JSON(t *testing.T) {
	f, err := parseFile("birthdays.JSON", []byte(sampleJSON))
	if err != nil {
		t.Fatalf("parseFile() error = %v", err)
	}
	birthdays, err := f.toBirthdays("user-1")
	if err != nil {
		t.Fatalf("toBirthdays() error = %v", err)
	}
	if len(birthdays) != 2 || birthdays[0].Name != "Dad" {
		t.Errorf("birthdays = %+v", birthdays)
	}
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
	}{
		{"empty", "x.yaml", "birthdays: []"},
		{"unknown yaml key", "x.yaml", "birthdays:\n  - name: a\n    solar_date: 2000-01-01\n    color: red\n"},
		{"unknown json key", "x.json", `{"birthdays": [{"name": "a", "when": "2000-01-01"}]}`},
		{"malformed", "x.json", `{"birthdays": [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFile(tt.path, []byte(tt.data)); err == nil {
				t.Error("parseFile() expected error")
			}
		})
	}
}

func TestToBirthdays_CollectsErrors(t *testing.T) {
	f := &importFile{Birthdays: []importEntry{
		{Name: "ok", SolarDate: "2000-01-01"},
		{Name: "no date"},
		{Name: "bad leap", Lunar: &importLunar{Year: 2024, Month: 2, Day: 1, Leap: true}},
		{Name: "ok", SolarDate: "2001-01-01"},
	}}

	_, err := f.toBirthdays("user-1")
	if err == nil {
		t.Fatal("toBirthdays() expected error")
	}
	if !errors.Is(err, calendar.ErrInvalidLeapMonth) {
		t.Errorf("error %v does not wrap ErrInvalidLeapMonth", err)
	}
	for _, want := range []string{"entry 2", "entry 3", "duplicate of entry 1"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestImportBirthdays(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	f, err := parseFile("b.yaml", []byte(sampleYAML))
	if err != nil {
		t.Fatalf("parseFile() error = %v", err)
	}
	birthdays, err := f.toBirthdays("user-1")
	if err != nil {
		t.Fatalf("toBirthdays() error = %v", err)
	}

	if err := importBirthdays(ctx, db, birthdays, logger.Discard()); err != nil {
		t.Fatalf("importBirthdays() error = %v", err)
	}
	if n, _ := db.CountBirthdays(ctx, "user-1"); n != 3 {
		t.Errorf("CountBirthdays() = %d, want 3", n)
	}

	// A second import collides on the first name and rolls back entirely.
	again, _ := f.toBirthdays("user-1")
	if err := importBirthdays(ctx, db, again, logger.Discard()); err == nil {
		t.Error("second importBirthdays() expected error")
	}
	if n, _ := db.CountBirthdays(ctx, "user-1"); n != 3 {
		t.Errorf("CountBirthdays() after failed import = %d, want 3", n)
	}
}
