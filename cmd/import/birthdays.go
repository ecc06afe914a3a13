package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
)

// importFile is the on-disk layout of a birthdays file.
type importFile struct {
	Birthdays []importEntry `json:"birthdays" yaml:"birthdays"`
}

// importEntry is one birthday; exactly one of SolarDate and Lunar is set.
type importEntry struct {
	Name      string       `json:"name" yaml:"name"`
	Notes     string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	SolarDate string       `json:"solar_date,omitempty" yaml:"solar_date,omitempty"`
	Lunar     *importLunar `json:"lunar,omitempty" yaml:"lunar,omitempty"`
}

type importLunar struct {
	Year  int  `json:"year" yaml:"year"`
	Month int  `json:"month" yaml:"month"`
	Day   int  `json:"day" yaml:"day"`
	Leap  bool `json:"leap,omitempty" yaml:"leap,omitempty"`
}

// parseFile decodes JSON for .json files and YAML otherwise. Unknown keys
// are rejected in both formats.
func parseFile(path string, data []byte) (*importFile, error) {
	var f importFile

	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	}

	if len(f.Birthdays) == 0 {
		return nil, errors.New("file contains no birthdays")
	}
	return &f, nil
}

// toBirthdays converts every entry, reporting all invalid entries at once.
func (f *importFile) toBirthdays(userID string) ([]*database.Birthday, error) {
	out := make([]*database.Birthday, 0, len(f.Birthdays))
	seen := make(map[string]int, len(f.Birthdays))
	var errs []error

	for i, e := range f.Birthdays {
		b, err := e.toBirthday(userID)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%q): %w", i+1, e.Name, err))
			continue
		}
		if prev, ok := seen[b.Name]; ok {
			errs = append(errs, fmt.Errorf("entry %d (%q): duplicate of entry %d", i+1, e.Name, prev))
			continue
		}
		seen[b.Name] = i + 1
		out = append(out, b)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func (e importEntry) toBirthday(userID string) (*database.Birthday, error) {
	if (e.SolarDate == "") == (e.Lunar == nil) {
		return nil, errors.New("exactly one of solar_date or lunar is required")
	}

	var lunar calendar.LunarDate
	if e.Lunar != nil {
		lunar = calendar.LunarDate{Year: e.Lunar.Year, Month: e.Lunar.Month, Day: e.Lunar.Day, IsLeapMonth: e.Lunar.Leap}
	} else {
		solar, err := calendar.ParseDateString(e.SolarDate)
		if err != nil {
			return nil, err
		}
		if lunar, err = calendar.SolarToLunarDate(solar); err != nil {
			return nil, err
		}
	}

	return database.NewBirthday(userID, e.Name, lunar, e.Notes)
}

// importBirthdays inserts all birthdays in one transaction.
func importBirthdays(ctx context.Context, db *database.DB, birthdays []*database.Birthday, log *slog.Logger) error {
	err := db.WithTx(ctx, func(tx *database.Tx) error {
		for _, b := range birthdays {
			if err := tx.CreateBirthday(ctx, b); err != nil {
				if errors.Is(err, database.ErrDuplicate) {
					return fmt.Errorf("birthday %q already exists", b.Name)
				}
				return fmt.Errorf("insert %q: %w", b.Name, err)
			}
			log.Debug("imported birthday",
				slog.String("name", b.Name),
				slog.String("lunar", b.Lunar().String()),
				slog.String("solar", b.SolarDate),
			)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import birthdays: %w", err)
	}
	return nil
}
