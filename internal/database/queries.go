package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns the zero time if the value matches no known layout.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// NewBirthday builds a birthday for userID, validating the lunar date and
// filling in its solar date.
func NewBirthday(userID, name string, lunar calendar.LunarDate, notes string) (*Birthday, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	solar, err := calendar.LunarToSolarDate(lunar)
	if err != nil {
		return nil, err
	}

	b := &Birthday{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		LunarYear:   lunar.Year,
		LunarMonth:  lunar.Month,
		LunarDay:    lunar.Day,
		IsLeapMonth: lunar.IsLeapMonth,
		SolarDate:   solar.String(),
	}
	if notes = strings.TrimSpace(notes); notes != "" {
		b.Notes = &notes
	}
	return b, nil
}

// =============================================================================
// Birthday Queries
// =============================================================================

const birthdayColumns = `
	id, user_id, name,
	lunar_year, lunar_month, lunar_day, is_leap_month,
	solar_date, notes, created_at, updated_at
`

// CreateBirthday inserts a birthday and sets its timestamps.
// Returns ErrDuplicate if the user already has a birthday with that name.
func (db *DB) CreateBirthday(ctx context.Context, b *Birthday) error {
	return createBirthday(ctx, db.DB, b)
}

// CreateBirthday inserts a birthday within the transaction.
func (tx *Tx) CreateBirthday(ctx context.Context, b *Birthday) error {
	return createBirthday(ctx, tx.Tx, b)
}

func createBirthday(ctx context.Context, q querier, b *Birthday) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	query := `
		INSERT INTO birthdays (
			id, user_id, name,
			lunar_year, lunar_month, lunar_day, is_leap_month,
			solar_date, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING created_at, updated_at
	`

	var notes sql.NullString
	if b.Notes != nil {
		notes = sql.NullString{String: *b.Notes, Valid: true}
	}

	var createdAt, updatedAt string
	err := q.QueryRowContext(ctx, query,
		b.ID, b.UserID, b.Name,
		b.LunarYear, b.LunarMonth, b.LunarDay, b.IsLeapMonth,
		b.SolarDate, notes,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert birthday: %w", err)
	}

	b.CreatedAt = parseTimestamp(createdAt)
	b.UpdatedAt = parseTimestamp(updatedAt)
	return nil
}

// GetBirthday retrieves one of the user's birthdays by id.
// Returns ErrNotFound if it doesn't exist or belongs to another user.
func (db *DB) GetBirthday(ctx context.Context, userID, id string) (*Birthday, error) {
	query := `SELECT ` + birthdayColumns + ` FROM birthdays WHERE id = ? AND user_id = ?`

	b, err := scanBirthday(db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get birthday: %w", err)
	}
	return b, nil
}

// ListBirthdays returns a page of the user's birthdays, oldest first.
func (db *DB) ListBirthdays(ctx context.Context, userID string, limit, offset int) ([]Birthday, error) {
	query := `
		SELECT ` + birthdayColumns + `
		FROM birthdays
		WHERE user_id = ?
		ORDER BY created_at, name
		LIMIT ? OFFSET ?
	`

	rows, err := db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query birthdays: %w", err)
	}
	defer rows.Close()

	birthdays := []Birthday{}
	for rows.Next() {
		b, err := scanBirthday(rows)
		if err != nil {
			return nil, fmt.Errorf("scan birthday: %w", err)
		}
		birthdays = append(birthdays, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate birthdays: %w", err)
	}

	return birthdays, nil
}

// CountBirthdays returns how many birthdays the user has saved.
func (db *DB) CountBirthdays(ctx context.Context, userID string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM birthdays WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count birthdays: %w", err)
	}
	return n, nil
}

// DeleteBirthday removes one of the user's birthdays.
// Returns ErrNotFound if there was nothing to delete.
func (db *DB) DeleteBirthday(ctx context.Context, userID, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM birthdays WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete birthday: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBirthday(row rowScanner) (*Birthday, error) {
	var b Birthday
	var notes sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&b.ID, &b.UserID, &b.Name,
		&b.LunarYear, &b.LunarMonth, &b.LunarDay, &b.IsLeapMonth,
		&b.SolarDate, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		b.Notes = &notes.String
	}
	b.CreatedAt = parseTimestamp(createdAt)
	b.UpdatedAt = parseTimestamp(updatedAt)
	return &b, nil
}
