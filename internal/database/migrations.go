package database

// migration is one forward-only schema change. The highest applied version
// is kept in SQLite's user_version pragma.
type migration struct {
	version int
	name    string
	sql     string
}

// migrations must stay sorted by version; released entries are never edited.
var migrations = []migration{
	{1, "create birthdays", migrationV1Birthdays},
	{2, "birthday indexes", migrationV2BirthdayIndexes},
}

// migrationV1Birthdays creates the birthdays table.
//
// A birthday is stored by its lunar date; solar_date caches the solar day
// the person was born on so listings need not re-run the conversion.
const migrationV1Birthdays = `
CREATE TABLE IF NOT EXISTS birthdays (
    id TEXT PRIMARY KEY,

    -- API key hash, see api.GetUserID
    user_id TEXT NOT NULL,

    name TEXT NOT NULL,

    lunar_year INTEGER NOT NULL CHECK (lunar_year BETWEEN 1900 AND 2100),
    lunar_month INTEGER NOT NULL CHECK (lunar_month BETWEEN 1 AND 12),
    lunar_day INTEGER NOT NULL CHECK (lunar_day BETWEEN 1 AND 30),
    is_leap_month INTEGER NOT NULL DEFAULT 0 CHECK (is_leap_month IN (0, 1)),

    -- YYYY-MM-DD
    solar_date TEXT NOT NULL,

    notes TEXT,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    UNIQUE (user_id, name)
);
`

const migrationV2BirthdayIndexes = `
CREATE INDEX IF NOT EXISTS idx_birthdays_user
    ON birthdays(user_id, created_at);

-- Occurrence lookups group by lunar month and day.
CREATE INDEX IF NOT EXISTS idx_birthdays_lunar
    ON birthdays(lunar_month, lunar_day, is_leap_month);
`
