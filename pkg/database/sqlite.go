package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/config"
)

// NewSQLite opens the file-backed store and ensures the schema exists.
func NewSQLite(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=%d",
		cfg.Path,
		cfg.BusyTimeout.Milliseconds(),
	)

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema idempotently. The sqlite3 driver executes only
// the first statement of a multi-statement string, so each DDL runs on its own.
func Migrate(db *sqlx.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id                TEXT PRIMARY KEY,
    email             TEXT NOT NULL UNIQUE,
    first_name        TEXT NOT NULL,
    last_name         TEXT NOT NULL,
    phone             TEXT NOT NULL DEFAULT '',
    country           TEXT NOT NULL DEFAULT '',
    age               INTEGER,
    emergency_contact TEXT,
    created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS registrations (
    id                   TEXT PRIMARY KEY,
    user_id              TEXT NOT NULL REFERENCES users(id),
    status               TEXT NOT NULL DEFAULT 'pending'
                             CHECK(status IN ('draft','pending','approved','rejected','cancelled')),
    step                 INTEGER NOT NULL DEFAULT 4,
    interested_in        TEXT NOT NULL,
    timeframe            TEXT NOT NULL DEFAULT '',
    group_type           TEXT NOT NULL DEFAULT '',
    fitness_level        INTEGER NOT NULL DEFAULT 3,
    hiking_experience    TEXT NOT NULL DEFAULT '',
    longest_hike         REAL NOT NULL DEFAULT 0,
    medical_conditions   TEXT,
    dietary_requirements TEXT,
    special_needs        TEXT NOT NULL DEFAULT '',
    preferred_dates      TEXT,
    motivation           TEXT NOT NULL DEFAULT '',
    goals                TEXT,
    how_did_you_hear     TEXT NOT NULL DEFAULT '',
    newsletter           INTEGER NOT NULL DEFAULT 0,
    terms_accepted       INTEGER NOT NULL DEFAULT 0,
    data_processing      INTEGER NOT NULL DEFAULT 0,
    created_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_registrations_user ON registrations(user_id);

CREATE INDEX IF NOT EXISTS idx_registrations_status ON registrations(status);

CREATE TABLE IF NOT EXISTS routes (
    id          TEXT PRIMARY KEY,
    slug        TEXT NOT NULL UNIQUE,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    distance_km REAL NOT NULL DEFAULT 0,
    difficulty  TEXT NOT NULL DEFAULT 'moderate'
                    CHECK(difficulty IN ('easy','moderate','hard','expert')),
    gpx_data    TEXT,
    markers     TEXT,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS analytics_events (
    id         TEXT PRIMARY KEY,
    event_type TEXT NOT NULL,
    event_data TEXT,
    session_id TEXT NOT NULL DEFAULT '',
    user_id    TEXT,
    ip_address TEXT NOT NULL DEFAULT '',
    user_agent TEXT NOT NULL DEFAULT '',
    referrer   TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_analytics_session ON analytics_events(session_id);

CREATE INDEX IF NOT EXISTS idx_analytics_type_time ON analytics_events(event_type, created_at);
`
