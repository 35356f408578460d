// internal/stats/sqlite.go
//
// SQLite-backed Store. The record stays a flat key→value shape: one row per
// counter, histogram buckets fanned out as guess_distro_0..5. Saves rewrite
// every key inside one transaction, mirroring the full-file overwrite of
// the JSON backend.

package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists the record in a single key-value table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (and creates if missing) the stats database.
// Configures busy timeout and WAL journaling like the rest of the pack.
func OpenSQLiteStore(dsn string) (*SQLiteStore, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS stats (
		key   TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	);`); err != nil {
		return nil, fmt.Errorf("create stats table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Load reads every key into a Record. An empty table reports an error so
// LoadOrDefault seeds and persists the zero record.
func (s *SQLiteStore) Load() (Record, error) {
	rows, err := s.db.Query(`SELECT key, value FROM stats`)
	if err != nil {
		return Record{}, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	kv := make(map[string]int)
	for rows.Next() {
		var k string
		var v int
		if err := rows.Scan(&k, &v); err != nil {
			return Record{}, err
		}
		kv[k] = v
	}
	if err := rows.Err(); err != nil {
		return Record{}, err
	}
	if len(kv) == 0 {
		return Record{}, fmt.Errorf("stats: empty record")
	}

	rec := Record{
		GamesPlayed:   kv["tot_games_played"],
		GamesWon:      kv["tot_games_won"],
		WinPercent:    kv["win_percent"],
		CurrentStreak: kv["current_streak"],
		MaxStreak:     kv["max_streak"],
		WordTracker:   kv["word_tracker"],
	}
	for i := 0; i < Buckets; i++ {
		rec.GuessDistro[i] = kv[bucketKey(i)]
	}
	return rec, nil
}

// Save rewrites the full record in one transaction.
func (s *SQLiteStore) Save(rec Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	put := func(k string, v int) error {
		_, err := tx.Exec(`INSERT INTO stats (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v)
		return err
	}

	pairs := map[string]int{
		"tot_games_played": rec.GamesPlayed,
		"tot_games_won":    rec.GamesWon,
		"win_percent":      rec.WinPercent,
		"current_streak":   rec.CurrentStreak,
		"max_streak":       rec.MaxStreak,
		"word_tracker":     rec.WordTracker,
	}
	for i := 0; i < Buckets; i++ {
		pairs[bucketKey(i)] = rec.GuessDistro[i]
	}
	for k, v := range pairs {
		if err := put(k, v); err != nil {
			return fmt.Errorf("save %s: %w", k, err)
		}
	}
	return tx.Commit()
}

func bucketKey(i int) string { return fmt.Sprintf("guess_distro_%d", i) }
