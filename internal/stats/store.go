// internal/stats/store.go
//
// Persistence for the statistics record.
// Two backends share one interface:
//   - FileStore:   a single JSON document, overwritten in full on save.
//   - SQLiteStore: a flat key→value table (see sqlite.go).
//
// Load failures are recoverable by design: LoadOrDefault substitutes a
// zeroed record and appends the failure to the error log, so a missing or
// mangled stats file never blocks a game.

package stats

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/renameio/maybe"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Store reads and overwrites the persisted statistics record.
type Store interface {
	Load() (Record, error)
	Save(Record) error
}

// LoadOrDefault loads the record from st, degrading to a zeroed record when
// the store is missing or unreadable. The failure is appended to errlog and
// the fresh record is written back immediately so the next launch is clean.
func LoadOrDefault(st Store, errlog zerolog.Logger) Record {
	rec, err := st.Load()
	if err != nil {
		errlog.Error().Err(err).Msg("stats error")
		rec = Record{}
		if serr := st.Save(rec); serr != nil {
			errlog.Error().Err(serr).Msg("stats reset failed")
		}
	}
	return rec
}

// FileStore persists the record as one JSON file.
type FileStore struct {
	Path string
}

// NewFileStore returns a file-backed Store at path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Load reads and decodes the record. A missing file is an error here so
// that LoadOrDefault can log it once and seed the default.
func (s *FileStore) Load() (Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return Record{}, errors.Wrap(err, "could not open stats file")
	}
	defer f.Close()

	var rec Record
	if err := json.NewDecoder(f).Decode(&rec); err != nil {
		return Record{}, errors.Wrap(err, "could not decode stats file")
	}
	return rec, nil
}

// Save atomically (best effort) overwrites the record.
func (s *FileStore) Save(rec Record) error {
	dir := filepath.Dir(s.Path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "could not create data directory: %s", dir)
		}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "could not serialize stats")
	}
	if err := maybe.WriteFile(s.Path, data, 0o644); err != nil {
		return errors.Wrapf(err, "could not write stats file: %s", s.Path)
	}
	return nil
}

// OpenErrorLog opens the append-only error sink and returns a timestamped
// logger writing to it. The returned closer owns the file handle.
func OpenErrorLog(path string) (zerolog.Logger, func() error, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return zerolog.New(f).With().Timestamp().Logger(), f.Close, nil
}
