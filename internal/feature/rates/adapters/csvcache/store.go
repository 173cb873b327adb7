// Package csvcache persists bundle snapshots as CSV flat files.
package csvcache

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"econ_backend/internal/feature/rates/domain"
	"econ_backend/internal/feature/rates/domain/entity"
	"econ_backend/internal/feature/rates/usecase"
)

// snapshot columns, in order. Readers accept extra trailing columns.
var header = []string{"series_id", "date", "value"}

// Store reads and writes a bundle snapshot at a fixed path.
// There is no expiry: a snapshot stays valid until overwritten or deleted.
// Concurrent writers to the same path race and the last writer wins, but
// each write is an atomic rename so readers never see a torn file.
type Store struct {
	path string
}

// Compile-time check that Store implements SnapshotStore.
var _ usecase.SnapshotStore = (*Store)(nil)

// NewStore creates a snapshot store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Read loads the snapshot. A missing file is not an error: it returns
// (nil, false, nil). A file that exists but cannot be parsed into the
// expected schema returns an error wrapping domain.ErrCacheCorrupted.
func (s *Store) Read(ctx context.Context) ([]entity.Observation, bool, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", domain.ErrCacheCorrupted, s.path, err)
	}
	if len(records) == 0 || len(records[0]) < len(header) {
		return nil, false, fmt.Errorf("%w: %s: missing header", domain.ErrCacheCorrupted, s.path)
	}
	for i, col := range header {
		if records[0][i] != col {
			return nil, false, fmt.Errorf("%w: %s: unexpected header %q", domain.ErrCacheCorrupted, s.path, records[0])
		}
	}

	obs := make([]entity.Observation, 0, len(records)-1)
	for _, rec := range records[1:] {
		o := entity.Observation{SeriesID: rec[0]}

		date, err := time.Parse(entity.DateLayout, rec[1])
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s: bad date %q", domain.ErrCacheCorrupted, s.path, rec[1])
		}
		o.Date = date

		// An empty value field round-trips as a missing value
		if rec[2] != "" {
			v, err := strconv.ParseFloat(rec[2], 64)
			if err != nil {
				return nil, false, fmt.Errorf("%w: %s: bad value %q", domain.ErrCacheCorrupted, s.path, rec[2])
			}
			o.Value = &v
		}

		obs = append(obs, o)
	}
	return obs, true, nil
}

// Write replaces the snapshot with the full current data set. The parent
// directory is created if needed, and the file is written to a temp path
// then renamed into place.
func (s *Store) Write(ctx context.Context, obs []entity.Observation) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return err
	}
	for _, o := range obs {
		value := ""
		if o.Value != nil {
			value = strconv.FormatFloat(*o.Value, 'f', -1, 64)
		}
		rec := []string{o.SeriesID, o.Date.Format(entity.DateLayout), value}
		if err := w.Write(rec); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
