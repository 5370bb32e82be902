// Package reference loads the authoritative paper registry from a CSV file
// and resolves reference rows by paper code.
package reference

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"

	"github.com/scholarly/paper-check-service/internal/domain"
)

// Required header columns of the reference CSV. A registry file without all
// of them is a fatal configuration problem, detected before any row is read.
const (
	columnTitle   = "title"
	columnPaper   = "paper"
	columnAuthors = "authors"
)

// Store is an in-memory snapshot of the reference registry, loaded once at
// startup. Lookups are read-only, so the store is safe for concurrent use.
type Store struct {
	rows    []domain.ReferenceRow
	byPaper map[string]domain.ReferenceRow
}

// Load reads the reference CSV at path and returns a Store. The registry is
// exported in ISO-8859-1, so the file is decoded through that charmap before
// parsing. Load fails with a ColumnNotFoundError if a required header column
// is missing, and with a path-naming error if the file cannot be opened.
func Load(path string, logger zerolog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("reference csv path is not configured: %w", domain.ErrReferenceUnavailable)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference csv at %s: %w", path, err)
	}
	defer f.Close()

	store, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("read reference csv at %s: %w", path, err)
	}

	logger.Info().
		Str("component", "reference-store").
		Str("path", path).
		Int("rows", len(store.rows)).
		Msg("reference registry loaded")

	return store, nil
}

func read(r io.Reader) (*Store, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("reference csv is empty: %w", domain.ErrReferenceUnavailable)
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}

	titleCol, err := columnIndex(header, columnTitle)
	if err != nil {
		return nil, err
	}
	paperCol, err := columnIndex(header, columnPaper)
	if err != nil {
		return nil, err
	}
	authorsCol, err := columnIndex(header, columnAuthors)
	if err != nil {
		return nil, err
	}

	store := &Store{byPaper: make(map[string]domain.ReferenceRow)}
	maxCol := titleCol
	if paperCol > maxCol {
		maxCol = paperCol
	}
	if authorsCol > maxCol {
		maxCol = authorsCol
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read data row: %w", err)
		}
		if len(record) <= maxCol {
			continue
		}
		row := domain.ReferenceRow{
			Paper:   record[paperCol],
			Title:   record[titleCol],
			Authors: record[authorsCol],
		}
		store.rows = append(store.rows, row)
		if _, exists := store.byPaper[row.Paper]; !exists {
			// First occurrence wins, matching a linear scan in file order.
			store.byPaper[row.Paper] = row
		}
	}

	return store, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, domain.NewColumnNotFoundError(name)
}

// Lookup returns the reference row whose paper column exactly equals code.
// The second return value reports whether a row was found.
func (s *Store) Lookup(code string) (domain.ReferenceRow, bool) {
	row, ok := s.byPaper[code]
	return row, ok
}

// Len returns the number of data rows in the registry.
func (s *Store) Len() int {
	return len(s.rows)
}
