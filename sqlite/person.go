package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/langex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ langex.PersonStore = (*PersonStore)(nil)

// PersonStore implements langex.PersonStore using SQLite.
// Every saved run is appended; persons are never merged across runs.
type PersonStore struct {
	db *DB
}

// NewPersonStore creates a new PersonStore.
func NewPersonStore(db *DB) *PersonStore {
	return &PersonStore{db: db}
}

// RecordHash returns the xxHash of the person's JSON encoding as hex.
// Identical records hash identically across runs.
func RecordHash(p *langex.Person) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b)), nil
}

// SaveRun stores the run and its persons in a single transaction.
// The run's ID is generated and StartedAt defaults to now.
func (s *PersonStore) SaveRun(ctx context.Context, run *langex.Run, persons []*langex.Person) error {
	for _, p := range persons {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	run.ID = uuid.New().String()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, base_url, begin_page, end_page, pages, stop_reason, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.BaseURL, run.Begin, run.End, run.Pages, string(run.Stop),
		run.StartedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, p := range persons {
		speaks, err := json.Marshal(p.Speaks)
		if err != nil {
			return err
		}
		looksFor, err := json.Marshal(p.LooksFor)
		if err != nil {
			return err
		}
		hash, err := RecordHash(p)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO persons (id, run_id, position, name, city, country, speaks, looks_for, url, record_hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), run.ID, i, p.Name, p.City, p.Country, string(speaks), string(looksFor),
			p.URL, hash); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindPersons returns the persons of a run in crawl order.
// Returns ENOTFOUND if the run does not exist.
func (s *PersonStore) FindPersons(ctx context.Context, runID string) ([]*langex.Person, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM runs WHERE id = ?", runID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, langex.Errorf(langex.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, city, country, speaks, looks_for, url
		FROM persons
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := []*langex.Person{}
	for rows.Next() {
		var p langex.Person
		var city sql.NullString
		var speaks, looksFor string

		if err := rows.Scan(&p.Name, &city, &p.Country, &speaks, &looksFor, &p.URL); err != nil {
			return nil, err
		}
		if city.Valid {
			p.City = &city.String
		}
		if err := json.Unmarshal([]byte(speaks), &p.Speaks); err != nil {
			return nil, fmt.Errorf("failed to decode speaks: %w", err)
		}
		if err := json.Unmarshal([]byte(looksFor), &p.LooksFor); err != nil {
			return nil, fmt.Errorf("failed to decode looks_for: %w", err)
		}

		persons = append(persons, &p)
	}

	return persons, rows.Err()
}
