package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-search/internal/candidate"
)

// StoredCandidate is one roster row: the open-ended record plus storage
// metadata.
type StoredCandidate struct {
	ID        uuid.UUID        `json:"id"`
	Record    candidate.Record `json:"record"`
	Source    string           `json:"source,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// SaveCandidates inserts records and returns their row ids in input order.
func (s *Store) SaveCandidates(ctx context.Context, records []candidate.Record, source string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal candidate: %w", err)
		}

		var id uuid.UUID
		err = s.pool.QueryRow(ctx,
			`INSERT INTO candidates (payload, source) VALUES ($1, $2) RETURNING id`,
			payload, source,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to save candidate: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ReplaceRoster atomically replaces the whole roster with the given records.
func (s *Store) ReplaceRoster(ctx context.Context, records []candidate.Record, source string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM candidates`); err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}

	for _, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal candidate: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO candidates (payload, source) VALUES ($1, $2)`,
			payload, source,
		); err != nil {
			return fmt.Errorf("failed to insert candidate: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit roster replace: %w", err)
	}
	return nil
}

// ListCandidates returns every roster row in insertion order.
func (s *Store) ListCandidates(ctx context.Context) ([]StoredCandidate, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, payload, COALESCE(source, ''), created_at, updated_at
		 FROM candidates ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var out []StoredCandidate
	for rows.Next() {
		var row StoredCandidate
		var payload []byte
		if err := rows.Scan(&row.ID, &payload, &row.Source, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if err := json.Unmarshal(payload, &row.Record); err != nil {
			return nil, fmt.Errorf("failed to decode candidate payload: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return out, nil
}

// Records returns the stored roster as engine-ready records, in insertion
// order. Rows whose record resolves no identity of its own get the row id
// attached, so search results stay addressable.
func (s *Store) Records(ctx context.Context) ([]candidate.Record, error) {
	rows, err := s.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]candidate.Record, 0, len(rows))
	for _, row := range rows {
		rec := row.Record
		if rec == nil {
			rec = candidate.Record{}
		}
		if candidate.Identity(rec) == "" {
			rec["id"] = row.ID.String()
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetCandidate retrieves one roster row by id. A missing row returns nil, nil.
func (s *Store) GetCandidate(ctx context.Context, id uuid.UUID) (*StoredCandidate, error) {
	var row StoredCandidate
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, payload, COALESCE(source, ''), created_at, updated_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&row.ID, &payload, &row.Source, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if err := json.Unmarshal(payload, &row.Record); err != nil {
		return nil, fmt.Errorf("failed to decode candidate payload: %w", err)
	}
	return &row, nil
}

// DeleteCandidate removes one roster row.
func (s *Store) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

// CountCandidates reports the roster size.
func (s *Store) CountCandidates(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return n, nil
}
