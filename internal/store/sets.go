package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"setdex/internal/analysis"
	"setdex/internal/setdex"
)

// GenerationSummary counts the exported rows of one generation.
type GenerationSummary struct {
	Generation string
	Subjects   int
	Sets       int
}

const insertSetSQL = `INSERT INTO sets (
	generation, subject, position, label, level, nature, ability, item,
	evs, ivs, move1, move2, move3, move4, run_id, exported_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// ReplaceGeneration deletes the rows of gen and inserts every set of dex in
// one transaction. It returns the number of rows written.
func (s *Store) ReplaceGeneration(ctx context.Context, gen, runID string, dex *setdex.Setdex) (int, error) {
	written := 0
	err := retryOnBusy(ctx, func() error {
		written = 0
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin export tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, "DELETE FROM sets WHERE generation = ?", gen); err != nil {
			return fmt.Errorf("clear generation %s: %w", gen, err)
		}

		stmt, err := tx.PrepareContext(ctx, insertSetSQL)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()

		exportedAt := time.Now().UTC().Format(time.RFC3339)
		for _, subject := range dex.Subjects() {
			for position, set := range dex.Sets(subject) {
				evs, err := encodeSpread(set.Details.EVs)
				if err != nil {
					return err
				}
				ivs, err := encodeSpread(set.Details.IVs)
				if err != nil {
					return err
				}
				d := set.Details
				if _, err := stmt.ExecContext(ctx,
					gen, subject, position, set.Label, d.Level, d.Nature, d.Ability, d.Item,
					evs, ivs, d.Moves[0], d.Moves[1], d.Moves[2], d.Moves[3], runID, exportedAt,
				); err != nil {
					return fmt.Errorf("insert %s %q: %w", subject, set.Label, err)
				}
				written++
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit export: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

// Sets returns the exported sets of one subject in insertion order.
func (s *Store) Sets(ctx context.Context, gen, subject string) ([]setdex.Set, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT label, level, nature, ability, item, evs, ivs,
		move1, move2, move3, move4
		FROM sets WHERE generation = ? AND subject = ? ORDER BY position`, gen, subject)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	var out []setdex.Set
	for rows.Next() {
		var (
			set      setdex.Set
			evs, ivs sql.NullString
		)
		d := &set.Details
		if err := rows.Scan(&set.Label, &d.Level, &d.Nature, &d.Ability, &d.Item, &evs, &ivs,
			&d.Moves[0], &d.Moves[1], &d.Moves[2], &d.Moves[3]); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		if d.EVs, err = decodeSpread(evs); err != nil {
			return nil, err
		}
		if d.IVs, err = decodeSpread(ivs); err != nil {
			return nil, err
		}
		out = append(out, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sets: %w", err)
	}
	return out, nil
}

// Summaries counts subjects and sets per exported generation.
func (s *Store) Summaries(ctx context.Context) ([]GenerationSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT generation, COUNT(DISTINCT subject), COUNT(1)
		FROM sets GROUP BY generation ORDER BY generation`)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	defer rows.Close()

	var out []GenerationSummary
	for rows.Next() {
		var summary GenerationSummary
		if err := rows.Scan(&summary.Generation, &summary.Subjects, &summary.Sets); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}
	return out, nil
}

func encodeSpread(spread analysis.Spread) (sql.NullString, error) {
	if spread == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(spread)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode spread: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func decodeSpread(value sql.NullString) (analysis.Spread, error) {
	if !value.Valid {
		return nil, nil
	}
	var spread analysis.Spread
	if err := json.Unmarshal([]byte(value.String), &spread); err != nil {
		return nil, fmt.Errorf("decode spread: %w", err)
	}
	return spread, nil
}
