package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Tpupu/resume-builder/resume/model"
)

// PGRepo implements Repo using Postgres. The normalized resume travels as a
// JSONB payload; name, email, and template are lifted into columns for
// listing.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new draft.
func (r *PGRepo) Create(ctx context.Context, d Draft) error {
	const query = `
INSERT INTO drafts (id, full_name, email, template, payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	payload, err := json.Marshal(d.Resume)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(
		ctx,
		query,
		d.ID,
		d.FullName,
		d.Email,
		d.Template,
		payload,
		d.CreatedAt,
	)
	return err
}

// GetByID returns a draft by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Draft, error) {
	const query = `
SELECT id, full_name, email, template, payload, created_at
FROM drafts
WHERE id = $1`

	var (
		d       Draft
		payload []byte
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID,
		&d.FullName,
		&d.Email,
		&d.Template,
		&payload,
		&d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Draft{}, ErrNotFound
		}
		return Draft{}, err
	}
	if err := json.Unmarshal(payload, &d.Resume); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// ListRecent returns up to limit drafts, newest first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Draft, error) {
	const query = `
SELECT id, full_name, email, template, payload, created_at
FROM drafts
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Draft
	for rows.Next() {
		var (
			d       Draft
			payload []byte
		)
		if err := rows.Scan(&d.ID, &d.FullName, &d.Email, &d.Template, &payload, &d.CreatedAt); err != nil {
			return nil, err
		}
		var res model.Resume
		if err := json.Unmarshal(payload, &res); err != nil {
			return nil, err
		}
		d.Resume = res
		out = append(out, d)
	}
	return out, rows.Err()
}
