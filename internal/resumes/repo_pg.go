package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume row.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, raw_text, filename, created_at)
VALUES ($1, $2, $3, $4)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.RawText,
		resume.Filename,
		resume.CreatedAt,
	)
	return err
}

// GetByID fetches a resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT id, raw_text, filename, created_at
FROM resumes
WHERE id = $1
LIMIT 1`

	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&resume.ID,
		&resume.RawText,
		&resume.Filename,
		&resume.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
