package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"reboot-engine/internal/domain"
)

// The store keeps RAW records. Normalization and classification are
// recomputed on every read, so nothing derived is persisted.

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  company TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  salary TEXT NOT NULL DEFAULT '',
  summary TEXT NOT NULL DEFAULT '',
  link TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL DEFAULT '',
  prefecture TEXT NOT NULL DEFAULT '',
  site_name TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at DESC);
`); err != nil {
		return err
	}
	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_site_name ON jobs(site_name);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// InsertJobIgnore inserts a raw record keyed by its link-hash id and
// reports whether it was new.
func InsertJobIgnore(ctx context.Context, db *sql.DB, r domain.RawJob) (added bool, err error) {
	siteName := r.SiteName
	if siteName == "" {
		siteName = r.Source
	}

	_, err = db.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs (id, title, company, location, salary, summary, link, url, prefecture, site_name, image_url, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		r.ID, r.Title, r.Company, r.Location, r.Salary, r.Summary, r.Link, r.URL, r.Prefecture,
		siteName, r.ImageURL, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("insert job: %w", err)
	}

	var changes int
	if e := db.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); e == nil {
		return changes > 0, nil
	}
	return true, nil
}

// ListServable returns the newest records restricted to the export
// allow-list, capped at limit.
func ListServable(ctx context.Context, db *sql.DB, sources []string, limit int) ([]domain.RawJob, error) {
	if limit <= 0 || limit > 2000 {
		limit = 2000
	}
	if len(sources) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(sources)), ",")
	query := fmt.Sprintf(`
SELECT id, title, company, location, salary, summary, link, url, prefecture, site_name, image_url
FROM jobs
WHERE site_name IN (%s)
ORDER BY created_at DESC
LIMIT ?;`, placeholders)

	args := make([]any, 0, len(sources)+1)
	for _, s := range sources {
		args = append(args, s)
	}
	args = append(args, limit)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RawJob
	for rows.Next() {
		r, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func GetJob(ctx context.Context, db *sql.DB, id string) (domain.RawJob, bool, error) {
	row := db.QueryRowContext(ctx, `
SELECT id, title, company, location, salary, summary, link, url, prefecture, site_name, image_url
FROM jobs
WHERE id = ?
LIMIT 1;`, id)

	r, err := scanJob(row)
	if err == sql.ErrNoRows {
		return domain.RawJob{}, false, nil
	}
	if err != nil {
		return domain.RawJob{}, false, err
	}
	return r, true, nil
}

// ListMissingSummary returns allow-listed records still waiting for
// detail enrichment, oldest first so backlog drains in order.
func ListMissingSummary(ctx context.Context, db *sql.DB, sources []string, limit int) ([]domain.RawJob, error) {
	if limit <= 0 {
		limit = 100
	}
	if len(sources) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(sources)), ",")
	query := fmt.Sprintf(`
SELECT id, title, company, location, salary, summary, link, url, prefecture, site_name, image_url
FROM jobs
WHERE site_name IN (%s) AND summary = '' AND link != ''
ORDER BY created_at ASC
LIMIT ?;`, placeholders)

	args := make([]any, 0, len(sources)+1)
	for _, s := range sources {
		args = append(args, s)
	}
	args = append(args, limit)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RawJob
	for rows.Next() {
		r, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func UpdateDetails(ctx context.Context, db *sql.DB, id, summary, imageURL string) error {
	_, err := db.ExecContext(ctx, `
UPDATE jobs
SET summary = CASE WHEN ? != '' THEN ? ELSE summary END,
    image_url = CASE WHEN ? != '' THEN ? ELSE image_url END
WHERE id = ?;`, summary, summary, imageURL, imageURL, id)
	if err != nil {
		return fmt.Errorf("update details: %w", err)
	}
	return nil
}

// CleanupOldJobs drops records older than the retention window.
func CleanupOldJobs(db *sql.DB, days int) (deleted int64, err error) {
	if days <= 0 {
		return 0, nil
	}
	res, err := db.Exec(fmt.Sprintf(`
DELETE FROM jobs
WHERE created_at < datetime('now', '-%d days');`, days))
	if err != nil {
		return 0, fmt.Errorf("cleanup old jobs: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (domain.RawJob, error) {
	var r domain.RawJob
	err := row.Scan(
		&r.ID, &r.Title, &r.Company, &r.Location, &r.Salary, &r.Summary,
		&r.Link, &r.URL, &r.Prefecture, &r.SiteName, &r.ImageURL,
	)
	return r, err
}
