package reports

import (
	"context"
	"database/sql"
	"fmt"
)

// PGMirror persists the collection in Postgres. Writes stay wholesale to
// match the file mirror's contract: SaveAll replaces the table contents
// in one transaction.
type PGMirror struct {
	DB *sql.DB
}

// LoadAll returns the mirrored collection, newest first.
func (m *PGMirror) LoadAll(ctx context.Context) ([]Report, error) {
	const query = `
SELECT id, title, type, job_description, resume, analysis, html_content, view_count, created_at, updated_at
FROM reports
ORDER BY created_at DESC`

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	defer rows.Close()

	reports := []Report{}
	for rows.Next() {
		var r Report
		var jobDescription, resume, analysis, htmlContent sql.NullString
		if err := rows.Scan(
			&r.ID,
			&r.Title,
			&r.Type,
			&jobDescription,
			&resume,
			&analysis,
			&htmlContent,
			&r.ViewCount,
			&r.CreatedAt,
			&r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		r.JobDescription = jobDescription.String
		r.Resume = resume.String
		r.Analysis = analysis.String
		r.HTMLContent = htmlContent.String
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return reports, nil
}

// SaveAll replaces the whole table with the given collection.
func (m *PGMirror) SaveAll(ctx context.Context, reports []Report) error {
	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reports`); err != nil {
		return fmt.Errorf("clear reports: %w", err)
	}

	const insert = `
INSERT INTO reports (id, title, type, job_description, resume, analysis, html_content, view_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	for _, r := range reports {
		if _, err := tx.ExecContext(ctx, insert,
			r.ID,
			r.Title,
			string(r.Type),
			nullable(r.JobDescription),
			nullable(r.Resume),
			nullable(r.Analysis),
			nullable(r.HTMLContent),
			r.ViewCount,
			r.CreatedAt,
			r.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert report %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var _ Mirror = (*PGMirror)(nil)
