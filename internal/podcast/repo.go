package podcast

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"contenthub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// ReplaceAll swaps the stored podcast set for the given one inside a single
// transaction, so a concurrent reader sees either the previous complete set
// or the new complete set, never a partially refreshed table. The insert is
// an upsert because the same show can appear in more than one locale's top
// list; the last occurrence wins.
func (r *Repo) ReplaceAll(ctx context.Context, items []models.CatalogPodcast) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM podcasts`); err != nil {
		return fmt.Errorf("clear podcasts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO podcasts (id, title, description, publisher, url, image_url, categories, locale, total_episodes, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
		  title = excluded.title,
		  description = excluded.description,
		  publisher = excluded.publisher,
		  url = excluded.url,
		  image_url = excluded.image_url,
		  categories = excluded.categories,
		  locale = excluded.locale,
		  total_episodes = excluded.total_episodes,
		  updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("prepare stmt: %w", err)
	}
	defer stmt.Close()

	for _, p := range items {
		catsJSON, err := json.Marshal(p.Categories)
		if err != nil {
			return fmt.Errorf("marshal categories for %s: %w", p.ID, err)
		}

		if _, err := stmt.ExecContext(
			ctx,
			p.ID,
			p.Title,
			p.Description,
			p.Publisher,
			p.URL,
			p.ImageURL,
			string(catsJSON),
			p.Locale,
			p.TotalEpisodes,
		); err != nil {
			return fmt.Errorf("exec upsert for %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.CatalogPodcast, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, title, description, publisher, url, image_url, categories, locale, total_episodes, updated_at
		FROM podcasts
		WHERE id = ?
	`, id)

	p, err := scanPodcast(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan getByID: %w", err)
	}
	return p, nil
}

func (r *Repo) List(ctx context.Context, locale string, limit, offset int) ([]models.CatalogPodcast, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	var countErr error
	if locale == "" {
		countErr = r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM podcasts`).Scan(&total)
	} else {
		countErr = r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM podcasts WHERE locale = ?`, locale).Scan(&total)
	}
	if countErr != nil {
		return nil, 0, fmt.Errorf("count podcasts: %w", countErr)
	}

	var rows *sql.Rows
	var err error
	if locale == "" {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT id, title, description, publisher, url, image_url, categories, locale, total_episodes, updated_at
			FROM podcasts
			ORDER BY title ASC
			LIMIT ? OFFSET ?
		`, limit, offset)
	} else {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT id, title, description, publisher, url, image_url, categories, locale, total_episodes, updated_at
			FROM podcasts
			WHERE locale = ?
			ORDER BY title ASC
			LIMIT ? OFFSET ?
		`, locale, limit, offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("list podcasts: %w", err)
	}
	defer rows.Close()

	out := make([]models.CatalogPodcast, 0, limit)
	for rows.Next() {
		p, err := scanPodcast(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("scan podcast row: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows err: %w", err)
	}

	return out, total, nil
}

func scanPodcast(scan func(...any) error) (*models.CatalogPodcast, error) {
	var (
		p           models.CatalogPodcast
		description sql.NullString
		publisher   sql.NullString
		u           sql.NullString
		imageURL    sql.NullString
		catsJSON    sql.NullString
		locale      sql.NullString
		episodes    sql.NullInt64
		updated     time.Time
	)

	if err := scan(
		&p.ID, &p.Title, &description, &publisher, &u, &imageURL, &catsJSON, &locale, &episodes, &updated,
	); err != nil {
		return nil, err
	}

	p.Description = description.String
	p.Publisher = publisher.String
	p.URL = u.String
	p.ImageURL = imageURL.String
	p.Locale = locale.String
	if episodes.Valid {
		p.TotalEpisodes = int(episodes.Int64)
	}
	p.UpdatedAt = updated
	if catsJSON.Valid {
		_ = json.Unmarshal([]byte(catsJSON.String), &p.Categories)
	}

	return &p, nil
}
