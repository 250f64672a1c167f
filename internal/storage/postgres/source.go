package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"m3u_manager/internal/domain"
)

type SourceStore struct {
	db *sqlx.DB
}

func NewSourceStore(db *sqlx.DB) *SourceStore {
	return &SourceStore{db: db}
}

const sourceColumns = `id, kind, url, enabled, refresh_interval_hours, last_checked, created_at`

func (s *SourceStore) GetByID(ctx context.Context, id int64) (*domain.Source, error) {
	var src domain.Source
	query := `SELECT ` + sourceColumns + ` FROM sources WHERE id = $1`
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &src, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &src, nil
}

func (s *SourceStore) GetByURL(ctx context.Context, url string) (*domain.Source, error) {
	var src domain.Source
	query := `SELECT ` + sourceColumns + ` FROM sources WHERE url = $1`
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &src, query, url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &src, nil
}

func (s *SourceStore) List(ctx context.Context) ([]domain.Source, error) {
	var sources []domain.Source
	query := `SELECT ` + sourceColumns + ` FROM sources ORDER BY id`
	err := sqlx.SelectContext(ctx, executor(ctx, s.db), &sources, query)
	return sources, err
}

func (s *SourceStore) ListEnabled(ctx context.Context, kind domain.SourceKind) ([]domain.Source, error) {
	var sources []domain.Source
	query := `SELECT ` + sourceColumns + ` FROM sources WHERE kind = $1 AND enabled ORDER BY id`
	err := sqlx.SelectContext(ctx, executor(ctx, s.db), &sources, query, kind)
	return sources, err
}

func (s *SourceStore) Create(ctx context.Context, src *domain.Source) (int64, error) {
	query := `
		INSERT INTO sources (kind, url, enabled, refresh_interval_hours)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := executor(ctx, s.db).QueryRowxContext(ctx, query,
		src.Kind, src.URL, src.Enabled, src.RefreshInterval,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SourceStore) Delete(ctx context.Context, id int64) error {
	_, err := executor(ctx, s.db).ExecContext(ctx, `DELETE FROM sources WHERE id = $1`, id)
	return err
}

func (s *SourceStore) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	_, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE sources SET enabled = $2 WHERE id = $1`, id, enabled)
	return err
}

func (s *SourceStore) SetRefreshInterval(ctx context.Context, id int64, hours int) error {
	_, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE sources SET refresh_interval_hours = $2 WHERE id = $1`, id, hours)
	return err
}

func (s *SourceStore) TouchLastChecked(ctx context.Context, id int64, t time.Time) error {
	_, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE sources SET last_checked = $2 WHERE id = $1`, id, t)
	return err
}
