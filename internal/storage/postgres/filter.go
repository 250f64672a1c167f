package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"m3u_manager/internal/domain"
)

type FilterStore struct {
	db *sqlx.DB
}

func NewFilterStore(db *sqlx.DB) *FilterStore {
	return &FilterStore{db: db}
}

const filterColumns = `id, pattern, description, enabled`

func (s *FilterStore) List(ctx context.Context) ([]domain.Filter, error) {
	var filters []domain.Filter
	query := `SELECT ` + filterColumns + ` FROM filters ORDER BY id`
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &filters, query); err != nil {
		return nil, err
	}
	return filters, nil
}

func (s *FilterStore) ListEnabled(ctx context.Context) ([]domain.Filter, error) {
	var filters []domain.Filter
	query := `SELECT ` + filterColumns + ` FROM filters WHERE enabled ORDER BY id`
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &filters, query); err != nil {
		return nil, err
	}
	return filters, nil
}

func (s *FilterStore) GetByID(ctx context.Context, id int64) (*domain.Filter, error) {
	var f domain.Filter
	query := `SELECT ` + filterColumns + ` FROM filters WHERE id = $1`
	if err := sqlx.GetContext(ctx, executor(ctx, s.db), &f, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFilterNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (s *FilterStore) GetByPattern(ctx context.Context, pattern string) (*domain.Filter, error) {
	var f domain.Filter
	query := `SELECT ` + filterColumns + ` FROM filters WHERE pattern = $1`
	if err := sqlx.GetContext(ctx, executor(ctx, s.db), &f, query, pattern); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFilterNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (s *FilterStore) Create(ctx context.Context, f *domain.Filter) (int64, error) {
	query := `
		INSERT INTO filters (pattern, description, enabled)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := executor(ctx, s.db).QueryRowxContext(ctx, query, f.Pattern, f.Description, f.Enabled).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *FilterStore) Delete(ctx context.Context, id int64) error {
	res, err := executor(ctx, s.db).ExecContext(ctx, `DELETE FROM filters WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrFilterNotFound
	}
	return nil
}

func (s *FilterStore) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	res, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE filters SET enabled = $2 WHERE id = $1`, id, enabled)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrFilterNotFound
	}
	return nil
}
