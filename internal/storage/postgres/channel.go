package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"m3u_manager/internal/domain"
)

type ChannelStore struct {
	db *sqlx.DB
}

func NewChannelStore(db *sqlx.DB) *ChannelStore {
	return &ChannelStore{db: db}
}

const channelColumns = `id, name, category, tvg_id, tvg_name, logo_url, channel_num, enabled, last_seen`

// GetByKeys returns channels whose tvg_id or name matches any of keys, with
// their urls eager-loaded.
func (s *ChannelStore) GetByKeys(ctx context.Context, keys []string) ([]*domain.Channel, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	var rows []domain.Channel
	query := `SELECT ` + channelColumns + ` FROM channels WHERE tvg_id = ANY($1) OR name = ANY($1)`
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &rows, query, pq.Array(keys)); err != nil {
		return nil, err
	}

	channels := toPointers(rows)
	if err := s.loadUrls(ctx, channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (s *ChannelStore) ListAll(ctx context.Context) ([]*domain.Channel, error) {
	var rows []domain.Channel
	query := `SELECT ` + channelColumns + ` FROM channels ORDER BY id`
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &rows, query); err != nil {
		return nil, err
	}
	return toPointers(rows), nil
}

// ListEnabledWithUrls returns enabled channels ordered by category then name,
// with urls attached, for playlist generation.
func (s *ChannelStore) ListEnabledWithUrls(ctx context.Context) ([]*domain.Channel, error) {
	var rows []domain.Channel
	query := `SELECT ` + channelColumns + ` FROM channels WHERE enabled ORDER BY category NULLS LAST, name`
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &rows, query); err != nil {
		return nil, err
	}

	channels := toPointers(rows)
	if err := s.loadUrls(ctx, channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (s *ChannelStore) loadUrls(ctx context.Context, channels []*domain.Channel) error {
	if len(channels) == 0 {
		return nil
	}
	ids := make([]int64, len(channels))
	byID := make(map[int64]*domain.Channel, len(channels))
	for i, ch := range channels {
		ids[i] = ch.ID
		byID[ch.ID] = ch
	}

	var urls []domain.Url
	query := `SELECT id, url, channel_id, last_seen FROM urls WHERE channel_id = ANY($1) ORDER BY id`
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &urls, query, pq.Array(ids)); err != nil {
		return err
	}
	for _, u := range urls {
		ch := byID[u.ChannelID]
		ch.Urls = append(ch.Urls, u)
	}
	return nil
}

func (s *ChannelStore) Create(ctx context.Context, ch *domain.Channel) (int64, error) {
	query := `
		INSERT INTO channels (name, category, tvg_id, tvg_name, logo_url, channel_num, enabled, last_seen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := executor(ctx, s.db).QueryRowxContext(ctx, query,
		ch.Name, ch.Category, ch.TvgID, ch.TvgName, ch.LogoURL, ch.ChannelNum, ch.Enabled, ch.LastSeen,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *ChannelStore) Update(ctx context.Context, ch *domain.Channel) error {
	query := `
		UPDATE channels SET
			name = $2,
			category = $3,
			tvg_id = $4,
			tvg_name = $5,
			logo_url = $6,
			channel_num = $7,
			last_seen = $8
		WHERE id = $1`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		ch.ID, ch.Name, ch.Category, ch.TvgID, ch.TvgName, ch.LogoURL, ch.ChannelNum, ch.LastSeen,
	)
	return err
}

// BackfillIdentity fills tvg_id and logo_url only where they are currently
// null; values set by playlist ingestion win over guide hints.
func (s *ChannelStore) BackfillIdentity(ctx context.Context, id int64, tvgID, logoURL *string) error {
	query := `
		UPDATE channels SET
			tvg_id = COALESCE(tvg_id, $2),
			logo_url = COALESCE(logo_url, $3)
		WHERE id = $1`

	_, err := executor(ctx, s.db).ExecContext(ctx, query, id, tvgID, logoURL)
	return err
}

func (s *ChannelStore) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	res, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE channels SET enabled = $2 WHERE id = $1`, id, enabled)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrChannelNotFound
	}
	return nil
}

func (s *ChannelStore) BulkSetEnabled(ctx context.Context, ids []int64, enabled bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE channels SET enabled = $2 WHERE id = ANY($1) AND enabled <> $2`,
		pq.Array(ids), enabled)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *ChannelStore) DisableAll(ctx context.Context) (int64, error) {
	res, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE channels SET enabled = FALSE WHERE enabled`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *ChannelStore) DeleteStaleOrphans(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM channels
		WHERE last_seen < $1
		  AND NOT EXISTS (SELECT 1 FROM urls WHERE urls.channel_id = channels.id)`

	res, err := executor(ctx, s.db).ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func toPointers(rows []domain.Channel) []*domain.Channel {
	channels := make([]*domain.Channel, len(rows))
	for i := range rows {
		channels[i] = &rows[i]
	}
	return channels
}
