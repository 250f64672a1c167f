package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"m3u_manager/internal/domain"
)

type UrlStore struct {
	db *sqlx.DB
}

func NewUrlStore(db *sqlx.DB) *UrlStore {
	return &UrlStore{db: db}
}

// Insert adds a stream url for a channel. A url already known for the same
// channel just gets its last_seen refreshed.
func (s *UrlStore) Insert(ctx context.Context, u *domain.Url) error {
	query := `
		INSERT INTO urls (url, channel_id, last_seen)
		VALUES ($1, $2, $3)
		ON CONFLICT (channel_id, url) DO UPDATE SET last_seen = EXCLUDED.last_seen`

	_, err := executor(ctx, s.db).ExecContext(ctx, query, u.URL, u.ChannelID, u.LastSeen)
	return err
}

func (s *UrlStore) TouchLastSeen(ctx context.Context, ids []int64, t time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE urls SET last_seen = $2 WHERE id = ANY($1)`, pq.Array(ids), t)
	return err
}

func (s *UrlStore) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := executor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM urls WHERE last_seen < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
