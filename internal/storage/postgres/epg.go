package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"m3u_manager/internal/domain"
)

// epgInsertChunk keeps multi-row inserts well under the postgres parameter
// limit (65535 / 5 columns).
const epgInsertChunk = 1000

type EpgStore struct {
	db *sqlx.DB
}

func NewEpgStore(db *sqlx.DB) *EpgStore {
	return &EpgStore{db: db}
}

func (s *EpgStore) DeleteByTvgIDs(ctx context.Context, tvgIDs []string) (int64, error) {
	if len(tvgIDs) == 0 {
		return 0, nil
	}
	res, err := executor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM epg_entries WHERE channel_tvg_id = ANY($1)`, pq.Array(tvgIDs))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *EpgStore) InsertBatch(ctx context.Context, entries []domain.EpgEntry) error {
	ex := executor(ctx, s.db)
	for start := 0; start < len(entries); start += epgInsertChunk {
		end := start + epgInsertChunk
		if end > len(entries) {
			end = len(entries)
		}
		if err := insertEpgChunk(ctx, ex, entries[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func insertEpgChunk(ctx context.Context, ex sqlx.ExtContext, entries []domain.EpgEntry) error {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO epg_entries (channel_tvg_id, title, start_time, end_time, description) VALUES `)

	args := make([]any, 0, len(entries)*5)
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 5
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5)
		args = append(args, e.ChannelTvgID, e.Title, e.StartTime, e.EndTime, e.Description)
	}
	sb.WriteString(` ON CONFLICT (channel_tvg_id, start_time, title) DO NOTHING`)

	_, err := ex.ExecContext(ctx, sb.String(), args...)
	return err
}

func (s *EpgStore) DistinctTvgIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := sqlx.SelectContext(ctx, executor(ctx, s.db), &ids,
		`SELECT DISTINCT channel_tvg_id FROM epg_entries`)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *EpgStore) ListUpcoming(ctx context.Context, now time.Time) ([]domain.EpgEntry, error) {
	var entries []domain.EpgEntry
	query := `
		SELECT id, channel_tvg_id, title, start_time, end_time, description
		FROM epg_entries
		WHERE end_time > $1
		ORDER BY channel_tvg_id, start_time`

	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &entries, query, now); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *EpgStore) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := executor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM epg_entries WHERE end_time < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
