package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"m3u_manager/internal/domain"
)

type SourceStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Source, error)
	GetByURL(ctx context.Context, url string) (*domain.Source, error)
	List(ctx context.Context) ([]domain.Source, error)
	ListEnabled(ctx context.Context, kind domain.SourceKind) ([]domain.Source, error)
	Create(ctx context.Context, src *domain.Source) (int64, error)
	Delete(ctx context.Context, id int64) error
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	SetRefreshInterval(ctx context.Context, id int64, hours int) error
	TouchLastChecked(ctx context.Context, id int64, t time.Time) error
}

type ChannelStore interface {
	// GetByKeys returns channels whose tvg_id or name is in keys, with their
	// urls eager-loaded.
	GetByKeys(ctx context.Context, keys []string) ([]*domain.Channel, error)
	ListAll(ctx context.Context) ([]*domain.Channel, error)
	ListEnabledWithUrls(ctx context.Context) ([]*domain.Channel, error)
	Create(ctx context.Context, ch *domain.Channel) (int64, error)
	Update(ctx context.Context, ch *domain.Channel) error
	BackfillIdentity(ctx context.Context, id int64, tvgID, logoURL *string) error
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	BulkSetEnabled(ctx context.Context, ids []int64, enabled bool) (int64, error)
	DisableAll(ctx context.Context) (int64, error)
	// DeleteStaleOrphans removes channels with no urls left and a last_seen
	// older than cutoff.
	DeleteStaleOrphans(ctx context.Context, cutoff time.Time) (int64, error)
}

type UrlStore interface {
	Insert(ctx context.Context, u *domain.Url) error
	TouchLastSeen(ctx context.Context, ids []int64, t time.Time) error
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}

type EpgStore interface {
	DeleteByTvgIDs(ctx context.Context, tvgIDs []string) (int64, error)
	InsertBatch(ctx context.Context, entries []domain.EpgEntry) error
	DistinctTvgIDs(ctx context.Context) ([]string, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]domain.EpgEntry, error)
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type FilterStore interface {
	List(ctx context.Context) ([]domain.Filter, error)
	ListEnabled(ctx context.Context) ([]domain.Filter, error)
	GetByID(ctx context.Context, id int64) (*domain.Filter, error)
	GetByPattern(ctx context.Context, pattern string) (*domain.Filter, error)
	Create(ctx context.Context, f *domain.Filter) (int64, error)
	Delete(ctx context.Context, id int64) error
	SetEnabled(ctx context.Context, id int64, enabled bool) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Publisher interface {
	PublishSourceRefreshed(ctx context.Context, stats *domain.SyncStats) error
	PublishStateSynchronized(ctx context.Context, result *domain.SyncResult) error
	Close() error
}

// JobRunner lets administrative operations adjust the background schedule.
// Register/remove are idempotent; registering an already-known source
// replaces its job rather than duplicating it.
type JobRunner interface {
	ScheduleSource(src *domain.Source)
	UnscheduleSource(kind domain.SourceKind, id int64)
	RunSourceNow(src *domain.Source)
	RunSynchronizeNow()
}
