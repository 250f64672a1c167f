package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"m3u_manager/internal/domain"
	"m3u_manager/internal/matcher"
	"m3u_manager/internal/parser"
)

// M3USyncService reconciles one playlist feed against the channel catalog.
// Work is split into fixed-size key batches, each committed in its own
// transaction: a failing batch rolls back and aborts the run, but batches
// already committed stay applied.
type M3USyncService struct {
	sources   SourceStore
	channels  ChannelStore
	urls      UrlStore
	fetcher   Fetcher
	txManager TransactionManager
	state     *StateSynchronizer
	publisher Publisher
	logger    *slog.Logger
	batchSize int
}

func NewM3USyncService(
	sources SourceStore,
	channels ChannelStore,
	urls UrlStore,
	fetcher Fetcher,
	txManager TransactionManager,
	state *StateSynchronizer,
	publisher Publisher,
	logger *slog.Logger,
	batchSize int,
) *M3USyncService {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &M3USyncService{
		sources:   sources,
		channels:  channels,
		urls:      urls,
		fetcher:   fetcher,
		txManager: txManager,
		state:     state,
		publisher: publisher,
		logger:    logger,
		batchSize: batchSize,
	}
}

// Refresh fetches, parses, and reconciles the playlist source. Fetch and
// header failures abort before any write.
func (s *M3USyncService) Refresh(ctx context.Context, sourceID int64) (*domain.SyncStats, error) {
	src, err := s.sources.GetByID(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}

	startTime := time.Now().UTC()
	logger := s.logger.With("source_id", sourceID, "url", src.URL)
	logger.Info("starting m3u refresh")

	body, err := s.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch playlist: %w", err)
	}

	parsed, err := parser.ParseM3U(body)
	if err != nil {
		return nil, fmt.Errorf("parse playlist: %w", err)
	}
	logger.Info("parsed playlist", "channels", len(parsed))

	stats := &domain.SyncStats{
		SourceID: sourceID,
		Kind:     domain.SourceM3U,
		Parsed:   len(parsed),
	}

	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i := 0; i < len(keys); i += s.batchSize {
		end := i + s.batchSize
		if end > len(keys) {
			end = len(keys)
		}
		batch := keys[i:end]

		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.reconcileBatch(txCtx, batch, parsed, startTime, stats)
		})
		if err != nil {
			// Earlier batches stay committed; ingestion is not atomic
			// across the whole source.
			return stats, fmt.Errorf("reconcile batch %d: %w", i/s.batchSize, err)
		}
	}

	if err := s.sources.TouchLastChecked(ctx, sourceID, startTime); err != nil {
		return stats, fmt.Errorf("update last_checked: %w", err)
	}

	if _, err := s.state.Synchronize(ctx); err != nil {
		return stats, fmt.Errorf("synchronize state: %w", err)
	}

	stats.Duration = time.Since(startTime)

	if s.publisher != nil {
		if err := s.publisher.PublishSourceRefreshed(ctx, stats); err != nil {
			logger.Warn("failed to publish refresh event", "error", err)
		}
	}

	logger.Info("m3u refresh completed",
		"parsed", stats.Parsed,
		"channels_created", stats.ChannelsCreated,
		"channels_updated", stats.ChannelsUpdated,
		"urls_created", stats.UrlsCreated,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *M3USyncService) reconcileBatch(
	ctx context.Context,
	keys []string,
	parsed map[string]*parser.ParsedChannel,
	startTime time.Time,
	stats *domain.SyncStats,
) error {
	existing, err := s.channels.GetByKeys(ctx, keys)
	if err != nil {
		return fmt.Errorf("load channels: %w", err)
	}
	resolver := matcher.NewResolver(existing)

	for _, key := range keys {
		pc := parsed[key]

		ch := resolver.Resolve(pc.TvgID, pc.Name)
		if ch == nil {
			if err := s.createChannel(ctx, pc, startTime); err != nil {
				return err
			}
			stats.ChannelsCreated++
			stats.UrlsCreated += len(pc.URLs)
			continue
		}

		if err := s.updateChannel(ctx, ch, pc, startTime); err != nil {
			return err
		}
		stats.ChannelsUpdated++

		n, err := s.reconcileUrls(ctx, ch, pc, startTime)
		if err != nil {
			return err
		}
		stats.UrlsCreated += n
	}

	return nil
}

func (s *M3USyncService) createChannel(ctx context.Context, pc *parser.ParsedChannel, startTime time.Time) error {
	ch := &domain.Channel{
		Name:       pc.Name,
		Category:   optional(pc.Category),
		TvgID:      optional(pc.TvgID),
		TvgName:    optional(pc.TvgName),
		LogoURL:    optional(pc.LogoURL),
		ChannelNum: pc.ChannelNum,
		// Initial default only; the synchronizer owns this flag.
		Enabled:  true,
		LastSeen: startTime,
	}

	id, err := s.channels.Create(ctx, ch)
	if err != nil {
		return fmt.Errorf("create channel %q: %w", pc.Name, err)
	}
	ch.ID = id

	s.logger.Info("adding new channel", "name", pc.Name, "tvg_id", pc.TvgID)

	for url := range pc.URLs {
		if err := s.urls.Insert(ctx, &domain.Url{URL: url, ChannelID: id, LastSeen: startTime}); err != nil {
			return fmt.Errorf("insert url for channel %q: %w", pc.Name, err)
		}
	}
	return nil
}

func (s *M3USyncService) updateChannel(ctx context.Context, ch *domain.Channel, pc *parser.ParsedChannel, startTime time.Time) error {
	ch.Name = pc.Name
	ch.Category = optional(pc.Category)
	ch.TvgName = optional(pc.TvgName)
	ch.LogoURL = optional(pc.LogoURL)
	ch.ChannelNum = pc.ChannelNum
	ch.LastSeen = startTime
	if (ch.TvgID == nil || *ch.TvgID == "") && pc.TvgID != "" {
		ch.TvgID = &pc.TvgID
	}

	if err := s.channels.Update(ctx, ch); err != nil {
		return fmt.Errorf("update channel %q: %w", ch.Name, err)
	}
	return nil
}

// reconcileUrls inserts parsed urls the channel does not have yet and touches
// last_seen on the ones it does. Urls absent from this run are left alone;
// staleness-based deletion belongs to the cleanup job.
func (s *M3USyncService) reconcileUrls(ctx context.Context, ch *domain.Channel, pc *parser.ParsedChannel, startTime time.Time) (int, error) {
	existing := make(map[string]int64, len(ch.Urls))
	for _, u := range ch.Urls {
		existing[u.URL] = u.ID
	}

	created := 0
	var touch []int64
	for url := range pc.URLs {
		id, ok := existing[url]
		if !ok {
			if err := s.urls.Insert(ctx, &domain.Url{URL: url, ChannelID: ch.ID, LastSeen: startTime}); err != nil {
				return created, fmt.Errorf("insert url: %w", err)
			}
			created++
			continue
		}
		touch = append(touch, id)
	}
	if len(touch) > 0 {
		if err := s.urls.TouchLastSeen(ctx, touch, startTime); err != nil {
			return created, fmt.Errorf("touch urls: %w", err)
		}
	}
	return created, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
