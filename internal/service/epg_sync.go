package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"m3u_manager/internal/domain"
	"m3u_manager/internal/matcher"
	"m3u_manager/internal/parser"
)

// EPGSyncService reconciles one XMLTV feed against the catalog. Guide entries
// for the tvg_ids the feed maps to are replaced wholesale: guide feeds are
// complete snapshots of their own time window, so a delete-and-insert is both
// simpler and correct. A feed that maps zero channels aborts before touching
// any entry.
type EPGSyncService struct {
	sources   SourceStore
	channels  ChannelStore
	epg       EpgStore
	fetcher   Fetcher
	txManager TransactionManager
	state     *StateSynchronizer
	publisher Publisher
	logger    *slog.Logger
}

func NewEPGSyncService(
	sources SourceStore,
	channels ChannelStore,
	epg EpgStore,
	fetcher Fetcher,
	txManager TransactionManager,
	state *StateSynchronizer,
	publisher Publisher,
	logger *slog.Logger,
) *EPGSyncService {
	return &EPGSyncService{
		sources:   sources,
		channels:  channels,
		epg:       epg,
		fetcher:   fetcher,
		txManager: txManager,
		state:     state,
		publisher: publisher,
		logger:    logger,
	}
}

type programKey struct {
	tvgID string
	start time.Time
	title string
}

// Refresh fetches, parses, and reconciles the guide source.
func (s *EPGSyncService) Refresh(ctx context.Context, sourceID int64) (*domain.SyncStats, error) {
	src, err := s.sources.GetByID(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}

	startTime := time.Now().UTC()
	logger := s.logger.With("source_id", sourceID, "url", src.URL)
	logger.Info("starting epg refresh")

	body, err := s.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch guide: %w", err)
	}

	feedChannels, programmes, err := parser.ParseXMLTV(body, startTime, logger)
	if err != nil {
		return nil, fmt.Errorf("parse guide: %w", err)
	}

	snapshot, err := s.channels.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}
	resolver := matcher.NewResolver(snapshot)

	// Map every feed channel id to a catalog tvg_id, backfilling missing
	// identity on the way. Backfills are committed before any programme work.
	feedToTvg := make(map[string]string, len(feedChannels))
	var backfills []*domain.Channel

	for _, fc := range feedChannels {
		ch := resolver.ResolveGuide(fc.ID, fc.DisplayName)
		if ch == nil {
			continue
		}
		changed := false
		if ch.TvgID == nil || *ch.TvgID == "" {
			id := fc.ID
			ch.TvgID = &id
			changed = true
		}
		if ch.LogoURL == nil && fc.IconSrc != "" {
			icon := fc.IconSrc
			ch.LogoURL = &icon
			changed = true
		}
		if changed {
			backfills = append(backfills, ch)
		}
		feedToTvg[fc.ID] = *ch.TvgID
	}

	if len(backfills) > 0 {
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			for _, ch := range backfills {
				if err := s.channels.BackfillIdentity(txCtx, ch.ID, ch.TvgID, ch.LogoURL); err != nil {
					return fmt.Errorf("backfill channel %d: %w", ch.ID, err)
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		logger.Info("backfilled channel identities", "count", len(backfills))
	}

	if len(feedToTvg) == 0 {
		logger.Warn("no guide channels mapped to catalog, aborting")
		return nil, domain.ErrNoChannelsMapped
	}
	logger.Info("mapped guide channels", "count", len(feedToTvg))

	mapped := make(map[string]struct{}, len(feedToTvg))
	tvgIDs := make([]string, 0, len(feedToTvg))
	for _, tvg := range feedToTvg {
		if _, ok := mapped[tvg]; ok {
			continue
		}
		mapped[tvg] = struct{}{}
		tvgIDs = append(tvgIDs, tvg)
	}

	// Dedupe on the entry uniqueness key before the bulk insert.
	entryByKey := make(map[programKey]domain.EpgEntry)
	skipped := 0
	for _, p := range programmes {
		tvg, ok := feedToTvg[p.Channel]
		if !ok {
			skipped++
			continue
		}
		key := programKey{tvgID: tvg, start: p.Start, title: p.Title}
		entryByKey[key] = domain.EpgEntry{
			ChannelTvgID: tvg,
			Title:        p.Title,
			StartTime:    p.Start,
			EndTime:      p.Stop,
			Description:  optional(p.Description),
		}
	}
	entries := make([]domain.EpgEntry, 0, len(entryByKey))
	for _, e := range entryByKey {
		entries = append(entries, e)
	}

	stats := &domain.SyncStats{
		SourceID:        sourceID,
		Kind:            domain.SourceEPG,
		Parsed:          len(programmes),
		EntriesReplaced: len(entries),
		Skipped:         skipped,
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		deleted, err := s.epg.DeleteByTvgIDs(txCtx, tvgIDs)
		if err != nil {
			return fmt.Errorf("delete stale entries: %w", err)
		}
		logger.Info("replacing guide entries", "deleted", deleted, "inserting", len(entries))
		if err := s.epg.InsertBatch(txCtx, entries); err != nil {
			return fmt.Errorf("insert entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return stats, err
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

	logger.Info("epg refresh completed",
		"programmes", stats.Parsed,
		"entries", stats.EntriesReplaced,
		"skipped", stats.Skipped,
		"duration", stats.Duration,
	)

	return stats, nil
}
