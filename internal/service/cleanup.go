package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// CleanupService removes stale urls, channels orphaned by url cleanup, and
// expired guide entries. Staleness is judged by last_seen against a retention
// window, not by absence from any single refresh run.
type CleanupService struct {
	channels         ChannelStore
	urls             UrlStore
	epg              EpgStore
	txManager        TransactionManager
	logger           *slog.Logger
	channelRetention time.Duration
	epgRetention     time.Duration
}

func NewCleanupService(
	channels ChannelStore,
	urls UrlStore,
	epg EpgStore,
	txManager TransactionManager,
	logger *slog.Logger,
	channelRetention, epgRetention time.Duration,
) *CleanupService {
	return &CleanupService{
		channels:         channels,
		urls:             urls,
		epg:              epg,
		txManager:        txManager,
		logger:           logger,
		channelRetention: channelRetention,
		epgRetention:     epgRetention,
	}
}

// Run performs one cleanup pass.
func (s *CleanupService) Run(ctx context.Context) error {
	now := time.Now().UTC()
	channelCutoff := now.Add(-s.channelRetention)
	epgCutoff := now.Add(-s.epgRetention)

	var urlsDeleted, channelsDeleted int64
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		urlsDeleted, err = s.urls.DeleteStale(txCtx, channelCutoff)
		if err != nil {
			return fmt.Errorf("delete stale urls: %w", err)
		}
		channelsDeleted, err = s.channels.DeleteStaleOrphans(txCtx, channelCutoff)
		if err != nil {
			return fmt.Errorf("delete orphan channels: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	epgDeleted, err := s.epg.DeleteExpired(ctx, epgCutoff)
	if err != nil {
		return fmt.Errorf("delete expired entries: %w", err)
	}

	s.logger.Info("cleanup completed",
		"urls_deleted", urlsDeleted,
		"channels_deleted", channelsDeleted,
		"epg_deleted", epgDeleted,
	)

	return nil
}
