package service

import (
	"context"
	"fmt"
	"log/slog"

	"m3u_manager/internal/domain"
)

// StateSynchronizer recomputes every channel's derived enabled flag from the
// current filter set and, when active, the EPG-presence rule. It is a pure
// recomputation over a rule snapshot, not a diff against history: running it
// twice with no intervening catalog change updates zero rows the second time.
type StateSynchronizer struct {
	channels  ChannelStore
	filters   FilterStore
	epg       EpgStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	epgRule   bool
}

func NewStateSynchronizer(
	channels ChannelStore,
	filters FilterStore,
	epg EpgStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	epgRule bool,
) *StateSynchronizer {
	return &StateSynchronizer{
		channels:  channels,
		filters:   filters,
		epg:       epg,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		epgRule:   epgRule,
	}
}

// Synchronize loads a rule snapshot, computes the desired enabled state for
// every channel, and applies only the differences as set-based bulk updates.
func (s *StateSynchronizer) Synchronize(ctx context.Context) (*domain.SyncResult, error) {
	filters, err := s.filters.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("load filters: %w", err)
	}

	var tvgIDs []string
	if s.epgRule {
		tvgIDs, err = s.epg.DistinctTvgIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("load epg coverage: %w", err)
		}
	}

	rules := domain.NewRuleSet(filters, s.epgRule, tvgIDs)

	channels, err := s.channels.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load channels: %w", err)
	}

	var toEnable, toDisable []int64
	for _, ch := range channels {
		want := rules.ShouldEnable(ch)
		if want == ch.Enabled {
			continue
		}
		if want {
			toEnable = append(toEnable, ch.ID)
		} else {
			toDisable = append(toDisable, ch.ID)
		}
	}

	result := &domain.SyncResult{}
	if len(toEnable) == 0 && len(toDisable) == 0 {
		s.logger.Debug("state already consistent", "channels", len(channels))
		return result, nil
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if len(toEnable) > 0 {
			n, err := s.channels.BulkSetEnabled(txCtx, toEnable, true)
			if err != nil {
				return fmt.Errorf("enable channels: %w", err)
			}
			result.Enabled = int(n)
		}
		if len(toDisable) > 0 {
			n, err := s.channels.BulkSetEnabled(txCtx, toDisable, false)
			if err != nil {
				return fmt.Errorf("disable channels: %w", err)
			}
			result.Disabled = int(n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishStateSynchronized(ctx, result); err != nil {
			s.logger.Warn("failed to publish synchronization event", "error", err)
		}
	}

	s.logger.Info("state synchronized",
		"enabled", result.Enabled,
		"disabled", result.Disabled,
		"filters", len(filters),
		"epg_rule", s.epgRule,
	)

	return result, nil
}
