package service

import (
	"context"
	"fmt"
	"log/slog"

	"m3u_manager/internal/domain"
)

// AdminService carries the externally-invoked catalog operations: source and
// filter management, manual refreshes, and manual channel toggles. Mutations
// that affect the derived enabled state submit a re-synchronization job
// instead of recomputing inline.
type AdminService struct {
	sources  SourceStore
	filters  FilterStore
	channels ChannelStore
	jobs     JobRunner
	logger   *slog.Logger
}

func NewAdminService(
	sources SourceStore,
	filters FilterStore,
	channels ChannelStore,
	jobs JobRunner,
	logger *slog.Logger,
) *AdminService {
	return &AdminService{
		sources:  sources,
		filters:  filters,
		channels: channels,
		jobs:     jobs,
		logger:   logger,
	}
}

// --- sources ---

func (s *AdminService) ListSources(ctx context.Context) ([]domain.Source, error) {
	return s.sources.List(ctx)
}

func (s *AdminService) AddSource(ctx context.Context, kind domain.SourceKind, url string, intervalHours int) (*domain.Source, error) {
	if existing, err := s.sources.GetByURL(ctx, url); err == nil && existing != nil {
		return nil, domain.ErrDuplicateURL
	}
	if intervalHours < 1 {
		if kind == domain.SourceEPG {
			intervalHours = 12
		} else {
			intervalHours = 24
		}
	}

	src := &domain.Source{
		Kind:            kind,
		URL:             url,
		Enabled:         true,
		RefreshInterval: intervalHours,
	}
	id, err := s.sources.Create(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}
	src.ID = id

	s.jobs.ScheduleSource(src)
	s.logger.Info("source added", "kind", kind, "source_id", id, "url", url)
	return src, nil
}

func (s *AdminService) DeleteSource(ctx context.Context, id int64) error {
	src, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.jobs.UnscheduleSource(src.Kind, src.ID)
	if err := s.sources.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	s.logger.Info("source deleted", "source_id", id)
	return nil
}

// ToggleSource flips the source's enabled flag, scheduling or unscheduling
// its refresh job to match.
func (s *AdminService) ToggleSource(ctx context.Context, id int64) (*domain.Source, error) {
	src, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	src.Enabled = !src.Enabled
	if err := s.sources.SetEnabled(ctx, id, src.Enabled); err != nil {
		return nil, fmt.Errorf("toggle source: %w", err)
	}
	if src.Enabled {
		s.jobs.ScheduleSource(src)
	} else {
		s.jobs.UnscheduleSource(src.Kind, src.ID)
	}
	s.logger.Info("source toggled", "source_id", id, "enabled", src.Enabled)
	return src, nil
}

func (s *AdminService) UpdateSourceInterval(ctx context.Context, id int64, hours int) error {
	if hours < 1 {
		return fmt.Errorf("interval must be at least one hour")
	}
	src, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.sources.SetRefreshInterval(ctx, id, hours); err != nil {
		return fmt.Errorf("update interval: %w", err)
	}
	src.RefreshInterval = hours
	if src.Enabled {
		s.jobs.ScheduleSource(src)
	}
	s.logger.Info("source interval updated", "source_id", id, "hours", hours)
	return nil
}

// RefreshSource submits an immediate one-shot refresh, independent of the
// interval schedule.
func (s *AdminService) RefreshSource(ctx context.Context, id int64) error {
	src, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !src.Enabled {
		return domain.ErrSourceDisabled
	}
	s.jobs.RunSourceNow(src)
	return nil
}

// --- filters ---

func (s *AdminService) ListFilters(ctx context.Context) ([]domain.Filter, error) {
	return s.filters.List(ctx)
}

func (s *AdminService) AddFilter(ctx context.Context, pattern, description string, enabled bool) (*domain.Filter, error) {
	if err := domain.ValidatePattern(pattern); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPattern, err)
	}
	if existing, err := s.filters.GetByPattern(ctx, pattern); err == nil && existing != nil {
		return nil, domain.ErrDuplicatePattern
	}

	f := &domain.Filter{
		Pattern:     pattern,
		Description: optional(description),
		Enabled:     enabled,
	}
	id, err := s.filters.Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("create filter: %w", err)
	}
	f.ID = id

	s.jobs.RunSynchronizeNow()
	s.logger.Info("filter added", "filter_id", id, "pattern", pattern)
	return f, nil
}

func (s *AdminService) DeleteFilter(ctx context.Context, id int64) error {
	if _, err := s.filters.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.filters.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete filter: %w", err)
	}
	s.jobs.RunSynchronizeNow()
	s.logger.Info("filter deleted", "filter_id", id)
	return nil
}

func (s *AdminService) ToggleFilter(ctx context.Context, id int64) (*domain.Filter, error) {
	f, err := s.filters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Enabled = !f.Enabled
	if err := s.filters.SetEnabled(ctx, id, f.Enabled); err != nil {
		return nil, fmt.Errorf("toggle filter: %w", err)
	}
	s.jobs.RunSynchronizeNow()
	s.logger.Info("filter toggled", "filter_id", id, "enabled", f.Enabled)
	return f, nil
}

// --- channels ---

func (s *AdminService) ListChannels(ctx context.Context) ([]*domain.Channel, error) {
	return s.channels.ListAll(ctx)
}

// SetChannelEnabled is a manual override; the next synchronizer run may
// revert it if the rules disagree.
func (s *AdminService) SetChannelEnabled(ctx context.Context, id int64, enabled bool) error {
	return s.channels.SetEnabled(ctx, id, enabled)
}

func (s *AdminService) BulkSetChannelsEnabled(ctx context.Context, ids []int64, enabled bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.channels.BulkSetEnabled(ctx, ids, enabled)
}

func (s *AdminService) DisableAllChannels(ctx context.Context) (int64, error) {
	return s.channels.DisableAll(ctx)
}

// Resynchronize submits an immediate state synchronization job.
func (s *AdminService) Resynchronize(ctx context.Context) error {
	s.jobs.RunSynchronizeNow()
	return nil
}
