package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"m3u_manager/internal/domain"
)

// M3URefresher reconciles one playlist source.
type M3URefresher interface {
	Refresh(ctx context.Context, sourceID int64) (*domain.SyncStats, error)
}

// EPGRefresher reconciles one guide source.
type EPGRefresher interface {
	Refresh(ctx context.Context, sourceID int64) (*domain.SyncStats, error)
}

// Synchronizer recomputes channel enabled state.
type Synchronizer interface {
	Synchronize(ctx context.Context) (*domain.SyncResult, error)
}

// Jobs binds the ingestion services to the scheduler. It implements the
// service layer's JobRunner.
type Jobs struct {
	sched  *Scheduler
	m3u    M3URefresher
	epg    EPGRefresher
	state  Synchronizer
	logger *slog.Logger
}

func NewJobs(sched *Scheduler, m3u M3URefresher, epg EPGRefresher, state Synchronizer, logger *slog.Logger) *Jobs {
	return &Jobs{sched: sched, m3u: m3u, epg: epg, state: state, logger: logger}
}

func sourceKey(kind domain.SourceKind, id int64) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

// ScheduleSource arms (or replaces) the interval refresh job for a source.
func (j *Jobs) ScheduleSource(src *domain.Source) {
	hours := src.RefreshInterval
	if hours < 1 {
		hours = 1
	}
	interval := time.Duration(hours) * time.Hour
	id := src.ID
	kind := src.Kind

	j.sched.Register(sourceKey(kind, id), interval, func(ctx context.Context) error {
		return j.refresh(ctx, kind, id)
	})
}

// UnscheduleSource disarms a source's interval job.
func (j *Jobs) UnscheduleSource(kind domain.SourceKind, id int64) {
	j.sched.Remove(sourceKey(kind, id))
}

// RunSourceNow submits an immediate one-shot refresh for a source.
func (j *Jobs) RunSourceNow(src *domain.Source) {
	id := src.ID
	kind := src.Kind
	j.sched.RunNow("manual:"+sourceKey(kind, id), func(ctx context.Context) error {
		return j.refresh(ctx, kind, id)
	})
}

// RunSynchronizeNow submits an immediate state synchronization.
func (j *Jobs) RunSynchronizeNow() {
	j.sched.RunNow("manual:synchronize", func(ctx context.Context) error {
		_, err := j.state.Synchronize(ctx)
		return err
	})
}

func (j *Jobs) refresh(ctx context.Context, kind domain.SourceKind, id int64) error {
	switch kind {
	case domain.SourceM3U:
		_, err := j.m3u.Refresh(ctx, id)
		return err
	case domain.SourceEPG:
		_, err := j.epg.Refresh(ctx, id)
		return err
	default:
		return fmt.Errorf("unknown source kind %q", kind)
	}
}
