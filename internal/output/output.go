// Package output renders the catalog into the playlist and guide documents
// served to players.
package output

import (
	"context"
	"time"

	"m3u_manager/internal/domain"
)

type ChannelLister interface {
	ListEnabledWithUrls(ctx context.Context) ([]*domain.Channel, error)
}

type GuideLister interface {
	ListUpcoming(ctx context.Context, now time.Time) ([]domain.EpgEntry, error)
}

type Service struct {
	channels ChannelLister
	epg      GuideLister
}

func NewService(channels ChannelLister, epg GuideLister) *Service {
	return &Service{channels: channels, epg: epg}
}
