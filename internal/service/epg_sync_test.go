package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"m3u_manager/internal/domain"
	"m3u_manager/internal/service/mocks"
)

type EPGSyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	sources   *mocks.MockSourceStore
	channels  *mocks.MockChannelStore
	epg       *mocks.MockEpgStore
	filters   *mocks.MockFilterStore
	fetcher   *mocks.MockFetcher
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	service *EPGSyncService
	logger  *slog.Logger
}

func (s *EPGSyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.sources = mocks.NewMockSourceStore(s.ctrl)
	s.channels = mocks.NewMockChannelStore(s.ctrl)
	s.epg = mocks.NewMockEpgStore(s.ctrl)
	s.filters = mocks.NewMockFilterStore(s.ctrl)
	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	state := NewStateSynchronizer(s.channels, s.filters, s.epg, s.txManager, s.publisher, s.logger, false)
	s.service = NewEPGSyncService(
		s.sources,
		s.channels,
		s.epg,
		s.fetcher,
		s.txManager,
		state,
		s.publisher,
		s.logger,
	)
}

func (s *EPGSyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEPGSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EPGSyncServiceTestSuite))
}

func (s *EPGSyncServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *EPGSyncServiceTestSuite) expectConsistentState(ctx context.Context, channels []*domain.Channel) {
	s.filters.EXPECT().ListEnabled(ctx).Return(nil, nil)
	s.channels.EXPECT().ListAll(ctx).Return(channels, nil)
}

const guideDoc = `<?xml version="1.0" encoding="UTF-8"?>
<tv>
  <channel id="bbc1">
    <display-name>BBC One</display-name>
  </channel>
  <programme start="20990101120000 +0000" stop="20990101130000 +0000" channel="bbc1">
    <title>Future News</title>
    <desc>Still far away.</desc>
  </programme>
  <programme start="20990101120000 +0000" stop="20990101130000 +0000" channel="bbc1">
    <title>Future News</title>
  </programme>
  <programme start="20990101130000 +0000" stop="20990101140000 +0000" channel="unknown">
    <title>Nobody Watches</title>
  </programme>
</tv>`

func (s *EPGSyncServiceTestSuite) TestRefresh_ReplacesEntriesForMappedChannels() {
	ctx := context.Background()
	src := &domain.Source{ID: 2, Kind: domain.SourceEPG, URL: "http://example.com/epg.xml", Enabled: true}

	catalog := []*domain.Channel{
		{ID: 10, Name: "BBC One", TvgID: strPtr("bbc1"), Enabled: true},
	}

	s.sources.EXPECT().GetByID(ctx, int64(2)).Return(src, nil)
	s.fetcher.EXPECT().Fetch(ctx, src.URL).Return([]byte(guideDoc), nil)
	s.channels.EXPECT().ListAll(ctx).Return(catalog, nil)

	s.expectTransaction(ctx)
	s.epg.EXPECT().DeleteByTvgIDs(ctx, []string{"bbc1"}).Return(int64(5), nil)
	s.epg.EXPECT().InsertBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entries []domain.EpgEntry) error {
			// the duplicate programme collapses on (tvg_id, start, title)
			s.Len(entries, 1)
			s.Equal("bbc1", entries[0].ChannelTvgID)
			s.Equal("Future News", entries[0].Title)
			return nil
		},
	)

	s.sources.EXPECT().TouchLastChecked(ctx, int64(2), gomock.Any()).Return(nil)
	s.expectConsistentState(ctx, catalog)
	s.publisher.EXPECT().PublishSourceRefreshed(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Refresh(ctx, 2)

	s.NoError(err)
	s.Equal(domain.SourceEPG, stats.Kind)
	s.Equal(3, stats.Parsed)
	s.Equal(1, stats.EntriesReplaced)
	s.Equal(1, stats.Skipped)
}

func (s *EPGSyncServiceTestSuite) TestRefresh_BackfillsMissingIdentity() {
	ctx := context.Background()
	src := &domain.Source{ID: 2, Kind: domain.SourceEPG, URL: "http://example.com/epg.xml", Enabled: true}

	// matched by normalized display name, no tvg_id yet
	catalog := []*domain.Channel{
		{ID: 10, Name: "BBC One", Enabled: true},
	}

	s.sources.EXPECT().GetByID(ctx, int64(2)).Return(src, nil)
	s.fetcher.EXPECT().Fetch(ctx, src.URL).Return([]byte(guideDoc), nil)
	s.channels.EXPECT().ListAll(ctx).Return(catalog, nil)

	// backfill transaction commits before the programme replacement
	s.expectTransaction(ctx)
	s.channels.EXPECT().BackfillIdentity(ctx, int64(10), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, tvgID, _ *string) error {
			s.Equal("bbc1", *tvgID)
			return nil
		},
	)

	s.expectTransaction(ctx)
	s.epg.EXPECT().DeleteByTvgIDs(ctx, []string{"bbc1"}).Return(int64(0), nil)
	s.epg.EXPECT().InsertBatch(ctx, gomock.Any()).Return(nil)

	s.sources.EXPECT().TouchLastChecked(ctx, int64(2), gomock.Any()).Return(nil)
	s.expectConsistentState(ctx, catalog)
	s.publisher.EXPECT().PublishSourceRefreshed(ctx, gomock.Any()).Return(nil)

	_, err := s.service.Refresh(ctx, 2)
	s.NoError(err)
}

func (s *EPGSyncServiceTestSuite) TestRefresh_NoMappedChannelsAborts() {
	ctx := context.Background()
	src := &domain.Source{ID: 2, Kind: domain.SourceEPG, URL: "http://example.com/epg.xml", Enabled: true}

	// nothing in the catalog resolves the feed's channels
	catalog := []*domain.Channel{
		{ID: 20, Name: "Totally Different", TvgID: strPtr("other")},
	}

	s.sources.EXPECT().GetByID(ctx, int64(2)).Return(src, nil)
	s.fetcher.EXPECT().Fetch(ctx, src.URL).Return([]byte(guideDoc), nil)
	s.channels.EXPECT().ListAll(ctx).Return(catalog, nil)

	// no deletes, no inserts, no last_checked update

	_, err := s.service.Refresh(ctx, 2)
	s.ErrorIs(err, domain.ErrNoChannelsMapped)
}

func (s *EPGSyncServiceTestSuite) TestRefresh_MalformedGuideAborts() {
	ctx := context.Background()
	src := &domain.Source{ID: 2, Kind: domain.SourceEPG, URL: "http://example.com/epg.xml", Enabled: true}

	s.sources.EXPECT().GetByID(ctx, int64(2)).Return(src, nil)
	s.fetcher.EXPECT().Fetch(ctx, src.URL).Return([]byte("<tv><programme"), nil)

	_, err := s.service.Refresh(ctx, 2)
	s.Error(err)
}
