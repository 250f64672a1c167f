package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"m3u_manager/internal/domain"
	"m3u_manager/internal/service/mocks"
)

type M3USyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	sources   *mocks.MockSourceStore
	channels  *mocks.MockChannelStore
	urls      *mocks.MockUrlStore
	epg       *mocks.MockEpgStore
	filters   *mocks.MockFilterStore
	fetcher   *mocks.MockFetcher
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	service *M3USyncService
	logger  *slog.Logger
}

func (s *M3USyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.sources = mocks.NewMockSourceStore(s.ctrl)
	s.channels = mocks.NewMockChannelStore(s.ctrl)
	s.urls = mocks.NewMockUrlStore(s.ctrl)
	s.epg = mocks.NewMockEpgStore(s.ctrl)
	s.filters = mocks.NewMockFilterStore(s.ctrl)
	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	state := NewStateSynchronizer(s.channels, s.filters, s.epg, s.txManager, s.publisher, s.logger, false)
	s.service = NewM3USyncService(
		s.sources,
		s.channels,
		s.urls,
		s.fetcher,
		s.txManager,
		state,
		s.publisher,
		s.logger,
		500,
	)
}

func (s *M3USyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestM3USyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(M3USyncServiceTestSuite))
}

func (s *M3USyncServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

// expectConsistentState satisfies the synchronizer pass at the end of a
// refresh without any state change.
func (s *M3USyncServiceTestSuite) expectConsistentState(ctx context.Context, channels []*domain.Channel) {
	s.filters.EXPECT().ListEnabled(ctx).Return(nil, nil)
	s.channels.EXPECT().ListAll(ctx).Return(channels, nil)
}

func (s *M3USyncServiceTestSuite) TestRefresh_CreatesNewChannel() {
	ctx := context.Background()
	src := &domain.Source{ID: 1, Kind: domain.SourceM3U, URL: "http://example.com/list.m3u", Enabled: true}

	playlist := []byte(`#EXTM3U
#EXTINF:-1 tvg-id="bbc1" tvg-name="BBC One" group-title="UK",BBC One
http://example.com/bbc1
`)

	s.sources.EXPECT().GetByID(ctx, int64(1)).Return(src, nil)
	s.fetcher.EXPECT().Fetch(ctx, src.URL).Return(playlist, nil)

	s.expectTransaction(ctx)
	s.channels.EXPECT().GetByKeys(ctx, []string{"bbc1"}).Return(nil, nil)
	s.channels.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ch *domain.Channel) (int64, error) {
			s.Equal("BBC One", ch.Name)
			s.Equal("bbc1", *ch.TvgID)
			s.Equal("UK", *ch.Category)
			s.True(ch.Enabled)
			return 10, nil
		},
	)
	s.urls.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *domain.Url) error {
			s.Equal("http://example.com/bbc1", u.URL)
			s.Equal(int64(10), u.ChannelID)
			return nil
		},
	)

	s.sources.EXPECT().TouchLastChecked(ctx, int64(1), gomock.Any()).Return(nil)
	s.expectConsistentState(ctx, []*domain.Channel{
		{ID: 10, Name: "BBC One", TvgID: strPtr("bbc1"), Enabled: true},
	})
	s.publisher.EXPECT().PublishSourceRefreshed(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Refresh(ctx, 1)

	s.NoError(err)
	s.Equal(1, stats.Parsed)
	s.Equal(1, stats.ChannelsCreated)
	s.Equal(0, stats.ChannelsUpdated)
	s.Equal(1, stats.UrlsCreated)
}

func (s *M3USyncServiceTestSuite) TestRefresh_UpdatesExistingChannel() {
	ctx := context.Background()
	src := &domain.Source{ID: 1, Kind: domain.SourceM3U, URL: "http://example.com/list.m3u", Enabled: true}

	playlist := []byte(`#EXTM3U
#EXTINF:-1 tvg-id="bbc1" tvg-logo="http://logo/new.png",BBC One
http://example.com/bbc1/main
#EXTINF:-1 tvg-id="bbc1",BBC One
http://example.com/bbc1/backup
`)

	existing := &domain.Channel{
		ID:      10,
		Name:    "BBC One",
		TvgID:   strPtr("bbc1"),
		Enabled: true,
		Urls: []domain.Url{
			{ID: 100, URL: "http://example.com/bbc1/main", ChannelID: 10},
		},
	}

	s.sources.EXPECT().GetByID(ctx, int64(1)).Return(src, nil)
	s.fetcher.EXPECT().Fetch(ctx, src.URL).Return(playlist, nil)

	s.expectTransaction(ctx)
	s.channels.EXPECT().GetByKeys(ctx, []string{"bbc1"}).Return([]*domain.Channel{existing}, nil)
	s.channels.EXPECT().Update(ctx, existing).DoAndReturn(
		func(_ context.Context, ch *domain.Channel) error {
			s.Equal("http://logo/new.png", *ch.LogoURL)
			return nil
		},
	)
	// known url is touched, new one inserted
	s.urls.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *domain.Url) error {
			s.Equal("http://example.com/bbc1/backup", u.URL)
			return nil
		},
	)
	s.urls.EXPECT().TouchLastSeen(ctx, []int64{100}, gomock.Any()).Return(nil)

	s.sources.EXPECT().TouchLastChecked(ctx, int64(1), gomock.Any()).Return(nil)
	s.expectConsistentState(ctx, []*domain.Channel{existing})
	s.publisher.EXPECT().PublishSourceRefreshed(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Refresh(ctx, 1)

	s.NoError(err)
	s.Equal(0, stats.ChannelsCreated)
	s.Equal(1, stats.ChannelsUpdated)
	s.Equal(1, stats.UrlsCreated)
}

func (s *M3USyncServiceTestSuite) TestRefresh_InvalidPlaylistAbortsBeforeWrites() {
	ctx := context.Background()
	src := &domain.Source{ID: 1, Kind: domain.SourceM3U, URL: "http://example.com/list.m3u", Enabled: true}

	s.sources.EXPECT().GetByID(ctx, int64(1)).Return(src, nil)
	s.fetcher.EXPECT().Fetch(ctx, src.URL).Return([]byte("<html>not a playlist</html>"), nil)

	_, err := s.service.Refresh(ctx, 1)
	s.ErrorIs(err, domain.ErrInvalidPlaylist)
}

func (s *M3USyncServiceTestSuite) TestRefresh_FetchErrorAborts() {
	ctx := context.Background()
	src := &domain.Source{ID: 1, Kind: domain.SourceM3U, URL: "http://example.com/list.m3u", Enabled: true}

	s.sources.EXPECT().GetByID(ctx, int64(1)).Return(src, nil)
	s.fetcher.EXPECT().Fetch(ctx, src.URL).Return(nil, errors.New("connection refused"))

	_, err := s.service.Refresh(ctx, 1)
	s.Error(err)
}

func (s *M3USyncServiceTestSuite) TestRefresh_UnknownSource() {
	ctx := context.Background()

	s.sources.EXPECT().GetByID(ctx, int64(99)).Return(nil, domain.ErrSourceNotFound)

	_, err := s.service.Refresh(ctx, 99)
	s.ErrorIs(err, domain.ErrSourceNotFound)
}
