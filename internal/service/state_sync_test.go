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

func strPtr(s string) *string { return &s }

type StateSynchronizerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	channels  *mocks.MockChannelStore
	filters   *mocks.MockFilterStore
	epg       *mocks.MockEpgStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	logger *slog.Logger
}

func (s *StateSynchronizerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.channels = mocks.NewMockChannelStore(s.ctrl)
	s.filters = mocks.NewMockFilterStore(s.ctrl)
	s.epg = mocks.NewMockEpgStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func (s *StateSynchronizerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStateSynchronizerTestSuite(t *testing.T) {
	suite.Run(t, new(StateSynchronizerTestSuite))
}

func (s *StateSynchronizerTestSuite) newSynchronizer(epgRule bool) *StateSynchronizer {
	return NewStateSynchronizer(s.channels, s.filters, s.epg, s.txManager, s.publisher, s.logger, epgRule)
}

func (s *StateSynchronizerTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *StateSynchronizerTestSuite) TestSynchronize_AppliesFilterRules() {
	ctx := context.Background()

	s.filters.EXPECT().ListEnabled(ctx).Return([]domain.Filter{
		{ID: 1, Pattern: "^FR:", Enabled: true},
	}, nil)

	s.channels.EXPECT().ListAll(ctx).Return([]*domain.Channel{
		{ID: 1, Name: "FR: TF1", Enabled: true},
		{ID: 2, Name: "BBC One", Enabled: false},
		{ID: 3, Name: "BBC Two", Enabled: true},
	}, nil)

	s.expectTransaction(ctx)
	s.channels.EXPECT().BulkSetEnabled(ctx, []int64{2}, true).Return(int64(1), nil)
	s.channels.EXPECT().BulkSetEnabled(ctx, []int64{1}, false).Return(int64(1), nil)

	s.publisher.EXPECT().PublishStateSynchronized(ctx, gomock.Any()).Return(nil)

	result, err := s.newSynchronizer(false).Synchronize(ctx)

	s.NoError(err)
	s.Equal(1, result.Enabled)
	s.Equal(1, result.Disabled)
}

func (s *StateSynchronizerTestSuite) TestSynchronize_ConsistentStateIsNoop() {
	ctx := context.Background()

	s.filters.EXPECT().ListEnabled(ctx).Return([]domain.Filter{
		{ID: 1, Pattern: "^FR:", Enabled: true},
	}, nil)

	s.channels.EXPECT().ListAll(ctx).Return([]*domain.Channel{
		{ID: 1, Name: "FR: TF1", Enabled: false},
		{ID: 2, Name: "BBC One", Enabled: true},
	}, nil)

	// no transaction, no publication

	result, err := s.newSynchronizer(false).Synchronize(ctx)

	s.NoError(err)
	s.Equal(0, result.Enabled)
	s.Equal(0, result.Disabled)
}

func (s *StateSynchronizerTestSuite) TestSynchronize_EpgPresenceRule() {
	ctx := context.Background()

	s.filters.EXPECT().ListEnabled(ctx).Return(nil, nil)
	s.epg.EXPECT().DistinctTvgIDs(ctx).Return([]string{"bbc1"}, nil)

	s.channels.EXPECT().ListAll(ctx).Return([]*domain.Channel{
		{ID: 1, Name: "BBC One", TvgID: strPtr("bbc1"), Enabled: true},
		{ID: 2, Name: "BBC Two", TvgID: strPtr("bbc2"), Enabled: true},
		{ID: 3, Name: "No Guide", Enabled: true},
	}, nil)

	s.expectTransaction(ctx)
	s.channels.EXPECT().BulkSetEnabled(ctx, []int64{2, 3}, false).Return(int64(2), nil)

	s.publisher.EXPECT().PublishStateSynchronized(ctx, gomock.Any()).Return(nil)

	result, err := s.newSynchronizer(true).Synchronize(ctx)

	s.NoError(err)
	s.Equal(0, result.Enabled)
	s.Equal(2, result.Disabled)
}

func (s *StateSynchronizerTestSuite) TestSynchronize_FilterLoadError() {
	ctx := context.Background()

	s.filters.EXPECT().ListEnabled(ctx).Return(nil, errors.New("db down"))

	_, err := s.newSynchronizer(false).Synchronize(ctx)
	s.Error(err)
}

func (s *StateSynchronizerTestSuite) TestSynchronize_PublishFailureIsNotFatal() {
	ctx := context.Background()

	s.filters.EXPECT().ListEnabled(ctx).Return([]domain.Filter{
		{ID: 1, Pattern: "^FR:", Enabled: true},
	}, nil)
	s.channels.EXPECT().ListAll(ctx).Return([]*domain.Channel{
		{ID: 1, Name: "FR: TF1", Enabled: true},
	}, nil)

	s.expectTransaction(ctx)
	s.channels.EXPECT().BulkSetEnabled(ctx, []int64{1}, false).Return(int64(1), nil)

	s.publisher.EXPECT().PublishStateSynchronized(ctx, gomock.Any()).Return(errors.New("broker gone"))

	result, err := s.newSynchronizer(false).Synchronize(ctx)
	s.NoError(err)
	s.Equal(1, result.Disabled)
}
