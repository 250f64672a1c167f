package output

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m3u_manager/internal/domain"
)

type stubChannelLister struct {
	channels []*domain.Channel
	err      error
}

func (s *stubChannelLister) ListEnabledWithUrls(ctx context.Context) ([]*domain.Channel, error) {
	return s.channels, s.err
}

type stubGuideLister struct {
	entries []domain.EpgEntry
	err     error
}

func (s *stubGuideLister) ListUpcoming(ctx context.Context, now time.Time) ([]domain.EpgEntry, error) {
	return s.entries, s.err
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestPlaylist_RendersChannelPerUrl(t *testing.T) {
	channels := []*domain.Channel{
		{
			ID:         1,
			Name:       "BBC One",
			TvgID:      strPtr("bbc1"),
			TvgName:    strPtr("BBC One HD"),
			LogoURL:    strPtr("http://logos/bbc1.png"),
			Category:   strPtr("UK"),
			ChannelNum: intPtr(101),
			Urls: []domain.Url{
				{ID: 10, URL: "http://stream/bbc1/main"},
				{ID: 11, URL: "http://stream/bbc1/backup"},
			},
		},
	}
	svc := NewService(&stubChannelLister{channels: channels}, &stubGuideLister{})

	got, err := svc.Playlist(context.Background(), "http://localhost:8080/epg.xml")
	require.NoError(t, err)

	want := `#EXTM3U url-tvg="http://localhost:8080/epg.xml"
#EXTINF:-1 tvg-id="bbc1" tvg-name="BBC One HD" tvg-logo="http://logos/bbc1.png" group-title="UK" tvg-chno="101",BBC One
http://stream/bbc1/main
#EXTINF:-1 tvg-id="bbc1" tvg-name="BBC One HD" tvg-logo="http://logos/bbc1.png" group-title="UK" tvg-chno="101",BBC One
http://stream/bbc1/backup
`
	assert.Equal(t, want, got)
}

func TestPlaylist_NameFallsBackWhenIdentityMissing(t *testing.T) {
	channels := []*domain.Channel{
		{
			ID:   2,
			Name: "Local News",
			Urls: []domain.Url{{ID: 20, URL: "http://stream/local"}},
		},
	}
	svc := NewService(&stubChannelLister{channels: channels}, &stubGuideLister{})

	got, err := svc.Playlist(context.Background(), "")
	require.NoError(t, err)

	want := `#EXTM3U
#EXTINF:-1 tvg-name="Local News",Local News
http://stream/local
`
	assert.Equal(t, want, got)
}

func TestPlaylist_EmptyCatalog(t *testing.T) {
	svc := NewService(&stubChannelLister{}, &stubGuideLister{})

	got, err := svc.Playlist(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "#EXTM3U\n", got)
}

func TestPlaylist_ListError(t *testing.T) {
	svc := NewService(&stubChannelLister{err: errors.New("db down")}, &stubGuideLister{})

	_, err := svc.Playlist(context.Background(), "")
	assert.Error(t, err)
}

func TestEpgXML_GroupsProgrammesByChannel(t *testing.T) {
	start := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	channels := []*domain.Channel{
		{
			ID:      1,
			Name:    "BBC One",
			TvgID:   strPtr("bbc1"),
			LogoURL: strPtr("http://logos/bbc1.png"),
		},
		{
			// no tvg_id, so no guide identity
			ID:   2,
			Name: "Local News",
		},
	}
	entries := []domain.EpgEntry{
		{
			ChannelTvgID: "bbc1",
			Title:        "News & Weather",
			StartTime:    start,
			EndTime:      start.Add(time.Hour),
			Description:  strPtr("Evening bulletin"),
		},
		{
			ChannelTvgID: "bbc1",
			Title:        "Film Night",
			StartTime:    start.Add(time.Hour),
			EndTime:      start.Add(3 * time.Hour),
		},
	}
	svc := NewService(&stubChannelLister{channels: channels}, &stubGuideLister{entries: entries})

	raw, err := svc.EpgXML(context.Background(), start)
	require.NoError(t, err)
	got := string(raw)

	assert.Contains(t, got, `<channel id="bbc1">`)
	assert.Contains(t, got, `<display-name>BBC One</display-name>`)
	assert.Contains(t, got, `<icon src="http://logos/bbc1.png" />`)
	assert.NotContains(t, got, "Local News")

	assert.Contains(t, got, `<programme start="20260301200000 +0000" stop="20260301210000 +0000" channel="bbc1">`)
	assert.Contains(t, got, `<title lang="en">News &amp; Weather</title>`)
	assert.Contains(t, got, `<desc lang="en">Evening bulletin</desc>`)
	assert.Contains(t, got, `<programme start="20260301210000 +0000" stop="20260301230000 +0000" channel="bbc1">`)

	// second programme carries no description element
	tail := got[strings.Index(got, "Film Night"):]
	assert.NotContains(t, tail, "<desc")

	assert.True(t, strings.HasPrefix(got, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.True(t, strings.HasSuffix(got, "</tv>\n"))
}

func TestEpgXML_OrphanGuideEntriesAreDropped(t *testing.T) {
	start := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	channels := []*domain.Channel{
		{ID: 1, Name: "BBC One", TvgID: strPtr("bbc1")},
	}
	entries := []domain.EpgEntry{
		{ChannelTvgID: "ghost", Title: "Nowhere", StartTime: start, EndTime: start.Add(time.Hour)},
	}
	svc := NewService(&stubChannelLister{channels: channels}, &stubGuideLister{entries: entries})

	raw, err := svc.EpgXML(context.Background(), start)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "ghost")
}

func TestEpgXML_GuideListError(t *testing.T) {
	svc := NewService(&stubChannelLister{}, &stubGuideLister{err: errors.New("db down")})

	_, err := svc.EpgXML(context.Background(), time.Now())
	assert.Error(t, err)
}
