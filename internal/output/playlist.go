package output

import (
	"context"
	"fmt"
	"strings"

	"m3u_manager/internal/domain"
)

// Playlist renders the enabled channels as an extended M3U document. Each
// known stream url of a channel becomes its own entry, and the header carries
// a url-tvg pointer to the guide endpoint when epgURL is non-empty.
func (s *Service) Playlist(ctx context.Context, epgURL string) (string, error) {
	channels, err := s.channels.ListEnabledWithUrls(ctx)
	if err != nil {
		return "", fmt.Errorf("list enabled channels: %w", err)
	}

	var sb strings.Builder
	if epgURL != "" {
		fmt.Fprintf(&sb, "#EXTM3U url-tvg=\"%s\"\n", epgURL)
	} else {
		sb.WriteString("#EXTM3U\n")
	}

	for _, ch := range channels {
		for _, u := range ch.Urls {
			sb.WriteString(extinfLine(ch))
			sb.WriteByte('\n')
			sb.WriteString(u.URL)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

func extinfLine(ch *domain.Channel) string {
	parts := []string{"#EXTINF:-1"}

	if ch.TvgID != nil && *ch.TvgID != "" {
		parts = append(parts, fmt.Sprintf("tvg-id=\"%s\"", *ch.TvgID))
	}
	if ch.TvgName != nil && *ch.TvgName != "" {
		parts = append(parts, fmt.Sprintf("tvg-name=\"%s\"", *ch.TvgName))
	} else {
		parts = append(parts, fmt.Sprintf("tvg-name=\"%s\"", ch.Name))
	}
	if ch.LogoURL != nil && *ch.LogoURL != "" {
		parts = append(parts, fmt.Sprintf("tvg-logo=\"%s\"", *ch.LogoURL))
	}
	if ch.Category != nil && *ch.Category != "" {
		parts = append(parts, fmt.Sprintf("group-title=\"%s\"", *ch.Category))
	}
	if ch.ChannelNum != nil {
		parts = append(parts, fmt.Sprintf("tvg-chno=\"%d\"", *ch.ChannelNum))
	}

	return strings.Join(parts, " ") + "," + ch.Name
}
