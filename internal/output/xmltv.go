package output

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"m3u_manager/internal/domain"
)

const xmltvTimeLayout = "20060102150405 -0700"

// EpgXML renders the programme guide for the enabled channels that carry a
// tvg_id. Programmes already finished by now are left out.
func (s *Service) EpgXML(ctx context.Context, now time.Time) ([]byte, error) {
	channels, err := s.channels.ListEnabledWithUrls(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled channels: %w", err)
	}
	entries, err := s.epg.ListUpcoming(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list upcoming programmes: %w", err)
	}

	byTvgID := make(map[string][]domain.EpgEntry)
	for _, e := range entries {
		byTvgID[e.ChannelTvgID] = append(byTvgID[e.ChannelTvgID], e)
	}

	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString("<tv>\n")

	guided := make([]*domain.Channel, 0, len(channels))
	for _, ch := range channels {
		if ch.TvgID == nil || *ch.TvgID == "" {
			continue
		}
		guided = append(guided, ch)
		fmt.Fprintf(&sb, "  <channel id=\"%s\">\n", escape(*ch.TvgID))
		fmt.Fprintf(&sb, "    <display-name>%s</display-name>\n", escape(ch.Name))
		if ch.LogoURL != nil && *ch.LogoURL != "" {
			fmt.Fprintf(&sb, "    <icon src=\"%s\" />\n", escape(*ch.LogoURL))
		}
		sb.WriteString("  </channel>\n")
	}

	for _, ch := range guided {
		for _, e := range byTvgID[*ch.TvgID] {
			fmt.Fprintf(&sb, "  <programme start=\"%s\" stop=\"%s\" channel=\"%s\">\n",
				e.StartTime.Format(xmltvTimeLayout),
				e.EndTime.Format(xmltvTimeLayout),
				escape(e.ChannelTvgID))
			fmt.Fprintf(&sb, "    <title lang=\"en\">%s</title>\n", escape(e.Title))
			if e.Description != nil && *e.Description != "" {
				fmt.Fprintf(&sb, "    <desc lang=\"en\">%s</desc>\n", escape(*e.Description))
			}
			sb.WriteString("  </programme>\n")
		}
	}

	sb.WriteString("</tv>\n")
	return []byte(sb.String()), nil
}

func escape(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return s
	}
	return sb.String()
}
