package parser

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"m3u_manager/internal/domain"
)

const maxLineSize = 1 << 20 // some playlists carry very long EXTINF lines

var (
	reExtinf = regexp.MustCompile(`^#EXTINF:-?\d+\s*(.*),(.*)$`)
	reAttr   = regexp.MustCompile(`([a-zA-Z0-9_-]+)="([^"]*)"`)
)

// ParsedChannel is one channel accumulated from a playlist: its EXTINF
// attributes plus the set of stream URLs seen for it. Duplicate URLs for the
// same channel collapse.
type ParsedChannel struct {
	Name       string
	TvgID      string
	TvgName    string
	LogoURL    string
	Category   string
	ChannelNum *int
	URLs       map[string]struct{}
}

// Key returns the grouping identity: tvg_id when present, else the name.
func (p *ParsedChannel) Key() string {
	if p.TvgID != "" {
		return p.TvgID
	}
	return p.Name
}

// ParseM3U parses raw playlist text into a channel-key → ParsedChannel map.
// Input not starting with #EXTM3U is rejected wholesale with
// domain.ErrInvalidPlaylist. An EXTINF line with no following URL line before
// the next EXTINF is discarded.
func ParseM3U(data []byte) (map[string]*ParsedChannel, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(nil, maxLineSize)

	seenHeader := false
	channels := make(map[string]*ParsedChannel)
	var pending *ParsedChannel

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if !seenHeader {
			if !strings.HasPrefix(line, "#EXTM3U") {
				return nil, domain.ErrInvalidPlaylist
			}
			seenHeader = true
			continue
		}

		if strings.HasPrefix(line, "#EXTINF:") {
			pending = parseExtinf(line)
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		// URL line completing the pending EXTINF.
		if pending == nil {
			continue
		}
		key := pending.Key()
		if key == "" {
			pending = nil
			continue
		}
		ch, ok := channels[key]
		if !ok {
			ch = pending
			ch.URLs = make(map[string]struct{})
			channels[key] = ch
		}
		ch.URLs[line] = struct{}{}
		pending = nil
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !seenHeader {
		return nil, domain.ErrInvalidPlaylist
	}

	return channels, nil
}

// parseExtinf extracts the attribute map and display name from one EXTINF
// line. Returns nil when the line does not match the expected shape.
func parseExtinf(line string) *ParsedChannel {
	m := reExtinf.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	attrStr, displayName := m[1], strings.TrimSpace(m[2])

	attrs := make(map[string]string)
	for _, kv := range reAttr.FindAllStringSubmatch(attrStr, -1) {
		key := strings.ReplaceAll(strings.ToLower(kv[1]), "-", "_")
		attrs[key] = kv[2]
	}

	name := attrs["tvg_name"]
	if name == "" {
		name = displayName
	}
	if name == "" {
		return nil
	}

	ch := &ParsedChannel{
		Name:     name,
		TvgID:    attrs["tvg_id"],
		TvgName:  attrs["tvg_name"],
		LogoURL:  attrs["tvg_logo"],
		Category: attrs["group_title"],
	}
	if s := attrs["tvg_chno"]; s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			ch.ChannelNum = &n
		}
	}
	return ch
}
