package matcher

import (
	"regexp"
	"strconv"
	"strings"

	"m3u_manager/internal/domain"
)

var (
	nonAlnum      = regexp.MustCompile(`[^a-z0-9]`)
	leadingDigits = regexp.MustCompile(`^\s*(\d+)\s*`)
)

// NormalizeName strips everything but letters and digits and lower-cases,
// for fuzzy name equality.
func NormalizeName(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "")
}

// Resolver maps external channel identities onto a catalog snapshot. It is
// constructed fresh per job run; the catalog may have changed since the last
// one, so resolvers are never cached across runs.
type Resolver struct {
	byTvgID    map[string]*domain.Channel
	byNum      map[string]*domain.Channel
	byNormName map[string]*domain.Channel
}

// NewResolver indexes the given snapshot by lower-cased tvg_id, by channel
// number, and by normalized name.
func NewResolver(channels []*domain.Channel) *Resolver {
	r := &Resolver{
		byTvgID:    make(map[string]*domain.Channel),
		byNum:      make(map[string]*domain.Channel),
		byNormName: make(map[string]*domain.Channel),
	}
	for _, ch := range channels {
		if ch.TvgID != nil && *ch.TvgID != "" {
			r.byTvgID[strings.ToLower(*ch.TvgID)] = ch
		}
		if ch.ChannelNum != nil {
			r.byNum[strconv.Itoa(*ch.ChannelNum)] = ch
		}
		if n := NormalizeName(ch.Name); n != "" {
			r.byNormName[n] = ch
		}
	}
	return r
}

// Resolve maps a playlist identity (tvg_id, name) to a catalog channel.
// Order: exact tvg_id (case-insensitive), then normalized name. A nil result
// means the caller should create the channel.
func (r *Resolver) Resolve(tvgID, name string) *domain.Channel {
	if tvgID != "" {
		if ch, ok := r.byTvgID[strings.ToLower(tvgID)]; ok {
			return ch
		}
	}
	if n := NormalizeName(name); n != "" {
		if ch, ok := r.byNormName[n]; ok {
			return ch
		}
	}
	return nil
}

// ResolveGuide maps a guide-feed identity (feed channel id, display name) to
// a catalog channel. Order: exact tvg_id, then leading-number against
// channel_num, then normalized name. A nil result means the programme's
// channel is skipped; guide data alone cannot safely invent a channel.
func (r *Resolver) ResolveGuide(feedID, displayName string) *domain.Channel {
	if feedID != "" {
		if ch, ok := r.byTvgID[strings.ToLower(feedID)]; ok {
			return ch
		}
	}
	if displayName == "" {
		return nil
	}
	if m := leadingDigits.FindStringSubmatch(displayName); m != nil {
		if ch, ok := r.byNum[m[1]]; ok {
			return ch
		}
	}
	if n := NormalizeName(displayName); n != "" {
		if ch, ok := r.byNormName[n]; ok {
			return ch
		}
	}
	return nil
}
