package domain

import "time"

// SourceKind distinguishes playlist feeds from programme-guide feeds.
type SourceKind string

const (
	SourceM3U SourceKind = "m3u"
	SourceEPG SourceKind = "epg"
)

// Source is a remote feed with its own refresh schedule.
type Source struct {
	ID              int64      `db:"id"`
	Kind            SourceKind `db:"kind"`
	URL             string     `db:"url"`
	Enabled         bool       `db:"enabled"`
	RefreshInterval int        `db:"refresh_interval_hours"`
	LastChecked     *time.Time `db:"last_checked"`
	CreatedAt       time.Time  `db:"created_at"`
}

// Channel is a logical broadcast entity, keyed by tvg_id when present,
// otherwise by name. Enabled is derived state owned by the synchronizer.
type Channel struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	Category   *string   `db:"category"`
	TvgID      *string   `db:"tvg_id"`
	TvgName    *string   `db:"tvg_name"`
	LogoURL    *string   `db:"logo_url"`
	ChannelNum *int      `db:"channel_num"`
	Enabled    bool      `db:"enabled"`
	LastSeen   time.Time `db:"last_seen"`

	Urls []Url `db:"-"`
}

// Key returns the channel's external identity: tvg_id when set, else name.
func (c *Channel) Key() string {
	if c.TvgID != nil && *c.TvgID != "" {
		return *c.TvgID
	}
	return c.Name
}

// Url is one physical stream endpoint, owned by exactly one channel.
type Url struct {
	ID        int64     `db:"id"`
	URL       string    `db:"url"`
	ChannelID int64     `db:"channel_id"`
	LastSeen  time.Time `db:"last_seen"`
}

// EpgEntry is one scheduled programme, joined to channels by tvg_id value.
// The uniqueness key for diffing is (channel_tvg_id, start_time, title).
type EpgEntry struct {
	ID           int64     `db:"id"`
	ChannelTvgID string    `db:"channel_tvg_id"`
	Title        string    `db:"title"`
	StartTime    time.Time `db:"start_time"`
	EndTime      time.Time `db:"end_time"`
	Description  *string   `db:"description"`
}

// Filter is a regex rule that forces matching channels disabled.
type Filter struct {
	ID          int64   `db:"id"`
	Pattern     string  `db:"pattern"`
	Description *string `db:"description"`
	Enabled     bool    `db:"enabled"`
}
