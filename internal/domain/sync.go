package domain

import "time"

// SyncStats holds statistics about one ingestion run.
type SyncStats struct {
	SourceID        int64         `json:"source_id"`
	Kind            SourceKind    `json:"kind"`
	Parsed          int           `json:"parsed"`
	ChannelsCreated int           `json:"channels_created"`
	ChannelsUpdated int           `json:"channels_updated"`
	UrlsCreated     int           `json:"urls_created"`
	EntriesReplaced int           `json:"entries_replaced"`
	Skipped         int           `json:"skipped"`
	Duration        time.Duration `json:"duration_ns"`
}

// SyncResult holds the outcome of one state synchronizer run.
type SyncResult struct {
	Enabled  int `json:"enabled"`
	Disabled int `json:"disabled"`
}
