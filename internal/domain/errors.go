package domain

import "errors"

var (
	// ErrInvalidPlaylist marks input that does not begin with #EXTM3U.
	// The job aborts before any writes.
	ErrInvalidPlaylist = errors.New("playlist missing #EXTM3U header")

	// ErrNoChannelsMapped marks an EPG feed none of whose channels resolve
	// to the catalog. The run aborts instead of deleting without replacing.
	ErrNoChannelsMapped = errors.New("no EPG channels mapped to catalog")

	// ErrInvalidPattern marks a filter regex rejected at creation.
	ErrInvalidPattern = errors.New("invalid filter pattern")

	ErrSourceNotFound   = errors.New("source not found")
	ErrSourceDisabled   = errors.New("source is disabled")
	ErrChannelNotFound  = errors.New("channel not found")
	ErrFilterNotFound   = errors.New("filter not found")
	ErrDuplicateURL     = errors.New("source URL already exists")
	ErrDuplicatePattern = errors.New("filter pattern already exists")
)
