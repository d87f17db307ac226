package models

import "time"

// DiscoveryResult is returned by a connector's Discover operation: the set
// of objects currently visible at a source, used as the left-hand side of
// the chunk state machine's diff against stored metadata.
type DiscoveryResult struct {
	SourceID    string    `json:"source_id"`
	Objects     []Object  `json:"objects"`
	DiscoveredAt time.Time `json:"discovered_at"`
	Truncated   bool      `json:"truncated"`
}

// FetchRange describes the byte window a connector should return for a
// chunk fetch, including the overlap bytes the scan pipeline requests to
// avoid splitting a match across a chunk boundary.
type FetchRange struct {
	Offset int64
	Limit  int64
	Overlap int64
}
