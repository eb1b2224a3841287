package cache

import "time"

// Default TTLs per cached artifact kind. Analysis reports are cheap to
// recompute, so they expire faster than rendered artifacts.
const (
	// TTLAnalysis is the lifetime of cached analysis reports.
	TTLAnalysis = 24 * time.Hour

	// TTLPaths is the lifetime of cached path enumerations.
	TTLPaths = 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 7 * 24 * time.Hour
)
