package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer builds cache keys for the different cached artifacts. Keys are
// derived from graph fingerprints rather than graph names, so structurally
// identical graphs share entries.
type Keyer interface {
	// AnalysisKey is the key for a full analysis report of a graph.
	AnalysisKey(fingerprint string) string

	// PathsKey is the key for a path enumeration between two items.
	PathsKey(fingerprint, from, to string) string

	// RenderKey is the key for a rendered artifact in the given format.
	RenderKey(fingerprint, format string) string
}

// DefaultKeyer generates unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a keyer without a scope prefix.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// AnalysisKey generates a key for analysis report caching.
func (k *DefaultKeyer) AnalysisKey(fingerprint string) string {
	return "analysis:" + fingerprint
}

// PathsKey generates a key for path enumeration caching.
func (k *DefaultKeyer) PathsKey(fingerprint, from, to string) string {
	return hashKey("paths", fingerprint, from, to)
}

// RenderKey generates a key for rendered artifact caching.
func (k *DefaultKeyer) RenderKey(fingerprint, format string) string {
	return hashKey("render", fingerprint, format)
}

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation, so
// different users or contexts get separate cache namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// AnalysisKey generates a prefixed key for analysis report caching.
func (k *ScopedKeyer) AnalysisKey(fingerprint string) string {
	return k.prefix + k.inner.AnalysisKey(fingerprint)
}

// PathsKey generates a prefixed key for path enumeration caching.
func (k *ScopedKeyer) PathsKey(fingerprint, from, to string) string {
	return k.prefix + k.inner.PathsKey(fingerprint, from, to)
}

// RenderKey generates a prefixed key for rendered artifact caching.
func (k *ScopedKeyer) RenderKey(fingerprint, format string) string {
	return k.prefix + k.inner.RenderKey(fingerprint, format)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
