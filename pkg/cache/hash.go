package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey addresses an assembled layout by chart fingerprint and mode.
	LayoutKey(fingerprint, mode string) string
	// ArtifactKey addresses a rendered output of a layout.
	ArtifactKey(layoutID string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds every render option that changes the output bytes.
type ArtifactKeyOpts struct {
	Format  string  `json:"format"`
	Size    float64 `json:"size,omitempty"`
	Degrees bool    `json:"degrees,omitempty"`
	Title   string  `json:"title,omitempty"`
	Theme   string  `json:"theme,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements [Keyer].
func (DefaultKeyer) LayoutKey(fingerprint, mode string) string {
	return hashKey("layout", fingerprint, mode)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(layoutID string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, layoutID, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
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
