package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments (or a
// test run) can share one Redis without seeing each other's entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
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

// LayoutKey generates a prefixed layout key.
func (k *ScopedKeyer) LayoutKey(fingerprint, mode string) string {
	return k.prefix + k.inner.LayoutKey(fingerprint, mode)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(layoutID string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutID, opts)
}
