package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments, or
// several users of one server, can share a backend without colliding.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "levnet:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer falls back to DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// AdjacencyKey generates a prefixed adjacency key.
func (k *ScopedKeyer) AdjacencyKey(fingerprint string) string {
	return k.prefix + k.inner.AdjacencyKey(fingerprint)
}

// NetworkKey generates a prefixed network key.
func (k *ScopedKeyer) NetworkKey(fingerprint, seed string, opts NetworkKeyOpts) string {
	return k.prefix + k.inner.NetworkKey(fingerprint, seed, opts)
}
