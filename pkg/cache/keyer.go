package cache

// Keyer generates cache keys for levnet's cached values.
type Keyer interface {
	// AdjacencyKey identifies the adjacency map of the word list with the
	// given fingerprint.
	AdjacencyKey(fingerprint string) string

	// NetworkKey identifies the network of seed in the word list with the
	// given fingerprint.
	NetworkKey(fingerprint, seed string, opts NetworkKeyOpts) string
}

// NetworkKeyOpts holds the expansion options that change a network result.
// Direct is part of the key because a direct expansion succeeds for seeds
// that the adjacency map rejects.
type NetworkKeyOpts struct {
	Degree int  `json:"degree"`
	Direct bool `json:"direct,omitempty"`
}

// DefaultKeyer hashes its inputs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// AdjacencyKey returns "adjacency:<hash>".
func (DefaultKeyer) AdjacencyKey(fingerprint string) string {
	return hashKey("adjacency", fingerprint)
}

// NetworkKey returns "network:<hash>". Degrees below 1 share one key since
// they all expand to the empty network.
func (DefaultKeyer) NetworkKey(fingerprint, seed string, opts NetworkKeyOpts) string {
	if opts.Degree < 0 {
		opts.Degree = 0
	}
	return hashKey("network", fingerprint, seed, opts)
}

var _ Keyer = DefaultKeyer{}
