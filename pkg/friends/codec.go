package friends

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Adjacency Serialization API
// =============================================================================

// MarshalAdjacency converts an adjacency mapping to JSON bytes.
// Keys and friend lists are sorted for deterministic output.
func MarshalAdjacency(a Adjacency) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeAdjacencyTo(a, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalAdjacency decodes JSON bytes produced by [MarshalAdjacency].
func UnmarshalAdjacency(data []byte) (Adjacency, error) {
	return readAdjacencyFrom(bytes.NewReader(data))
}

// WriteAdjacency writes an adjacency mapping as JSON to w.
func WriteAdjacency(a Adjacency, w io.Writer) error {
	return writeAdjacencyTo(a, w)
}

// ReadAdjacency decodes a JSON adjacency mapping from r.
func ReadAdjacency(r io.Reader) (Adjacency, error) {
	return readAdjacencyFrom(r)
}

// WriteAdjacencyFile writes an adjacency mapping to a JSON file.
// The file is created with 0644 permissions.
func WriteAdjacencyFile(a Adjacency, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeAdjacencyTo(a, f)
}

// ReadAdjacencyFile reads a JSON adjacency mapping from path.
func ReadAdjacencyFile(path string) (Adjacency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readAdjacencyFrom(f)
}

// =============================================================================
// Internal Implementation
// =============================================================================

// encoding/json sorts map keys, so only the friend lists need ordering.
func writeAdjacencyTo(a Adjacency, w io.Writer) error {
	out := make(map[string][]string, len(a))
	for word, set := range a {
		out[word] = set.Sorted()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readAdjacencyFrom(r io.Reader) (Adjacency, error) {
	var data map[string][]string
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	adj := make(Adjacency, len(data))
	for word, list := range data {
		adj[word] = NewSet(list...)
	}
	return adj, nil
}
