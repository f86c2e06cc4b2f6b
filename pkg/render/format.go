package render

import (
	"encoding/json"
	"io"
	"slices"
	"strings"

	"github.com/matzehuels/levnet/pkg/errors"
	"github.com/matzehuels/levnet/pkg/friends"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatDOT, FormatSVG, FormatPNG}

// ParseFormat validates a user-supplied format name. An empty name is text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(s))
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", s)
	}
	return f, nil
}

// Binary reports whether the format is not printable text.
func (f Format) Binary() bool { return f == FormatPNG }

// Extension returns the file extension for the format, without a dot.
func (f Format) Extension() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// Network is a seed and the words discovered at each hop.
// Levels[i] holds the words that were new at hop i+1.
type Network struct {
	Seed   string
	Levels []friends.Set
}

// Words returns the union of all levels.
func (n Network) Words() friends.Set {
	all := friends.NewSet()
	for _, l := range n.Levels {
		all.Union(l)
	}
	return all
}

// HopOf returns the first hop (1-based) at which word was discovered, or 0.
func (n Network) HopOf(word string) int {
	for i, l := range n.Levels {
		if l.Has(word) {
			return i + 1
		}
	}
	return 0
}

// WriteText writes the sorted network, one word per line.
func WriteText(w io.Writer, n Network) error {
	for _, word := range n.Words().Sorted() {
		if _, err := io.WriteString(w, word+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Document is the JSON shape of a network.
type Document struct {
	Seed    string     `json:"seed"`
	Degree  int        `json:"degree"`
	Size    int        `json:"size"`
	Network []string   `json:"network"`
	Levels  [][]string `json:"levels"`
}

// NewDocument builds the JSON document for a network.
func NewDocument(n Network) Document {
	words := n.Words().Sorted()
	levels := make([][]string, len(n.Levels))
	for i, l := range n.Levels {
		levels[i] = l.Sorted()
	}
	return Document{
		Seed:    n.Seed,
		Degree:  len(n.Levels),
		Size:    len(words),
		Network: words,
		Levels:  levels,
	}
}

// WriteJSON writes the network as an indented JSON [Document].
func WriteJSON(w io.Writer, n Network) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(n))
}
