// Package wordlist loads word lists, one word per line.
//
// Surrounding whitespace is trimmed from every line. A blank line is kept as
// the empty word, which is a friend of every one-character word; use
// [ReadOptions.SkipBlank] to drop such lines instead. Order and duplicates are
// preserved: the friendship computations downstream treat the list as given.
package wordlist

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/levnet/pkg/errors"
)

// maxLineSize bounds a single line; bufio's 64KiB default is too small for
// some generated lists.
const maxLineSize = 1 << 20

// ReadOptions adjusts how lines become words. The zero value keeps every line.
type ReadOptions struct {
	SkipBlank bool // drop lines that are empty after trimming
}

// Read parses a word list from r, one trimmed word per line.
func Read(r io.Reader) ([]string, error) {
	return ReadWithOptions(r, ReadOptions{})
}

// ReadWithOptions parses a word list from r.
func ReadWithOptions(r io.Reader, opts ReadOptions) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" && opts.SkipBlank {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

// Load reads the word list stored at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "word list %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Fingerprint returns a SHA-256 hex digest identifying the exact contents and
// order of words. Adjacency caches are keyed by it so a mapping built from one
// list is never served for another.
func Fingerprint(words []string) string {
	h := sha256.New()
	for _, w := range words {
		io.WriteString(h, w)
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
