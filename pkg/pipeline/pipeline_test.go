package pipeline

import (
	"testing"

	"github.com/matzehuels/levnet/pkg/errors"
)

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Seed: "word"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Wordlist != DefaultWordlist {
		t.Errorf("Wordlist = %q, want %q", opts.Wordlist, DefaultWordlist)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != string(DefaultFormat) {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call error = %v", err)
	}
}

func TestPreloadedWordsSkipWordlistDefault(t *testing.T) {
	opts := Options{Seed: "word", Words: []string{}}
	if err := opts.ValidateForLoad(); err != nil {
		t.Fatal(err)
	}
	if opts.Wordlist != "" {
		t.Errorf("Wordlist = %q, want empty when Words is set", opts.Wordlist)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"empty seed", Options{}, errors.ErrCodeInvalidWord},
		{"seed with spaces", Options{Seed: " word "}, errors.ErrCodeInvalidWord},
		{"negative workers", Options{Seed: "word", Workers: -1}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Seed: "word", Formats: []string{"pdf"}}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestNegativeDegreeIsValid(t *testing.T) {
	opts := Options{Seed: "word", Degree: -3}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("negative degree should be valid: %v", err)
	}
	if got := opts.NetworkKeyOpts(); got.Degree != -3 || got.Direct {
		t.Errorf("NetworkKeyOpts() = %+v", got)
	}
}

func TestHopMessage(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "Found friends of 'word'"},
		{1, "Found friends of friends of 'word'"},
		{2, "Found friends of friends of friends of 'word'"},
	}
	for _, tt := range tests {
		if got := hopMessage("word", tt.index); got != tt.want {
			t.Errorf("hopMessage(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
