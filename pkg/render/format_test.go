package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/matzehuels/levnet/pkg/errors"
	"github.com/matzehuels/levnet/pkg/friends"
)

func sampleNetwork() Network {
	return Network{
		Seed: "word",
		Levels: []friends.Set{
			friends.NewSet("ward", "wore"),
			friends.NewSet("bore", "core", "word"),
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{"dot", FormatDOT},
		{"svg", FormatSVG},
		{"png", FormatPNG},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}

	if _, err := ParseFormat("pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormat(pdf) error = %v", err)
	}
}

func TestFormatExtension(t *testing.T) {
	if FormatText.Extension() != "txt" || FormatSVG.Extension() != "svg" {
		t.Error("unexpected extensions")
	}
	if !FormatPNG.Binary() || FormatDOT.Binary() {
		t.Error("unexpected Binary()")
	}
}

func TestNetworkHopOf(t *testing.T) {
	n := sampleNetwork()
	tests := map[string]int{"ward": 1, "core": 2, "word": 2, "zzz": 0}
	for w, want := range tests {
		if got := n.HopOf(w); got != want {
			t.Errorf("HopOf(%q) = %d, want %d", w, got, want)
		}
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleNetwork()); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "bore\ncore\nward\nword\nwore\n"; got != want {
		t.Errorf("WriteText() = %q, want %q", got, want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleNetwork()); err != nil {
		t.Fatal(err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Seed != "word" || doc.Degree != 2 || doc.Size != 5 {
		t.Errorf("document = %+v", doc)
	}
	if len(doc.Levels) != 2 || len(doc.Levels[0]) != 2 {
		t.Errorf("levels = %v", doc.Levels)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Network{Seed: "word"}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"network": []`)) {
		t.Errorf("empty network should encode as []: %s", buf.String())
	}
}
