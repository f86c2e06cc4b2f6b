package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/levnet/pkg/errors"
	"github.com/matzehuels/levnet/pkg/friends"
)

var scenario = []string{"word", "ward", "wore", "bore", "core"}

// testEnv isolates config and cache under a temp dir and returns the path of
// a word list holding the scenario words.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("LEVNET_CONFIG", "")

	old := uiOut
	uiOut = io.Discard
	t.Cleanup(func() { uiOut = old })

	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(scenario, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.SetOutput(&out)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func TestDistanceCommand(t *testing.T) {
	testEnv(t)
	out, err := execute(t, "distance", "apple", "bananna")
	if err != nil {
		t.Fatal(err)
	}
	if out != "5\n" {
		t.Errorf("output = %q, want 5", out)
	}
}

func TestFriendsCommand(t *testing.T) {
	list := testEnv(t)
	out, err := execute(t, "friends", "wore", "-w", list)
	if err != nil {
		t.Fatal(err)
	}
	if out != "bore\ncore\nword\n" {
		t.Errorf("output = %q", out)
	}
}

func TestNetworkCommand(t *testing.T) {
	list := testEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"degree 1", []string{"-d", "1"}, "ward\nwore\n"},
		{"degree 2", []string{"-d", "2"}, "bore\ncore\nward\nword\nwore\n"},
		{"degree 0", []string{"-d", "0"}, ""},
		{"levels", []string{"-d", "2", "--levels"}, "1\tward wore\n2\tbore core word\n"},
		{"direct", []string{"-d", "2", "--direct"}, "bore\ncore\nward\nword\nwore\n"},
		{"no cache", []string{"-d", "1", "--no-cache"}, "ward\nwore\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"network", "word", "-w", list}, tt.args...)
			out, err := execute(t, args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestNetworkCommandSeedOutsideList(t *testing.T) {
	list := testEnv(t)

	_, err := execute(t, "network", "cord", "-w", list)
	if !errors.Is(err, errors.ErrCodeCacheMismatch) {
		t.Fatalf("err = %v, want CACHE_MISMATCH", err)
	}

	out, err := execute(t, "network", "cord", "-w", list, "--direct")
	if err != nil {
		t.Fatal(err)
	}
	if out != "core\nword\n" {
		t.Errorf("output = %q", out)
	}
}

func TestNetworkCommandWritesFiles(t *testing.T) {
	list := testEnv(t)
	base := filepath.Join(t.TempDir(), "out", "word")

	if _, err := execute(t, "network", "word", "-w", list, "-f", "json,dot", "-o", base); err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{".json", ".dot"} {
		data, err := os.ReadFile(base + ext)
		if err != nil {
			t.Fatalf("missing %s: %v", ext, err)
		}
		if !bytes.Contains(data, []byte("ward")) {
			t.Errorf("%s does not mention ward:\n%s", ext, data)
		}
	}
}

func TestNetworkCommandRejectsUnwritableOutput(t *testing.T) {
	list := testEnv(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"png to stdout", []string{"-f", "png"}, errors.ErrCodeInvalidInput},
		{"two formats to stdout", []string{"-f", "text,json"}, errors.ErrCodeInvalidInput},
		{"unknown format", []string{"-f", "gif"}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"network", "word", "-w", list}, tt.args...)
			_, err := execute(t, args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestNetworkCommandUsesConfig(t *testing.T) {
	list := testEnv(t)
	cfg := filepath.Join(t.TempDir(), "levnet.toml")
	content := "wordlist = " + `"` + filepath.ToSlash(list) + `"` + "\ndegree = 2\n\n[cache]\nbackend = \"none\"\n"
	if err := os.WriteFile(cfg, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", cfg, "network", "word")
	if err != nil {
		t.Fatal(err)
	}
	if out != "bore\ncore\nward\nword\nwore\n" {
		t.Errorf("output = %q", out)
	}

	// Flags win over the file.
	out, err = execute(t, "--config", cfg, "network", "word", "-d", "1")
	if err != nil {
		t.Fatal(err)
	}
	if out != "ward\nwore\n" {
		t.Errorf("output with -d 1 = %q", out)
	}
}

func TestMissingConfigFile(t *testing.T) {
	testEnv(t)
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "distance", "a", "b")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestIndexCommand(t *testing.T) {
	list := testEnv(t)
	out := filepath.Join(t.TempDir(), "adjacency.json")

	if _, err := execute(t, "index", "-w", list, "-o", out); err != nil {
		t.Fatal(err)
	}
	adj, err := friends.ReadAdjacencyFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !adj.Equal(friends.BuildAll(scenario)) {
		t.Errorf("adjacency = %v", adj)
	}
}

func TestCachePathCommand(t *testing.T) {
	testEnv(t)
	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName) + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	list := testEnv(t)
	if _, err := execute(t, "index", "-w", list); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName)
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("index did not populate cache: %v", err)
	}

	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	var files int
	filepath.WalkDir(dir, func(_ string, d os.DirEntry, _ error) error {
		if d != nil && !d.IsDir() {
			files++
		}
		return nil
	})
	if files != 0 {
		t.Errorf("%d files left after clear", files)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"svg", []string{"svg"}},
		{"JSON, dot ,", []string{"json", "dot"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.in)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") || len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"out/word", "out/word"},
		{"out/word.svg", "out/word"},
		{"out/word.txt", "out/word"},
		{"out/word.v2", "out/word.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.in); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCheckOutput(t *testing.T) {
	tests := []struct {
		formats []string
		output  string
		wantErr bool
	}{
		{[]string{"text"}, "", false},
		{[]string{"svg"}, "", false},
		{[]string{"png"}, "", true},
		{[]string{"png"}, "word.png", false},
		{[]string{"text", "json"}, "", true},
		{[]string{"text", "json"}, "out/word", false},
	}
	for _, tt := range tests {
		err := checkOutput(tt.formats, tt.output)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkOutput(%v, %q) err = %v, wantErr %v", tt.formats, tt.output, err, tt.wantErr)
		}
	}
}
