package cache

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testCacheContract exercises the behavior every backend must share.
func testCacheContract(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}

	payload := []byte(`{"word":["ward"]}`)
	if err := c.Set(ctx, "k", payload, time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit {
		t.Fatalf("Get after Set = hit %v, err %v", hit, err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Get = %s, want %s", data, payload)
	}

	if err := c.Set(ctx, "k", []byte("v2"), 0); err != nil {
		t.Fatalf("overwrite error: %v", err)
	}
	if data, _, _ := c.Get(ctx, "k"); string(data) != "v2" {
		t.Errorf("Get after overwrite = %s", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of missing key should succeed: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()
	testCacheContract(t, c)
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "k", []byte("v"), 0)

	if err := os.WriteFile(c.path("k"), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v, err %v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, _ := NewFileCache(dir)

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Clear left %d entries in %s", len(entries), dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("Clear should keep the cache directory")
	}
}

func TestFileCacheClearMissingDir(t *testing.T) {
	c := &FileCache{dir: filepath.Join(t.TempDir(), "gone")}
	if n, err := c.Clear(); n != 0 || err != nil {
		t.Errorf("Clear on missing dir = %d, %v", n, err)
	}
}

func TestFileCachePathSharding(t *testing.T) {
	c := &FileCache{dir: "/cache"}
	p := c.path("adjacency:abc")
	h := Hash([]byte("adjacency:abc"))
	if want := filepath.Join("/cache", h[:2], h[2:]+".json"); p != want {
		t.Errorf("path = %s, want %s", p, want)
	}
}
