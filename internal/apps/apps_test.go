package apps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestParseCacheLine(t *testing.T) {
	info, ok, err := ParseCacheLine(" redstone | terminal | Terminal | /apps/redstone/terminal/icon.png | system ", "/apps")
	if err != nil || !ok {
		t.Fatalf("ParseCacheLine() = %v, %v", ok, err)
	}
	want := AppInfo{
		ID:       "redstone.terminal",
		Name:     "Terminal",
		Vendor:   "redstone",
		Path:     "/apps/redstone/terminal/terminal.app",
		IconPath: "/apps/redstone/terminal/icon.png",
		Category: "system",
		bundle:   "terminal",
	}
	if info != want {
		t.Fatalf("info = %+v, want %+v", info, want)
	}
	if info.CacheLine() != "redstone|terminal|Terminal|/apps/redstone/terminal/icon.png|system" {
		t.Fatalf("CacheLine() = %q", info.CacheLine())
	}
}

func TestParseCacheLineSkipsAndRejects(t *testing.T) {
	for _, line := range []string{"", "   ", "# comment|a|b|c|d"} {
		if _, ok, err := ParseCacheLine(line, "/apps"); ok || err != nil {
			t.Fatalf("ParseCacheLine(%q) = %v, %v; want skip", line, ok, err)
		}
	}

	if _, ok, err := ParseCacheLine("a|b|c", "/apps"); ok || err == nil {
		t.Fatalf("short line: ok=%v err=%v, want error", ok, err)
	}

	info, ok, err := ParseCacheLine("v|n|Name||misc", "/apps")
	if err != nil || !ok {
		t.Fatalf("empty icon: %v %v", ok, err)
	}
	if info.HasIcon() {
		t.Fatal("empty icon field should mean no icon")
	}
}

func TestCacheDiscoverer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apps.cache")
	body := "# index\nredstone|terminal|Terminal||system\nbroken line\nacme|paint|Paint|/i.png|graphics\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d := &CacheDiscoverer{Path: path, Root: "/apps"}
	list, err := d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d apps, want 2", len(list))
	}
	if list[0].ID != "redstone.terminal" || list[1].Path != "/apps/acme/paint/paint.app" {
		t.Fatalf("unexpected apps: %+v", list)
	}

	if _, err := (&CacheDiscoverer{Path: filepath.Join(dir, "missing")}).Discover(); err == nil {
		t.Fatal("expected error for missing cache")
	}
}

func TestManifestDiscoverer(t *testing.T) {
	fsys := fstest.MapFS{
		"redstone/terminal/app.toml": {Data: []byte("name = \"Terminal\"\ncategory = \"system\"\nicon = \"icon.png\"\n")},
		"acme/paint/app.toml":        {Data: []byte("name = \"Art Studio\"\n")},
		"acme/broken/app.toml":       {Data: []byte("name = \n")},
		"acme/extra/app.toml":        {Data: []byte("unknown_key = 1\n")},
		"acme/notes/README":          {Data: []byte("no manifest here")},
	}

	d := &ManifestDiscoverer{FS: fsys, Root: "/apps"}
	list, err := d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d apps, want 2: %+v", len(list), list)
	}

	art, term := list[0], list[1]
	if art.Name != "Art Studio" || art.Category != "other" || art.HasIcon() {
		t.Fatalf("paint app = %+v", art)
	}
	if term.ID != "redstone.terminal" || term.IconPath != "/apps/redstone/terminal/icon.png" {
		t.Fatalf("terminal app = %+v", term)
	}
	if term.Path != "/apps/redstone/terminal/terminal.app" {
		t.Fatalf("terminal path = %q", term.Path)
	}
}

func TestWriteCacheRoundTrip(t *testing.T) {
	fsys := fstest.MapFS{
		"redstone/terminal/app.toml": {Data: []byte("name = \"Terminal\"\ncategory = \"system\"\n")},
	}
	list, err := (&ManifestDiscoverer{FS: fsys, Root: "/apps"}).Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "indexes", "apps.cache")
	if err := WriteCache(path, list); err != nil {
		t.Fatalf("WriteCache() error: %v", err)
	}

	back, err := (&CacheDiscoverer{Path: path, Root: "/apps"}).Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(back) != 1 || back[0] != list[0] {
		t.Fatalf("read back %+v, want %+v", back, list)
	}
}

type stubDiscoverer struct {
	apps []AppInfo
	err  error
}

func (s stubDiscoverer) Discover() ([]AppInfo, error) { return s.apps, s.err }

func TestChain(t *testing.T) {
	one := []AppInfo{{ID: "a.b"}}

	list, err := Chain{stubDiscoverer{err: errors.New("no cache")}, stubDiscoverer{apps: one}}.Discover()
	if err != nil || len(list) != 1 {
		t.Fatalf("fallback: %v, %v", list, err)
	}

	list, err = Chain{stubDiscoverer{}, stubDiscoverer{err: errors.New("scan failed")}}.Discover()
	if err != nil || list != nil {
		t.Fatalf("partial failure should return empty list without error, got %v, %v", list, err)
	}

	if _, err := (Chain{stubDiscoverer{err: errors.New("x")}}).Discover(); err == nil {
		t.Fatal("expected error when every discoverer fails")
	}
}

func TestExecLauncher(t *testing.T) {
	l := &ExecLauncher{}
	if _, err := l.Launch(filepath.Join(t.TempDir(), "missing.app")); err == nil {
		t.Fatal("expected error launching a missing executable")
	}

	truePath, err := lookTrue()
	if err != nil {
		t.Skip("no true binary available")
	}
	pid, err := l.Launch(truePath)
	if err != nil {
		t.Fatalf("Launch() error: %v", err)
	}
	if pid <= 0 {
		t.Fatalf("pid = %d, want > 0", pid)
	}
}

func lookTrue() (string, error) {
	for _, p := range []string{"/bin/true", "/usr/bin/true"} {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", os.ErrNotExist
}
