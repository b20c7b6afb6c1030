package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestOpenMissingFileUsesDefaults(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	s := c.Shortcuts()
	if s.OverrideMediaKeys {
		t.Error("media keys must not be overridden by default")
	}
	for _, name := range []string{"previous", "playPause", "next"} {
		accel, ok := s.Global[name]
		if !ok || accel != "" {
			t.Errorf("global %s = %q, %v; want unbound entry", name, accel, ok)
		}
	}
	if !c.NotificationsEnabled() {
		t.Error("notifications should be enabled by default")
	}
	if c.UILanguage() != "ru" {
		t.Errorf("UILanguage = %q", c.UILanguage())
	}
}

func TestOpenParsesShortcuts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{
		"notifications": false,
		"shortcuts": {
			"overrideMediaKeys": true,
			"global": {"like": "L", "playPause": "Space"},
			"local": {"search": ""}
		},
		"playlist": ["a.mp3", "b.mp3"]
	}`)

	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	s := c.Shortcuts()
	if !s.OverrideMediaKeys {
		t.Error("OverrideMediaKeys = false")
	}
	if s.Global["like"] != "L" || s.Global["playPause"] != "Space" {
		t.Errorf("Global = %v", s.Global)
	}
	if v, ok := s.Local["search"]; !ok || v != "" {
		t.Errorf("Local = %v", s.Local)
	}
	if c.NotificationsEnabled() {
		t.Error("notifications should be disabled")
	}
	if got := c.Playlist(); len(got) != 2 || got[1] != "b.mp3" {
		t.Errorf("Playlist = %v", got)
	}
}

func TestOpenInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"shortcuts": [`)

	if _, err := Open(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestShortcutsSnapshotIsIndependent(t *testing.T) {
	c, err := Open("")
	if err != nil {
		t.Fatal(err)
	}

	s := c.Shortcuts()
	s.Global["next"] = "N"

	if got := c.Shortcuts().Global["next"]; got != "" {
		t.Errorf("config mutated through snapshot: %q", got)
	}
}

func TestSetShortcutsPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	want := Shortcuts{
		OverrideMediaKeys: true,
		Global:            Mapping{"goBack": "Left"},
		Local:             Mapping{"next": "N"},
	}
	if err := c.SetShortcuts(want); err != nil {
		t.Fatalf("SetShortcuts: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	got := reopened.Shortcuts()
	if !got.OverrideMediaKeys || got.Global["goBack"] != "Left" || got.Local["next"] != "N" {
		t.Errorf("reopened = %+v", got)
	}
}

func TestRatingsDBDefaultsNextToConfig(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.RatingsDB(), filepath.Join(dir, "ratings.db"); got != want {
		t.Errorf("RatingsDB = %q, want %q", got, want)
	}

	mem, _ := Open("")
	if got := mem.RatingsDB(); got != ":memory:" {
		t.Errorf("RatingsDB without path = %q", got)
	}
}

func TestWatchReportsReloadedShortcuts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"shortcuts": {"global": {"next": ""}}}`)

	c, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Shortcuts, 4)
	if err := c.Watch(ctx, func(s Shortcuts) { got <- s }); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	writeFile(t, path, `{"shortcuts": {"global": {"next": "N"}}}`)

	select {
	case s := <-got:
		if s.Global["next"] != "N" {
			t.Errorf("reloaded Global = %v", s.Global)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload reported")
	}
}
