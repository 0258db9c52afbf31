package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWatcherEmitsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("lives: 5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if !strings.HasSuffix(name, "game.yaml") {
			t.Fatalf("expected game.yaml event, got %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for spec file change")
	}
}

func TestWatcherCloseShutsDownCleanly(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	// queue more changes than the Events buffer holds so run() is likely
	// mid-send when Close lands
	for i := 0; i < 64; i++ {
		name := filepath.Join(dir, "game.yaml")
		if i%2 == 1 {
			name = filepath.Join(dir, "other.yaml")
		}
		if err := os.WriteFile(name, []byte("lives: 5\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close must be a no-op, got %v", err)
	}

	// run() owns the channels; after Close it must drain out and close them
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("events channel never closed after Close")
		}
	}
}

func TestIsSpecFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"game.yaml", true},
		{"prefabs/game.yml", true},
		{"GAME.YAML", true},
		{"game.yaml.swp", false},
		{"notes.txt", false},
		{"", false},
	}
	for _, c := range cases {
		if got := isSpecFile(c.path); got != c.want {
			t.Fatalf("isSpecFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}
