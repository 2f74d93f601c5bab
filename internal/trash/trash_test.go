package trash

// Notes:
// - Tests pin the package-level goos variable to "linux" so the freedesktop
//   path is exercised on any build host; the darwin branch is covered by
//   redirecting userHomeDir into a temp dir.
// - Tests use t.Setenv and mutate package variables, so they do not run in
//   parallel.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func pinPlatform(t *testing.T, platform string) {
	t.Helper()
	origGoos, origNow := goos, now
	goos = platform
	now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { goos, now = origGoos, origNow })
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("<html></html>"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestThrow_Freedesktop(t *testing.T) {
	pinPlatform(t, "linux")
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	src := writeFile(t, t.TempDir(), "board.svg2img.html")

	if err := Throw(src); err != nil {
		t.Fatalf("Throw() error = %v", err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("expected original gone, stat err = %v", err)
	}

	trashed := filepath.Join(dataHome, "Trash", "files", "board.svg2img.html")
	if _, err := os.Stat(trashed); err != nil {
		t.Errorf("expected file in trash: %v", err)
	}

	info, err := os.ReadFile(filepath.Join(dataHome, "Trash", "info", "board.svg2img.html.trashinfo"))
	if err != nil {
		t.Fatalf("expected trash info file: %v", err)
	}
	for _, want := range []string{"[Trash Info]", "Path=", "DeletionDate=2026-08-30T12:00:00"} {
		if !strings.Contains(string(info), want) {
			t.Errorf("trash info missing %q:\n%s", want, info)
		}
	}
}

func TestThrow_CollidingNames(t *testing.T) {
	pinPlatform(t, "linux")
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	first := writeFile(t, t.TempDir(), "board.html")
	second := writeFile(t, t.TempDir(), "board.html")

	if err := Throw(first); err != nil {
		t.Fatalf("first Throw() error = %v", err)
	}
	if err := Throw(second); err != nil {
		t.Fatalf("second Throw() error = %v", err)
	}

	filesDir := filepath.Join(dataHome, "Trash", "files")
	for _, name := range []string{"board.html", "board.2.html"} {
		if _, err := os.Stat(filepath.Join(filesDir, name)); err != nil {
			t.Errorf("expected %s in trash: %v", name, err)
		}
	}
}

func TestThrow_MissingFile(t *testing.T) {
	pinPlatform(t, "linux")
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	err := Throw(filepath.Join(t.TempDir(), "missing.html"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestThrow_Darwin(t *testing.T) {
	pinPlatform(t, "darwin")

	home := t.TempDir()
	if err := os.Mkdir(filepath.Join(home, ".Trash"), 0o700); err != nil {
		t.Fatalf("setup: %v", err)
	}
	origHome := userHomeDir
	userHomeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { userHomeDir = origHome })

	src := writeFile(t, t.TempDir(), "board.svg2img.html")
	if err := Throw(src); err != nil {
		t.Fatalf("Throw() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, ".Trash", "board.svg2img.html")); err != nil {
		t.Errorf("expected file in ~/.Trash: %v", err)
	}
}

func TestThrow_UnsupportedPlatform(t *testing.T) {
	pinPlatform(t, "windows")

	src := writeFile(t, t.TempDir(), "board.html")

	err := Throw(src)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if _, statErr := os.Stat(src); statErr != nil {
		t.Errorf("file must be untouched on unsupported platform: %v", statErr)
	}
}

func TestUniqueName(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		taken map[string]bool
		want  string
	}{
		{
			name: "free base name",
			base: "board.html",
			want: "board.html",
		},
		{
			name:  "one collision",
			base:  "board.html",
			taken: map[string]bool{"board.html": true},
			want:  "board.2.html",
		},
		{
			name:  "two collisions",
			base:  "board.html",
			taken: map[string]bool{"board.html": true, "board.2.html": true},
			want:  "board.3.html",
		},
		{
			name:  "no extension",
			base:  "board",
			taken: map[string]bool{"board": true},
			want:  "board.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uniqueName(tt.base, func(c string) bool { return !tt.taken[c] })
			if got != tt.want {
				t.Errorf("uniqueName(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}

func TestEscapePath(t *testing.T) {
	got := escapePath("/tmp/dir with space/board.html")
	if got != "/tmp/dir%20with%20space/board.html" {
		t.Errorf("escapePath() = %q", got)
	}
}
