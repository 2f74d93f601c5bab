// Package trash moves files to the platform trash instead of deleting them
// permanently. On Linux it follows the freedesktop.org trash specification
// ($XDG_DATA_HOME/Trash); on macOS it moves files into ~/.Trash. Other
// platforms report ErrUnsupported so callers can fall back to a plain remove.
package trash

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

// ErrUnsupported is returned when no trash location exists on the host.
var ErrUnsupported = errors.New("trash: not supported on this platform")

// Overridable for tests.
var (
	goos        = runtime.GOOS
	userHomeDir = os.UserHomeDir
	now         = time.Now
)

// deletionDateLayout is the local-time format the freedesktop spec requires
// in .trashinfo files.
const deletionDateLayout = "2006-01-02T15:04:05"

// Throw moves the file at path to the platform trash. The file keeps its
// base name where possible; on collision a numeric suffix is appended.
func Throw(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("trash: resolving %s: %w", path, err)
	}
	if _, err := os.Lstat(abs); err != nil {
		return fmt.Errorf("trash: %w", err)
	}

	switch goos {
	case "linux":
		return throwFreedesktop(abs)
	case "darwin":
		return throwDarwin(abs)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, goos)
	}
}

// throwFreedesktop implements the home trash of the freedesktop.org spec:
// the file moves to Trash/files and a matching .trashinfo records the
// original path and deletion time so the file can be restored.
func throwFreedesktop(abs string) error {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := userHomeDir()
		if err != nil {
			return fmt.Errorf("trash: locating home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	filesDir := filepath.Join(dataHome, "Trash", "files")
	infoDir := filepath.Join(dataHome, "Trash", "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("trash: creating %s: %w", dir, err)
		}
	}

	name := uniqueName(filepath.Base(abs), func(candidate string) bool {
		_, filesErr := os.Lstat(filepath.Join(filesDir, candidate))
		_, infoErr := os.Lstat(filepath.Join(infoDir, candidate+".trashinfo"))
		return os.IsNotExist(filesErr) && os.IsNotExist(infoErr)
	})

	// freedesktop.org requires the info file to exist before the move so a
	// crash never leaves an orphaned file in Trash/files.
	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escapePath(abs), now().Format(deletionDateLayout))
	infoPath := filepath.Join(infoDir, name+".trashinfo")
	if err := os.WriteFile(infoPath, []byte(info), 0o600); err != nil {
		return fmt.Errorf("trash: writing trash info: %w", err)
	}

	if err := os.Rename(abs, filepath.Join(filesDir, name)); err != nil {
		_ = os.Remove(infoPath)
		return fmt.Errorf("trash: moving %s: %w", abs, err)
	}
	return nil
}

// throwDarwin moves the file into the user's ~/.Trash. Finder has no
// sidecar metadata requirement for restores initiated by the user.
func throwDarwin(abs string) error {
	home, err := userHomeDir()
	if err != nil {
		return fmt.Errorf("trash: locating home directory: %w", err)
	}
	trashDir := filepath.Join(home, ".Trash")
	if _, err := os.Stat(trashDir); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	name := uniqueName(filepath.Base(abs), func(candidate string) bool {
		_, err := os.Lstat(filepath.Join(trashDir, candidate))
		return os.IsNotExist(err)
	})
	if err := os.Rename(abs, filepath.Join(trashDir, name)); err != nil {
		return fmt.Errorf("trash: moving %s: %w", abs, err)
	}
	return nil
}

// uniqueName returns base, or base with a numeric suffix before the
// extension, such that free(candidate) reports it as available.
func uniqueName(base string, free func(string) bool) string {
	if free(base) {
		return base
	}
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	for i := 2; ; i++ {
		candidate := stem + "." + strconv.Itoa(i) + ext
		if free(candidate) {
			return candidate
		}
	}
}

// escapePath percent-encodes the original path for the .trashinfo file,
// keeping path separators literal per the freedesktop.org trash format.
func escapePath(abs string) string {
	return (&url.URL{Path: abs}).EscapedPath()
}
