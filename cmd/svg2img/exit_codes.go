package main

import (
	"errors"
	"os"

	svg2img "github.com/alnah/go-svg2img"
	"github.com/alnah/go-svg2img/internal/config"
)

// Exit codes for the svg2img CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input validation
	ExitIO      = 3 // File not found, permission denied, write failures
	ExitBrowser = 4 // Browser launch, render, or capture errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, svg2img.ErrBrowserLaunch) ||
		errors.Is(err, svg2img.ErrPageCreate) ||
		errors.Is(err, svg2img.ErrRenderTimeout) ||
		errors.Is(err, svg2img.ErrCapture) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, svg2img.ErrStagingWrite) ||
		errors.Is(err, svg2img.ErrArtifactWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, svg2img.ErrInvalidInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, config.ErrInvalidQuality) {
		return ExitUsage
	}

	return ExitGeneral
}
