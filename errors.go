package svg2img

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInvalidInput means the source path does not exist or is not an SVG.
	ErrInvalidInput = errors.New("invalid input file")

	// ErrStagingWrite means the staging HTML document could not be written.
	ErrStagingWrite = errors.New("failed to write staging document")

	// ErrBrowserLaunch means no usable Chrome/Chromium could be started.
	ErrBrowserLaunch = errors.New("failed to launch browser")

	// ErrPageCreate means the staging document could not be opened as a page.
	ErrPageCreate = errors.New("failed to create browser page")

	// ErrRenderTimeout means the embedded image never fired its load event.
	ErrRenderTimeout = errors.New("image did not finish loading")

	// ErrCapture means the rendered image has no area to capture.
	ErrCapture = errors.New("rendered image has zero size")

	// ErrArtifactWrite means an output raster could not be written.
	ErrArtifactWrite = errors.New("failed to write output image")

	// ErrCleanup means the staging document could not be moved to the trash.
	// Non-fatal: it is reported via Result.CleanupWarning, never as the
	// Convert error when the artifacts were written.
	ErrCleanup = errors.New("failed to trash staging document")
)
