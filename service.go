package svg2img

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-svg2img/internal/trash"
)

// Service orchestrates the SVG-to-raster pipeline.
type Service struct {
	cfg      serviceConfig
	renderer rasterRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:     defaultTimeout,
			jpegQuality: DefaultJPEGQuality,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create renderer if not injected (e.g., by tests)
	if s.renderer == nil {
		s.renderer = newRodRenderer(s.cfg)
	}

	return s
}

// Convert runs the full pipeline for one SVG file and returns the output
// paths and raster dimensions. The context is used for cancellation and
// timeout.
//
// The staging document is always released on return, success or failure:
// it is moved to the platform trash (recoverable deletion). If the trash
// is unavailable the document is removed outright and the failure is
// reported via Result.CleanupWarning without affecting the conversion.
//
// Existing files at the output paths are silently overwritten.
func (s *Service) Convert(ctx context.Context, input Input) (result *Result, err error) {
	paths, err := resolveArtifacts(input.SVGPath)
	if err != nil {
		return nil, err
	}

	svg, err := os.ReadFile(paths.SVG) // #nosec G304 -- source path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidInput, paths.SVG, err)
	}

	if err := writeStagingDocument(paths.Staging, buildStagingDocument(svg)); err != nil {
		return nil, err
	}

	// Release the staging document on every exit path, including errors
	// from rendering or capture.
	defer func() {
		warn := s.releaseStaging(paths.Staging)
		if result != nil {
			result.CleanupWarning = warn
		}
	}()

	shot, err := s.renderer.RenderFromFile(ctx, paths.Staging)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(paths.PNG, shot.PNG, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactWrite, paths.PNG, err)
	}
	if err := os.WriteFile(paths.JPG, shot.JPG, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactWrite, paths.JPG, err)
	}

	return &Result{
		PNGPath: paths.PNG,
		JPGPath: paths.JPG,
		Width:   shot.Width,
		Height:  shot.Height,
	}, nil
}

// releaseStaging moves the staging document to the trash, falling back to
// a plain remove when the trash is unavailable. Returns a non-nil warning
// wrapping ErrCleanup only when the file could not be removed at all.
func (s *Service) releaseStaging(path string) error {
	if s.cfg.keepStaging {
		return nil
	}

	trashErr := trash.Throw(path)
	if trashErr == nil {
		return nil
	}

	if rmErr := os.Remove(path); rmErr != nil {
		return fmt.Errorf("%w: %v (fallback remove: %v)", ErrCleanup, trashErr, rmErr)
	}
	return fmt.Errorf("%w: %v (removed permanently instead)", ErrCleanup, trashErr)
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.renderer != nil {
		return s.renderer.Close()
	}
	return nil
}
