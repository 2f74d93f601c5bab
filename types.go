package svg2img

import "time"

// Input contains conversion parameters.
type Input struct {
	SVGPath string // Path to the source SVG file (required)
}

// Result describes the artifacts of a successful conversion.
type Result struct {
	PNGPath string // Transparent-background raster
	JPGPath string // White-background raster
	Width   int    // Raster width in pixels (SVG intrinsic width)
	Height  int    // Raster height in pixels (SVG intrinsic height)

	// CleanupWarning is non-nil when the staging document could not be
	// moved to the trash. The conversion is still considered successful.
	CleanupWarning error
}

// JPEG quality bounds and default.
const (
	MinJPEGQuality     = 1
	MaxJPEGQuality     = 100
	DefaultJPEGQuality = 95
)

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout     time.Duration
	headful     bool
	jpegQuality int
	browserBin  string
	keepStaging bool
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the render-wait timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("svg2img: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithHeadful makes the browser window visible. The default is headless;
// rendering is identical either way, headful exists for interactive
// debugging.
func WithHeadful() Option {
	return func(s *Service) {
		s.cfg.headful = true
	}
}

// WithJPEGQuality sets the JPG encoding quality (1-100, default 95).
// Panics if q is out of range (programmer error).
func WithJPEGQuality(q int) Option {
	if q < MinJPEGQuality || q > MaxJPEGQuality {
		panic("svg2img: WithJPEGQuality must be between 1 and 100")
	}
	return func(s *Service) {
		s.cfg.jpegQuality = q
	}
}

// WithBrowserBin sets an explicit Chrome/Chromium binary instead of the
// one rod discovers or downloads.
func WithBrowserBin(path string) Option {
	return func(s *Service) {
		s.cfg.browserBin = path
	}
}

// WithKeepStaging leaves the staging HTML document in place after the run
// instead of moving it to the trash. Useful for debugging the embedder.
func WithKeepStaging() Option {
	return func(s *Service) {
		s.cfg.keepStaging = true
	}
}
