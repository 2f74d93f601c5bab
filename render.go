package svg2img

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-svg2img/internal/hints"
)

// rasterRenderer abstracts rendering a staging document into raster
// captures to enable testing without a browser.
type rasterRenderer interface {
	RenderFromFile(ctx context.Context, filePath string) (*capture, error)
	Close() error
}

// Compile-time interface check
var _ rasterRenderer = (*rodRenderer)(nil)

// capture holds the two encoded screenshots of one render session.
// Both use identical clip geometry, so their pixel dimensions match.
type capture struct {
	PNG    []byte // Transparent background, alpha preserved
	JPG    []byte // Composited over opaque white
	Width  int    // Intrinsic width of the rendered SVG
	Height int    // Intrinsic height of the rendered SVG
}

// rodRenderer implements rasterRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	cfg     serviceConfig
	browser *rod.Browser
}

// newRodRenderer creates a rodRenderer with the given configuration.
func newRodRenderer(cfg serviceConfig) *rodRenderer {
	return &rodRenderer{cfg: cfg}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New().Headless(!r.cfg.headful)

	// Use pre-installed browser if specified (Docker/containerized environments)
	bin := r.cfg.browserBin
	if bin == "" {
		bin = os.Getenv("ROD_BROWSER_BIN")
	}
	if bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || bin != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrBrowserLaunch, err, hints.ForBrowserLaunch())
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v%s", ErrBrowserLaunch, err, hints.ForBrowserLaunch())
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens the staging document, waits for the embedded image
// to finish loading, measures it, and captures the PNG and JPG rasters.
// Returns explicit errors instead of panicking when browser operations fail.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string) (*capture, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving staging path: %v", ErrPageCreate, err)
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + abs})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for the image load event with timeout from context or default.
	// This is the only suspension point: the capture must not run before
	// the raster content is fully decoded.
	timeout := r.cfg.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	page = page.Timeout(timeout)

	img, err := page.Element("img")
	if err != nil {
		return nil, renderWaitError(err)
	}
	if err := img.WaitLoad(); err != nil {
		return nil, renderWaitError(err)
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	width, height, err := intrinsicSize(img)
	if err != nil {
		return nil, err
	}

	shape, err := img.Shape()
	if err != nil {
		return nil, fmt.Errorf("%w: measuring image box: %v", ErrCapture, err)
	}

	return captureArtifacts(page, shape.Box(), width, height, r.cfg.jpegQuality)
}

// renderWaitError maps rod wait failures onto the render-timeout sentinel.
func renderWaitError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v%s", ErrRenderTimeout, err, hints.ForTimeout())
	}
	return fmt.Errorf("%w: %v", ErrRenderTimeout, err)
}

// intrinsicSize queries the natural dimensions of the embedded image.
// The clip is derived from these, never from display styling, so the
// raster dimensions always match the SVG's intrinsic size.
func intrinsicSize(img *rod.Element) (width, height int, err error) {
	obj, err := img.Eval(`() => ({ w: this.naturalWidth, h: this.naturalHeight })`)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: measuring intrinsic size: %v", ErrCapture, err)
	}
	return obj.Value.Get("w").Int(), obj.Value.Get("h").Int(), nil
}
