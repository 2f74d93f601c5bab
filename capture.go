package svg2img

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// clipFor builds the screenshot clip from the element's page position and
// the image's intrinsic size. Both captures share this geometry.
func clipFor(box *proto.DOMRect, width, height int) (*proto.PageViewport, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: intrinsic size %dx%d", ErrCapture, width, height)
	}
	return &proto.PageViewport{
		X:      box.X,
		Y:      box.Y,
		Width:  float64(width),
		Height: float64(height),
		Scale:  1,
	}, nil
}

// captureArtifacts takes the two clipped screenshots of the same rendered
// page state: PNG over a fully transparent page background, then JPG
// composited over opaque white.
func captureArtifacts(page *rod.Page, box *proto.DOMRect, width, height, jpegQuality int) (*capture, error) {
	clip, err := clipFor(box, width, height)
	if err != nil {
		return nil, err
	}

	if err := setPageBackground(page, 0, 0, 0, 0); err != nil {
		return nil, err
	}
	png, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format:                proto.PageCaptureScreenshotFormatPng,
		Clip:                  clip,
		FromSurface:           true,
		CaptureBeyondViewport: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: png capture: %v", ErrCapture, err)
	}

	if err := setPageBackground(page, 255, 255, 255, 1); err != nil {
		return nil, err
	}
	jpg, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format:                proto.PageCaptureScreenshotFormatJpeg,
		Quality:               intPtr(jpegQuality),
		Clip:                  clip,
		FromSurface:           true,
		CaptureBeyondViewport: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: jpg capture: %v", ErrCapture, err)
	}

	return &capture{PNG: png, JPG: jpg, Width: width, Height: height}, nil
}

// setPageBackground overrides the compositing background for screenshots.
// Alpha 0 preserves SVG transparency in the PNG; opaque white gives the
// JPG its background.
func setPageBackground(page *rod.Page, r, g, b int, a float64) error {
	err := proto.EmulationSetDefaultBackgroundColorOverride{
		Color: &proto.DOMRGBA{R: r, G: g, B: b, A: floatPtr(a)},
	}.Call(page)
	if err != nil {
		return fmt.Errorf("%w: overriding page background: %v", ErrCapture, err)
	}
	return nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// intPtr returns a pointer to an int value.
func intPtr(v int) *int {
	return &v
}
