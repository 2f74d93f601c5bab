// Package svg2img converts an SVG file to PNG and JPG using headless Chrome.
//
// # Quick Start
//
// Create a service, convert a file, and close when done:
//
//	svc := svg2img.New()
//	defer svc.Close()
//
//	result, err := svc.Convert(ctx, svg2img.Input{SVGPath: "board.svg"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.PNGPath, result.JPGPath)
//
// Both rasters are written next to the input with the same base name:
// board.svg produces board.png (transparent background) and board.jpg
// (white background). Existing outputs are silently overwritten.
//
// # Conversion Pipeline
//
// The conversion follows these stages:
//
//  1. Input resolution (extension check, sibling output paths)
//  2. Staging: the SVG is base64-encoded into a data URI and embedded in
//     a minimal HTML document written next to the input
//  3. Rendering via headless Chrome (go-rod): wait for the image load
//     event, measure its intrinsic size
//  4. Capture: two clipped screenshots of the same page state, one over a
//     transparent background (PNG) and one over white (JPG)
//  5. Cleanup: the staging document is moved to the platform trash
//
// Output dimensions always match the SVG's intrinsic size; display styling
// on the staging document never affects the rasters.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := svg2img.New(
//	    svg2img.WithTimeout(time.Minute),
//	    svg2img.WithJPEGQuality(90),
//	    svg2img.WithHeadful(),       // visible browser window, for debugging
//	)
//
// # Browser Requirements
//
// Rendering requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package svg2img
