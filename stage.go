package svg2img

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/alnah/go-svg2img/internal/hints"
)

// svgDataURI encodes the source asset for inline embedding. A data URI
// avoids file:// cross-origin restrictions inside the automated browser
// and keeps the staging document self-contained.
func svgDataURI(svg []byte) string {
	return "data:image/svg+xml;charset=utf-8;base64," + base64.StdEncoding.EncodeToString(svg)
}

// stagingShell is the fixed markup hosting the embedded image. The <img>
// carries no width or height attribute and no stylesheet applies to it:
// the rendered size must be the SVG's intrinsic size, which is also what
// the capture clip is derived from. Zero margins keep the bounding box
// anchored at the page origin.
const stagingShell = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>svg2img staging</title>
  <style>html, body { margin: 0; padding: 0; background: transparent; } img { display: block; }</style>
</head>
<body>
  <img src="%s" alt="">
</body>
</html>
`

// buildStagingDocument returns the staging HTML embedding the SVG bytes.
func buildStagingDocument(svg []byte) string {
	return fmt.Sprintf(stagingShell, svgDataURI(svg))
}

// writeStagingDocument writes the staging HTML to path.
func writeStagingDocument(path string, doc string) error {
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("%w: %v%s", ErrStagingWrite, err, hints.ForStagingDirectory())
	}
	return nil
}
