package svg2img

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-svg2img/internal/fileutil"
)

// artifactPaths holds the paths derived from one source SVG. All siblings
// share the source's directory and base name.
type artifactPaths struct {
	SVG     string // Source asset
	PNG     string // Transparent-background output
	JPG     string // White-background output
	Staging string // Temporary HTML document
}

// stagingSuffix distinguishes the staging document from a user's own
// <base>.html sitting next to the SVG.
const stagingSuffix = ".svg2img.html"

// resolveArtifacts validates the source path and derives the sibling
// output and staging paths. No side effects beyond path computation.
func resolveArtifacts(svgPath string) (*artifactPaths, error) {
	if svgPath == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrInvalidInput)
	}

	if ext := filepath.Ext(svgPath); !strings.EqualFold(ext, ".svg") {
		return nil, fmt.Errorf("%w: %q must have .svg extension", ErrInvalidInput, svgPath)
	}

	if !fileutil.FileExists(svgPath) {
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidInput, svgPath)
	}

	base := strings.TrimSuffix(svgPath, filepath.Ext(svgPath))
	return &artifactPaths{
		SVG:     svgPath,
		PNG:     base + ".png",
		JPG:     base + ".jpg",
		Staging: base + stagingSuffix,
	}, nil
}
