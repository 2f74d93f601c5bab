package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags. The *Set fields record whether
// the user passed the flag explicitly, so flags override the config file
// only when actually given.
type cliFlags struct {
	config      string
	timeout     time.Duration
	headful     bool
	jpegQuality int
	keepStaging bool
	quiet       bool
	verbose     bool
	version     bool

	timeoutSet     bool
	headfulSet     bool
	jpegQualitySet bool
	keepStagingSet bool
}

const usageText = `svg2img converts an SVG file to PNG (transparent) and JPG (white background).

Usage:
  svg2img [flags] <input.svg>
  svg2img doctor [--json]

The rasters are written next to the input with the same base name. Existing
outputs are overwritten.

Flags:
`

// parseFlags parses args into flags and positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("svg2img", flag.ContinueOnError)
	fs.StringVar(&f.config, "config", "", "config name or path to a YAML config file")
	fs.DurationVar(&f.timeout, "timeout", 30*time.Second, "render-wait timeout")
	fs.BoolVar(&f.headful, "headful", false, "show the browser window (debugging)")
	fs.IntVar(&f.jpegQuality, "jpeg-quality", 95, "JPG encoding quality (1-100)")
	fs.BoolVar(&f.keepStaging, "keep-staging", false, "leave the staging HTML in place")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	f.timeoutSet = fs.Changed("timeout")
	f.headfulSet = fs.Changed("headful")
	f.jpegQualitySet = fs.Changed("jpeg-quality")
	f.keepStagingSet = fs.Changed("keep-staging")

	return f, fs.Args(), nil
}
