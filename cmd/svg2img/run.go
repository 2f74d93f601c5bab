package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	svg2img "github.com/alnah/go-svg2img"
	"github.com/alnah/go-svg2img/internal/config"
	"github.com/alnah/go-svg2img/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs = errors.New("usage: svg2img [flags] <input.svg>")
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input svg2img.Input) (*svg2img.Result, error)
	Close() error
}

// newService creates the conversion service; replaced in tests.
var newService = func(opts ...svg2img.Option) Converter {
	return svg2img.New(opts...)
}

// run resolves settings, performs the conversion, and reports the result.
func run(positional []string, flags *cliFlags, stdout, stderr io.Writer) error {
	if len(positional) != 1 {
		return ErrInvalidArgs
	}

	cfg, err := resolveSettings(flags)
	if err != nil {
		return err
	}

	svc := newService(serviceOptions(cfg)...)
	defer svc.Close()

	if flags.verbose {
		fmt.Fprintf(stderr, "Converting %s (timeout %ds, headful=%v)\n",
			positional[0], cfg.Render.TimeoutSeconds, cfg.Render.Headful)
	}

	result, err := svc.Convert(context.Background(), svg2img.Input{SVGPath: positional[0]})
	if err != nil {
		return err
	}

	if result.CleanupWarning != nil {
		fmt.Fprintf(stderr, "warning: %v\n", result.CleanupWarning)
	}
	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s and %s (%dx%d)\n",
			result.PNGPath, result.JPGPath, result.Width, result.Height)
	}
	return nil
}

// resolveSettings merges defaults, the optional config file, and explicit
// flags, in that order of precedence.
func resolveSettings(flags *cliFlags) (*config.Config, error) {
	cfg := config.Default()

	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchedPaths(flags.config)))
			}
			return nil, err
		}
		cfg = loaded
	}

	if flags.timeoutSet {
		cfg.Render.TimeoutSeconds = timeoutSeconds(flags.timeout)
	}
	if flags.headfulSet {
		cfg.Render.Headful = flags.headful
	}
	if flags.jpegQualitySet {
		cfg.Output.JPEGQuality = flags.jpegQuality
	}
	if flags.keepStagingSet {
		cfg.Cleanup.KeepStaging = flags.keepStaging
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// timeoutSeconds converts a flag duration to whole seconds, rounding up so
// a sub-second value like 500ms becomes 1 instead of truncating to an
// invalid 0. Negative values pass through for Validate to reject.
func timeoutSeconds(d time.Duration) int {
	secs := int(d / time.Second)
	if d > 0 && d%time.Second != 0 {
		secs++
	}
	return secs
}

// serviceOptions translates resolved settings into service options.
func serviceOptions(cfg *config.Config) []svg2img.Option {
	opts := []svg2img.Option{
		svg2img.WithTimeout(time.Duration(cfg.Render.TimeoutSeconds) * time.Second),
		svg2img.WithJPEGQuality(cfg.Output.JPEGQuality),
	}
	if cfg.Render.Headful {
		opts = append(opts, svg2img.WithHeadful())
	}
	if cfg.Render.BrowserBin != "" {
		opts = append(opts, svg2img.WithBrowserBin(cfg.Render.BrowserBin))
	}
	if cfg.Cleanup.KeepStaging {
		opts = append(opts, svg2img.WithKeepStaging())
	}
	return opts
}
