// Package config loads CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-svg2img/internal/fileutil"
	"github.com/alnah/go-svg2img/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidTimeout  = errors.New("invalid timeout")
	ErrInvalidQuality  = errors.New("invalid jpeg quality")
)

// Timeout and quality bounds.
const (
	DefaultTimeoutSeconds = 30
	MaxTimeoutSeconds     = 600
	MinJPEGQuality        = 1
	MaxJPEGQuality        = 100
	DefaultJPEGQuality    = 95
)

// Config holds all configuration for the conversion CLI.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Cleanup CleanupConfig `yaml:"cleanup"`
}

// RenderConfig defines browser rendering options.
type RenderConfig struct {
	Headful        bool   `yaml:"headful"`        // Visible browser window (default: headless)
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // Render-wait timeout (default: 30)
	BrowserBin     string `yaml:"browserBin"`     // Explicit Chrome binary (empty = auto-discover)
}

// OutputConfig defines raster encoding options.
type OutputConfig struct {
	JPEGQuality int `yaml:"jpegQuality"` // 1-100 (default: 95)
}

// CleanupConfig defines staging document disposal options.
type CleanupConfig struct {
	KeepStaging bool `yaml:"keepStaging"` // Leave the staging HTML in place (default: trash it)
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Headful:        false,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Output:  OutputConfig{JPEGQuality: DefaultJPEGQuality},
		Cleanup: CleanupConfig{KeepStaging: false},
	}
}

// Validate checks bounds on numeric settings.
func (c *Config) Validate() error {
	if c.Render.TimeoutSeconds <= 0 || c.Render.TimeoutSeconds > MaxTimeoutSeconds {
		return fmt.Errorf("%w: %d seconds (must be between 1 and %d)",
			ErrInvalidTimeout, c.Render.TimeoutSeconds, MaxTimeoutSeconds)
	}
	if c.Output.JPEGQuality < MinJPEGQuality || c.Output.JPEGQuality > MaxJPEGQuality {
		return fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidQuality, c.Output.JPEGQuality, MinJPEGQuality, MaxJPEGQuality)
	}
	return nil
}

// Load reads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback). Fields the
// file leaves unset keep their zero values; callers merge over Default().
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolvePath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchedPaths returns the locations Load would try for a config name,
// for use in error hints.
func SearchedPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-svg2img", name+ext))
		}
	}
	return paths
}

// resolvePath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-svg2img/
func resolvePath(name string) (string, error) {
	tried := SearchedPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
