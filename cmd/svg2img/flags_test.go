package main

import (
	"testing"
	"time"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		wantConfig     string
		wantTimeout    time.Duration
		wantHeadful    bool
		wantQuality    int
		wantKeep       bool
		wantQuiet      bool
		wantVerbose    bool
		wantVersion    bool
		wantPositional []string
		wantErr        bool
	}{
		{
			name:           "no args",
			args:           []string{"svg2img"},
			wantTimeout:    30 * time.Second,
			wantQuality:    95,
			wantPositional: []string{},
		},
		{
			name:           "single file",
			args:           []string{"svg2img", "board.svg"},
			wantTimeout:    30 * time.Second,
			wantQuality:    95,
			wantPositional: []string{"board.svg"},
		},
		{
			name:           "config flag",
			args:           []string{"svg2img", "--config", "work", "board.svg"},
			wantConfig:     "work",
			wantTimeout:    30 * time.Second,
			wantQuality:    95,
			wantPositional: []string{"board.svg"},
		},
		{
			name:           "timeout flag",
			args:           []string{"svg2img", "--timeout", "90s", "board.svg"},
			wantTimeout:    90 * time.Second,
			wantQuality:    95,
			wantPositional: []string{"board.svg"},
		},
		{
			name:           "headful and keep-staging",
			args:           []string{"svg2img", "--headful", "--keep-staging", "board.svg"},
			wantTimeout:    30 * time.Second,
			wantQuality:    95,
			wantHeadful:    true,
			wantKeep:       true,
			wantPositional: []string{"board.svg"},
		},
		{
			name:           "jpeg quality flag",
			args:           []string{"svg2img", "--jpeg-quality", "80", "board.svg"},
			wantTimeout:    30 * time.Second,
			wantQuality:    80,
			wantPositional: []string{"board.svg"},
		},
		{
			name:           "quiet short flag",
			args:           []string{"svg2img", "-q", "board.svg"},
			wantTimeout:    30 * time.Second,
			wantQuality:    95,
			wantQuiet:      true,
			wantPositional: []string{"board.svg"},
		},
		{
			name:           "verbose short flag",
			args:           []string{"svg2img", "-v", "board.svg"},
			wantTimeout:    30 * time.Second,
			wantQuality:    95,
			wantVerbose:    true,
			wantPositional: []string{"board.svg"},
		},
		{
			name:           "version flag",
			args:           []string{"svg2img", "--version"},
			wantTimeout:    30 * time.Second,
			wantQuality:    95,
			wantVersion:    true,
			wantPositional: []string{},
		},
		{
			name:    "unknown flag",
			args:    []string{"svg2img", "--nope"},
			wantErr: true,
		},
		{
			name:    "bad duration",
			args:    []string{"svg2img", "--timeout", "banana"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flags, positional, err := parseFlags(tt.args)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}

			if flags.config != tt.wantConfig {
				t.Errorf("config = %q, want %q", flags.config, tt.wantConfig)
			}
			if flags.timeout != tt.wantTimeout {
				t.Errorf("timeout = %v, want %v", flags.timeout, tt.wantTimeout)
			}
			if flags.headful != tt.wantHeadful {
				t.Errorf("headful = %v, want %v", flags.headful, tt.wantHeadful)
			}
			if flags.jpegQuality != tt.wantQuality {
				t.Errorf("jpegQuality = %d, want %d", flags.jpegQuality, tt.wantQuality)
			}
			if flags.keepStaging != tt.wantKeep {
				t.Errorf("keepStaging = %v, want %v", flags.keepStaging, tt.wantKeep)
			}
			if flags.quiet != tt.wantQuiet {
				t.Errorf("quiet = %v, want %v", flags.quiet, tt.wantQuiet)
			}
			if flags.verbose != tt.wantVerbose {
				t.Errorf("verbose = %v, want %v", flags.verbose, tt.wantVerbose)
			}
			if flags.version != tt.wantVersion {
				t.Errorf("version = %v, want %v", flags.version, tt.wantVersion)
			}

			if len(positional) != len(tt.wantPositional) {
				t.Fatalf("positional = %v, want %v", positional, tt.wantPositional)
			}
			for i := range positional {
				if positional[i] != tt.wantPositional[i] {
					t.Errorf("positional[%d] = %q, want %q", i, positional[i], tt.wantPositional[i])
				}
			}
		})
	}
}

func TestParseFlags_TracksExplicitFlags(t *testing.T) {
	t.Parallel()

	flags, _, err := parseFlags([]string{"svg2img", "--timeout", "60s", "board.svg"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if !flags.timeoutSet {
		t.Error("timeoutSet must be true when --timeout given")
	}
	if flags.headfulSet || flags.jpegQualitySet || flags.keepStagingSet {
		t.Error("unset flags must not be marked explicit")
	}
}
