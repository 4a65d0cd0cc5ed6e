package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Default()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.Refine.MaxBlockChars != 84 {
		t.Errorf("MaxBlockChars = %d, want 84", cfg.Refine.MaxBlockChars)
	}
	if cfg.Output.Suffix != ".refined" {
		t.Errorf("Suffix = %q", cfg.Output.Suffix)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("missing config must not error: %v", err)
	}
	if exists {
		t.Error("exists should be false for a missing file")
	}
	if resolved == "" {
		t.Error("resolved path should be reported even when missing")
	}
	if cfg.Refine.MaxCPS != 17 {
		t.Errorf("MaxCPS = %v, want default 17", cfg.Refine.MaxCPS)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[refine]\nmax_cps = 20.0\nmax_line_chars = 36\n\n[logging]\nformat = \"json\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Error("exists should be true")
	}
	if cfg.Refine.MaxCPS != 20 {
		t.Errorf("MaxCPS = %v, want 20", cfg.Refine.MaxCPS)
	}
	if cfg.Refine.MaxLineChars != 36 {
		t.Errorf("MaxLineChars = %d, want 36", cfg.Refine.MaxLineChars)
	}
	// Unset keys fall back silently.
	if cfg.Refine.MinDurationSeconds != 1.0 {
		t.Errorf("MinDurationSeconds = %v, want default", cfg.Refine.MinDurationSeconds)
	}
	// max_block_chars defaults to twice the configured line length.
	if cfg.Refine.MaxBlockChars != 72 {
		t.Errorf("MaxBlockChars = %d, want 72", cfg.Refine.MaxBlockChars)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q", cfg.Logging.Format)
	}
}

func TestLoadPinnedBlockBudgetStands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[refine]\nmax_line_chars = 36\nmax_block_chars = 100\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Refine.MaxBlockChars != 100 {
		t.Errorf("MaxBlockChars = %d, want pinned 100", cfg.Refine.MaxBlockChars)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantSub string
	}{
		{"negative cps", "[refine]\nmax_cps = -3.0\n", "max_cps"},
		{"three lines", "[refine]\nmax_lines = 3\n", "max_lines"},
		{"bad log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"negative frame rate", "[refine]\nframe_rate = -1.0\n", "frame_rate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q should mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config must load cleanly: %v", err)
	}
	if !exists {
		t.Error("sample config should exist")
	}
	if cfg.Refine.MaxCPS != 17 || cfg.Refine.MaxLineChars != 42 {
		t.Errorf("sample config drifted from defaults: %+v", cfg.Refine)
	}
}

func TestRefineOptionsBridge(t *testing.T) {
	cfg := Default()
	cfg.Refine.MaxCPS = 15
	cfg.Refine.SoftBoundaryWords = []string{"och"}

	opts := cfg.RefineOptions()

	if opts.MaxCPS != 15 {
		t.Errorf("MaxCPS = %v", opts.MaxCPS)
	}
	if opts.MinDuration != 1.0 {
		t.Errorf("MinDuration = %v", opts.MinDuration)
	}
	if len(opts.SoftBoundaryWords) != 1 || opts.SoftBoundaryWords[0] != "och" {
		t.Errorf("SoftBoundaryWords = %v", opts.SoftBoundaryWords)
	}
}
