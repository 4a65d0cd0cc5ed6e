package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"subrefine/internal/refine"
)

//go:embed sample_config.toml
var sampleConfig string

// Refine contains the cue refinement thresholds.
type Refine struct {
	MaxCPS             float64  `toml:"max_cps"`
	MinDurationSeconds float64  `toml:"min_duration_seconds"`
	GapFrames          int      `toml:"gap_frames"`
	FrameRate          float64  `toml:"frame_rate"`
	MaxLineChars       int      `toml:"max_line_chars"`
	MaxLines           int      `toml:"max_lines"`
	MaxBlockChars      int      `toml:"max_block_chars"`
	MaxMergedSeconds   float64  `toml:"max_merged_seconds"`
	BoundaryChars      string   `toml:"boundary_chars"`
	ClauseChars        string   `toml:"clause_chars"`
	SoftBoundaryWords  []string `toml:"soft_boundary_words"`
	Interjections      []string `toml:"interjections"`
}

// Output contains configuration for where refined documents are written.
type Output struct {
	Suffix    string `toml:"suffix"`
	Overwrite bool   `toml:"overwrite"`
}

// Logging contains log output configuration.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config centralizes every knob the CLI needs.
type Config struct {
	Refine  Refine  `toml:"refine"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/subrefine/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error: defaults apply. The second return value is the resolved
// path, the third reports whether a file was actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("subrefine.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// RefineOptions bridges the configuration into engine options.
func (c *Config) RefineOptions() refine.Options {
	return refine.Options{
		MaxCPS:            c.Refine.MaxCPS,
		MinDuration:       c.Refine.MinDurationSeconds,
		GapFrames:         c.Refine.GapFrames,
		FrameRate:         c.Refine.FrameRate,
		MaxLineChars:      c.Refine.MaxLineChars,
		MaxLines:          c.Refine.MaxLines,
		MaxBlockChars:     c.Refine.MaxBlockChars,
		MaxMergedDuration: c.Refine.MaxMergedSeconds,
		BoundaryChars:     c.Refine.BoundaryChars,
		ClauseChars:       c.Refine.ClauseChars,
		SoftBoundaryWords: c.Refine.SoftBoundaryWords,
		Interjections:     c.Refine.Interjections,
	}
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
