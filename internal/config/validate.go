package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRefine(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRefine() error {
	r := c.Refine
	if r.MaxCPS <= 0 {
		return errors.New("refine.max_cps must be positive")
	}
	if r.MinDurationSeconds < 0 {
		return errors.New("refine.min_duration_seconds must not be negative")
	}
	if r.GapFrames < 0 {
		return errors.New("refine.gap_frames must not be negative")
	}
	if r.FrameRate <= 0 {
		return errors.New("refine.frame_rate must be positive")
	}
	if r.MaxLineChars <= 0 {
		return errors.New("refine.max_line_chars must be positive")
	}
	if r.MaxLines < 1 || r.MaxLines > 2 {
		return fmt.Errorf("refine.max_lines must be 1 or 2 (two-way rebalance only), got %d", r.MaxLines)
	}
	if r.MaxBlockChars <= 0 {
		return errors.New("refine.max_block_chars must be positive")
	}
	if r.MaxMergedSeconds <= 0 {
		return errors.New("refine.max_merged_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
