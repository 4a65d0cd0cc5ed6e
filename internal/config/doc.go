// Package config loads, normalizes, and validates subrefine configuration.
//
// It supplies repository defaults, reads TOML files, and expands user paths
// (including tilde shortcuts). Unset values silently fall back to the
// documented defaults; only explicitly nonsensical values fail validation.
//
// Always obtain settings through this package so downstream code receives
// normalized thresholds and clear validation errors.
package config
