// Package config loads, normalizes, and validates setdex configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// SETDEX_ANALYSES_DIR. The Config type centralizes the analyses tree, output
// directory, generation table and logging knobs the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
