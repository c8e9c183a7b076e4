// Package config loads, normalizes, and validates spritedex configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Directories, stage artifact names, and
// log settings are all discovered in one pass so every command sees the
// same sanitized values.
package config
