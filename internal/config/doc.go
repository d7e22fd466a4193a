// Package config loads, normalizes, and validates retime's TOML
// configuration.
//
// Load resolves the config path (explicit flag first, then
// ~/.config/retime/config.toml, then ./retime.toml), applies repository
// defaults for anything unset, expands tilde paths, and validates the
// result. A missing file is not an error; defaults apply.
package config
