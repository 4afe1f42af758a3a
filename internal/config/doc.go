// Package config loads the TOML configuration file and applies
// defaults, path expansion, and validation. The zero configuration is
// usable: every knob has a default and a missing file is not an error.
package config
