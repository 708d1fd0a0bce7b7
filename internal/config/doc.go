// Package config loads drivectl's configuration.
//
// Precedence, highest first: command-line flags (applied by the cmd layer),
// DRIVECTL_* environment variables, the YAML config file, built-in defaults.
// The config file lives at <user config dir>/drivectl/config.yaml and is
// optional; a missing file is not an error.
package config
