// Package config loads gridpath settings from flags, environment variables
// and an optional YAML or JSON file, and builds the logrus logger the
// binaries share.
//
// Precedence, highest first:
//
//  1. command-line flags that were set explicitly
//  2. GRIDPATH_* environment variables (GRIDPATH_COLS, GRIDPATH_LOG_LEVEL, ...)
//  3. the file named by --config
//  4. flag defaults
//
// Keys use snake_case everywhere: flag "--log-level" maps to key "log_level"
// and to GRIDPATH_LOG_LEVEL.
package config
