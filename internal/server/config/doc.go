// Package config loads runtime configuration for the certkeeper server.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Durations in the JSON file use timex.Duration, so both "5s" and integer
// nanoseconds are accepted.
package config
