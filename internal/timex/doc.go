// Package timex holds time helpers for configuration files.
package timex
