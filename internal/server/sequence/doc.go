// Package sequence allocates per-year certificate numbers.
package sequence
