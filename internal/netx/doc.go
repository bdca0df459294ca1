// Package netx holds small HTTP helpers.
package netx
