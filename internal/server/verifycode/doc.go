// Package verifycode generates public verification codes for certificates.
package verifycode
