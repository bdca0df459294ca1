// Package auth mints and checks the operator tokens that guard the
// registrar-only operations.
package auth
