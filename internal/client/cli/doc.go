// Package cli implements certctl, the registrar's command-line tool for the
// certkeeper service.
//
// Operator commands authenticate with a token minted by "certctl token" and
// passed with -t or the CERTKEEPER_TOKEN environment variable. "certctl
// verify" is public and needs no token.
package cli
