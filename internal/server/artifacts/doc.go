// Package artifacts stores certificate PDFs and verifies them against their
// content digest.
package artifacts
