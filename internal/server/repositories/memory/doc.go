// Package memory provides in-memory implementations of the server
// repositories. Every operation takes the store lock for its whole duration,
// which gives each call the atomicity that the Postgres implementation gets
// from single statements and constraints.
package memory
