// Package migrations embeds the goose SQL migrations of the server schema.
package migrations
