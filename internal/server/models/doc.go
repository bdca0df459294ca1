// Package models defines server-side data models persisted in the database.
package models
