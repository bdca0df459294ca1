// Package common defines shared constants and sentinel errors used across
// the certkeeper server. Callers should use errors.Is to match these values,
// either against a specific error or against its category.
package common
