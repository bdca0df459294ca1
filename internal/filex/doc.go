// Package filex contains small filesystem helpers.
package filex
