// Package flagx lets several components parse their own flags from one
// command line without tripping over each other's flags.
package flagx
