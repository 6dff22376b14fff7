// Package version holds the collector release string.
package version

// Version is printed by the version command and stamped into the header of
// newly created collection logs.
var Version = "v0.1.0"
