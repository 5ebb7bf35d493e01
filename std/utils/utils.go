package utils

// aocd version from source control, set with -ldflags at build time.
var AocdVersion string = "unknown"
