// Package buildinfo carries build-time metadata injected via -ldflags.
package buildinfo

import "fmt"

// UnknownValue is reported when a field was not set at build time.
const UnknownValue = "unknown"

// Version is the Git version tag, set at build time.
var Version = UnknownValue

// BuildDate is the binary build timestamp, set at build time.
var BuildDate = UnknownValue

// String returns the version line printed by the version flag.
func String() string {
	return fmt.Sprintf("%s (built %s)", Version, BuildDate)
}
