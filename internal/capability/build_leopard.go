//go:build statcompat_leopard

package capability

// Release names the profile compiled into this build.
const Release = "10.5"

// Build is the capability set compiled into this build.
//
//nolint:gochecknoglobals
var Build = Set{SupportAtCalls: true, HaveStat64: true}
