//go:build !statcompat_tiger && !statcompat_tiger_sdk105 && !statcompat_leopard

package capability

// Release names the profile compiled into this build.
const Release = "native"

// Build is the capability set compiled into this build. Nothing is shimmed.
//
//nolint:gochecknoglobals
var Build = Set{}
