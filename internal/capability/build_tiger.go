//go:build statcompat_tiger

package capability

// Release names the profile compiled into this build.
const Release = "10.4"

// Build is the capability set compiled into this build.
//
//nolint:gochecknoglobals
var Build = Set{SupportStat64: true, SupportAtCalls: true, HaveStat64: false}
