package capability

import (
	"fmt"
	"sort"
)

// Set describes which parts of the wide-record ABI the target OS release is
// missing and therefore need to be synthesized.
type Set struct {
	// SupportStat64 is set when the release lacks the 64-bit inode entry
	// points and they must be built on top of the narrow calls.
	SupportStat64 bool

	// SupportAtCalls is set when the release lacks the directory-handle
	// relative queries.
	SupportAtCalls bool

	// HaveStat64 is set when the SDK declares the plain stat64 names, in
	// which case they are provided alongside the suffixed ones.
	HaveStat64 bool
}

// Any reports whether anything needs to be shimmed at all.
func (s Set) Any() bool {
	return s.SupportStat64 || s.SupportAtCalls
}

func (s Set) String() string {
	return fmt.Sprintf("stat64=%t atcalls=%t have_stat64=%t", s.SupportStat64, s.SupportAtCalls, s.HaveStat64)
}

// Profiles maps a target release to the capabilities it is missing.
//
//nolint:gochecknoglobals
var Profiles = map[string]Set{
	"10.4":        {SupportStat64: true, SupportAtCalls: true, HaveStat64: false},
	"10.4-sdk105": {SupportStat64: true, SupportAtCalls: true, HaveStat64: true},
	"10.5":        {SupportAtCalls: true, HaveStat64: true},
	"10.6":        {SupportAtCalls: true, HaveStat64: true},
	"10.7":        {SupportAtCalls: true, HaveStat64: true},
	"10.8":        {SupportAtCalls: true, HaveStat64: true},
	"10.9":        {SupportAtCalls: true, HaveStat64: true},
	"10.10":       {HaveStat64: true},
	"native":      {},
}

// Lookup returns the capability set for a release name.
func Lookup(release string) (Set, error) {
	set, ok := Profiles[release]
	if !ok {
		return Set{}, fmt.Errorf("(capability) %w: %q", ErrUnknownRelease, release)
	}

	return set, nil
}

// Releases returns the known release names in sorted order.
func Releases() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
