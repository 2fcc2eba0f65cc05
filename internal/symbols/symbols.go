package symbols

import (
	"fmt"

	"github.com/desertwitch/statcompat/internal/capability"
)

// Family is the kind of metadata query behind an entry point.
type Family int

const (
	Path    Family = iota // query by path, following a final symlink
	Link                  // query by path, not following a final symlink
	Desc                  // query by open descriptor
	PathSec               // Path with a security descriptor
	LinkSec               // Link with a security descriptor
	DescSec               // Desc with a security descriptor
	At                    // query relative to an open directory handle
)

func (f Family) String() string {
	switch f {
	case Path:
		return "path"
	case Link:
		return "link"
	case Desc:
		return "desc"
	case PathSec:
		return "path+sec"
	case LinkSec:
		return "link+sec"
	case DescSec:
		return "desc+sec"
	case At:
		return "at"
	default:
		return "unknown"
	}
}

// Width is the record shape an entry point fills.
type Width int

const (
	Narrow Width = iota
	Wide
)

func (w Width) String() string {
	if w == Wide {
		return "wide"
	}

	return "narrow"
}

// Variant distinguishes multiple names exported for the same behavior.
type Variant int

const (
	Suffixed Variant = iota // the $INODE64-decorated name
	Plain                   // the undecorated *64 name
	Synonym                 // a convenience alias with no prototype in any SDK
)

func (v Variant) String() string {
	switch v {
	case Suffixed:
		return "suffixed"
	case Plain:
		return "plain"
	case Synonym:
		return "synonym"
	default:
		return "unknown"
	}
}

// Key identifies the behavior a symbol name binds to.
type Key struct {
	Family  Family
	Width   Width
	Variant Variant
}

// Symbol is a single required exported name.
type Symbol struct {
	Name string
	Key  Key

	needs func(capability.Set) bool
}

func stat64Suffixed(s capability.Set) bool { return s.SupportStat64 }
func stat64Plain(s capability.Set) bool    { return s.SupportStat64 && s.HaveStat64 }
func atNarrow(s capability.Set) bool       { return s.SupportAtCalls }
func atWidePlain(s capability.Set) bool    { return s.SupportAtCalls && s.HaveStat64 }

// Table lists every symbol the shim knows how to provide.
//
//nolint:gochecknoglobals
var Table = []Symbol{
	{"stat$INODE64", Key{Path, Wide, Suffixed}, stat64Suffixed},
	{"lstat$INODE64", Key{Link, Wide, Suffixed}, stat64Suffixed},
	{"fstat$INODE64", Key{Desc, Wide, Suffixed}, stat64Suffixed},
	{"statx_np$INODE64", Key{PathSec, Wide, Suffixed}, stat64Suffixed},
	{"lstatx_np$INODE64", Key{LinkSec, Wide, Suffixed}, stat64Suffixed},
	{"fstatx_np$INODE64", Key{DescSec, Wide, Suffixed}, stat64Suffixed},

	{"stat64", Key{Path, Wide, Plain}, stat64Plain},
	{"lstat64", Key{Link, Wide, Plain}, stat64Plain},
	{"fstat64", Key{Desc, Wide, Plain}, stat64Plain},
	{"statx64_np", Key{PathSec, Wide, Plain}, stat64Plain},
	{"lstatx64_np", Key{LinkSec, Wide, Plain}, stat64Plain},
	{"fstatx64_np", Key{DescSec, Wide, Plain}, stat64Plain},

	{"fstatat", Key{At, Narrow, Plain}, atNarrow},
	{"fstatat$INODE64", Key{At, Wide, Suffixed}, atNarrow},
	{"fstatat64", Key{At, Wide, Synonym}, atWidePlain},
}

// Required returns the symbols the given capability set demands, in table
// order.
func Required(set capability.Set) []Symbol {
	var required []Symbol

	for _, s := range Table {
		if s.needs(set) {
			required = append(required, s)
		}
	}

	return required
}

// Lookup returns the table entry for a symbol name.
func Lookup(name string) (Symbol, error) {
	for _, s := range Table {
		if s.Name == name {
			return s, nil
		}
	}

	return Symbol{}, fmt.Errorf("(symbols) %w: %s", ErrUnknownSymbol, name)
}
