package symbols

import (
	"testing"

	"github.com/desertwitch/statcompat/internal/capability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(syms []Symbol) []string {
	out := make([]string, 0, len(syms))
	for _, s := range syms {
		out = append(out, s.Name)
	}

	return out
}

func TestRequired_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		set      capability.Set
		expected []string
	}{
		{
			"Success_Native",
			capability.Set{},
			nil,
		},
		{
			"Success_Tiger",
			capability.Set{SupportStat64: true, SupportAtCalls: true},
			[]string{
				"stat$INODE64", "lstat$INODE64", "fstat$INODE64",
				"statx_np$INODE64", "lstatx_np$INODE64", "fstatx_np$INODE64",
				"fstatat", "fstatat$INODE64",
			},
		},
		{
			"Success_TigerNewSDK",
			capability.Set{SupportStat64: true, SupportAtCalls: true, HaveStat64: true},
			[]string{
				"stat$INODE64", "lstat$INODE64", "fstat$INODE64",
				"statx_np$INODE64", "lstatx_np$INODE64", "fstatx_np$INODE64",
				"stat64", "lstat64", "fstat64",
				"statx64_np", "lstatx64_np", "fstatx64_np",
				"fstatat", "fstatat$INODE64", "fstatat64",
			},
		},
		{
			"Success_Leopard",
			capability.Set{SupportAtCalls: true, HaveStat64: true},
			[]string{"fstatat", "fstatat$INODE64", "fstatat64"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Required(tc.set)
			if tc.expected == nil {
				assert.Empty(t, got)

				return
			}
			assert.Equal(t, tc.expected, names(got))
		})
	}
}

func TestTable_NamesUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, s := range Table {
		assert.False(t, seen[s.Name], "duplicate symbol %s", s.Name)
		seen[s.Name] = true
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	s, err := Lookup("lstatx64_np")
	require.NoError(t, err)
	assert.Equal(t, Key{LinkSec, Wide, Plain}, s.Key)

	_, err = Lookup("readdir$INODE64")
	require.ErrorIs(t, err, ErrUnknownSymbol)
}
