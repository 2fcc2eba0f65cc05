package schema

import (
	"github.com/desertwitch/statcompat/internal/record"
	"golang.org/x/sys/unix"
)

// ACLs are not exposed as an extended attribute here.
const aclXattr = ""

//nolint:gosec
func narrowFromStat(st *unix.Stat_t, out *record.Narrow) {
	*out = record.Narrow{
		Dev:     st.Dev,
		Mode:    st.Mode,
		Nlink:   st.Nlink,
		Ino:     uint32(st.Ino),
		Uid:     st.Uid,
		Gid:     st.Gid,
		Rdev:    st.Rdev,
		Atim:    timespec(st.Atim),
		Mtim:    timespec(st.Mtim),
		Ctim:    timespec(st.Ctim),
		Size:    st.Size,
		Blocks:  st.Blocks,
		Blksize: st.Blksize,
		Flags:   st.Flags,
		Gen:     st.Gen,
	}
}

func wideFromStat(st *unix.Stat_t, out *record.Wide) {
	*out = record.Wide{
		Dev:      st.Dev,
		Mode:     st.Mode,
		Nlink:    st.Nlink,
		Ino:      st.Ino,
		Uid:      st.Uid,
		Gid:      st.Gid,
		Rdev:     st.Rdev,
		Atim:     timespec(st.Atim),
		Mtim:     timespec(st.Mtim),
		Ctim:     timespec(st.Ctim),
		Birthtim: timespec(st.Btim),
		Size:     st.Size,
		Blocks:   st.Blocks,
		Blksize:  st.Blksize,
		Flags:    st.Flags,
		Gen:      st.Gen,
	}
}
