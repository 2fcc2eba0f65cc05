package schema

import (
	"github.com/desertwitch/statcompat/internal/record"
	"golang.org/x/sys/unix"
)

const aclXattr = "system.posix_acl_access"

//nolint:gosec
func narrowFromStat(st *unix.Stat_t, out *record.Narrow) {
	*out = record.Narrow{
		Dev:     int32(st.Dev),
		Mode:    uint16(st.Mode),
		Nlink:   uint16(st.Nlink),
		Ino:     uint32(st.Ino),
		Uid:     st.Uid,
		Gid:     st.Gid,
		Rdev:    int32(st.Rdev),
		Atim:    timespec(st.Atim),
		Mtim:    timespec(st.Mtim),
		Ctim:    timespec(st.Ctim),
		Size:    st.Size,
		Blocks:  st.Blocks,
		Blksize: int32(st.Blksize),
	}
}

//nolint:gosec
func wideFromStatx(stx *unix.Statx_t, out *record.Wide) {
	*out = record.Wide{
		Dev:     int32(unix.Mkdev(stx.Dev_major, stx.Dev_minor)),
		Mode:    stx.Mode,
		Nlink:   uint16(stx.Nlink),
		Ino:     stx.Ino,
		Uid:     stx.Uid,
		Gid:     stx.Gid,
		Rdev:    int32(unix.Mkdev(stx.Rdev_major, stx.Rdev_minor)),
		Atim:    statxTimespec(stx.Atime),
		Mtim:    statxTimespec(stx.Mtime),
		Ctim:    statxTimespec(stx.Ctime),
		Size:    int64(stx.Size),
		Blocks:  int64(stx.Blocks),
		Blksize: int32(stx.Blksize),
	}

	// Not every filesystem records a birth time.
	if stx.Mask&unix.STATX_BTIME != 0 {
		out.Birthtim = statxTimespec(stx.Btime)
	}
}

func statxTimespec(ts unix.StatxTimestamp) record.Timespec {
	return record.Timespec{Sec: ts.Sec, Nsec: int64(ts.Nsec)}
}
