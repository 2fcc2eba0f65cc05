package schema

import (
	"github.com/desertwitch/statcompat/internal/record"
	"golang.org/x/sys/unix"
)

// Narrow implements the always-present narrow-record calls on top of the
// host's stat family. Values wider than the legacy record are truncated to
// fit it, as the legacy calls themselves do.
type Narrow struct{}

// Stat wraps around [unix.Stat].
func (*Narrow) Stat(path string, st *record.Narrow) error {
	var hst unix.Stat_t
	if err := unix.Stat(path, &hst); err != nil {
		return err
	}
	narrowFromStat(&hst, st)

	return nil
}

// Lstat wraps around [unix.Lstat].
func (*Narrow) Lstat(path string, st *record.Narrow) error {
	var hst unix.Stat_t
	if err := unix.Lstat(path, &hst); err != nil {
		return err
	}
	narrowFromStat(&hst, st)

	return nil
}

// Fstat wraps around [unix.Fstat].
func (*Narrow) Fstat(fd int, st *record.Narrow) error {
	var hst unix.Stat_t
	if err := unix.Fstat(fd, &hst); err != nil {
		return err
	}
	narrowFromStat(&hst, st)

	return nil
}

// Statx is [Narrow.Stat] that also fills fsec, when given.
func (n *Narrow) Statx(path string, st *record.Narrow, fsec *record.FileSec) error {
	if err := n.Stat(path, st); err != nil {
		return err
	}

	return fillFileSec(fsec, st.Uid, st.Gid, uint32(st.Mode), func(dest []byte) (int, error) {
		return unix.Getxattr(path, aclXattr, dest)
	})
}

// Lstatx is [Narrow.Lstat] that also fills fsec, when given.
func (n *Narrow) Lstatx(path string, st *record.Narrow, fsec *record.FileSec) error {
	if err := n.Lstat(path, st); err != nil {
		return err
	}

	return fillFileSec(fsec, st.Uid, st.Gid, uint32(st.Mode), func(dest []byte) (int, error) {
		return unix.Lgetxattr(path, aclXattr, dest)
	})
}

// Fstatx is [Narrow.Fstat] that also fills fsec, when given.
func (n *Narrow) Fstatx(fd int, st *record.Narrow, fsec *record.FileSec) error {
	if err := n.Fstat(fd, st); err != nil {
		return err
	}

	return fillFileSec(fsec, st.Uid, st.Gid, uint32(st.Mode), func(dest []byte) (int, error) {
		return unix.Fgetxattr(fd, aclXattr, dest)
	})
}

func timespec(ts unix.Timespec) record.Timespec {
	sec, nsec := ts.Unix()

	return record.Timespec{Sec: sec, Nsec: nsec}
}
