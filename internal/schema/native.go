package schema

import (
	"github.com/desertwitch/statcompat/internal/record"
	"golang.org/x/sys/unix"
)

// Native implements the wide-record and directory-relative calls with the
// host's own support, for capabilities that need no shimming.
type Native struct{}

// Statx64 is [Native.Stat64] that also fills fsec, when given.
func (n *Native) Statx64(path string, st *record.Wide, fsec *record.FileSec) error {
	if err := n.Stat64(path, st); err != nil {
		return err
	}

	return fillFileSec(fsec, st.Uid, st.Gid, uint32(st.Mode), func(dest []byte) (int, error) {
		return unix.Getxattr(path, aclXattr, dest)
	})
}

// Lstatx64 is [Native.Lstat64] that also fills fsec, when given.
func (n *Native) Lstatx64(path string, st *record.Wide, fsec *record.FileSec) error {
	if err := n.Lstat64(path, st); err != nil {
		return err
	}

	return fillFileSec(fsec, st.Uid, st.Gid, uint32(st.Mode), func(dest []byte) (int, error) {
		return unix.Lgetxattr(path, aclXattr, dest)
	})
}

// Fstatx64 is [Native.Fstat64] that also fills fsec, when given.
func (n *Native) Fstatx64(fd int, st *record.Wide, fsec *record.FileSec) error {
	if err := n.Fstat64(fd, st); err != nil {
		return err
	}

	return fillFileSec(fsec, st.Uid, st.Gid, uint32(st.Mode), func(dest []byte) (int, error) {
		return unix.Fgetxattr(fd, aclXattr, dest)
	})
}

// Fstatat wraps around [unix.Fstatat].
func (*Native) Fstatat(dirfd int, path string, st *record.Narrow, flag int) error {
	var hst unix.Stat_t
	if err := unix.Fstatat(dirfd, path, &hst, flag); err != nil {
		return err
	}
	narrowFromStat(&hst, st)

	return nil
}
