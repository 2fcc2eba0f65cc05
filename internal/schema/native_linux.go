package schema

import (
	"github.com/desertwitch/statcompat/internal/record"
	"golang.org/x/sys/unix"
)

const statxMask = unix.STATX_BASIC_STATS | unix.STATX_BTIME

func statx(dirfd int, path string, flags int, st *record.Wide) error {
	var stx unix.Statx_t
	if err := unix.Statx(dirfd, path, flags, statxMask, &stx); err != nil {
		return err
	}
	wideFromStatx(&stx, st)

	return nil
}

// Stat64 wraps around [unix.Statx].
func (*Native) Stat64(path string, st *record.Wide) error {
	return statx(unix.AT_FDCWD, path, 0, st)
}

// Lstat64 wraps around [unix.Statx] with AT_SYMLINK_NOFOLLOW.
func (*Native) Lstat64(path string, st *record.Wide) error {
	return statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, st)
}

// Fstat64 wraps around [unix.Statx] with AT_EMPTY_PATH.
func (*Native) Fstat64(fd int, st *record.Wide) error {
	return statx(fd, "", unix.AT_EMPTY_PATH, st)
}

// Fstatat64 wraps around [unix.Statx].
func (*Native) Fstatat64(dirfd int, path string, st *record.Wide, flag int) error {
	return statx(dirfd, path, flag, st)
}
