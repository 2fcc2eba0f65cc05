package schema

import (
	"github.com/desertwitch/statcompat/internal/record"
	"golang.org/x/sys/unix"
)

// Stat64 wraps around [unix.Stat].
func (*Native) Stat64(path string, st *record.Wide) error {
	var hst unix.Stat_t
	if err := unix.Stat(path, &hst); err != nil {
		return err
	}
	wideFromStat(&hst, st)

	return nil
}

// Lstat64 wraps around [unix.Lstat].
func (*Native) Lstat64(path string, st *record.Wide) error {
	var hst unix.Stat_t
	if err := unix.Lstat(path, &hst); err != nil {
		return err
	}
	wideFromStat(&hst, st)

	return nil
}

// Fstat64 wraps around [unix.Fstat].
func (*Native) Fstat64(fd int, st *record.Wide) error {
	var hst unix.Stat_t
	if err := unix.Fstat(fd, &hst); err != nil {
		return err
	}
	wideFromStat(&hst, st)

	return nil
}

// Fstatat64 wraps around [unix.Fstatat].
func (*Native) Fstatat64(dirfd int, path string, st *record.Wide, flag int) error {
	var hst unix.Stat_t
	if err := unix.Fstatat(dirfd, path, &hst, flag); err != nil {
		return err
	}
	wideFromStat(&hst, st)

	return nil
}
