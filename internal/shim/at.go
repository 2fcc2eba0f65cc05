package shim

import (
	"github.com/desertwitch/statcompat/internal/record"
	"golang.org/x/sys/unix"
)

// AtSymlinkNofollow is the only flag bit the directory-relative queries
// accept.
const AtSymlinkNofollow = unix.AT_SYMLINK_NOFOLLOW

// Fstatat fills the narrow record for path relative to the directory dirfd.
func (h *Handler) Fstatat(dirfd int, path string, buf *record.Narrow, flag int) error {
	return h.fstatat(dirfd, path, buf, flag)
}

// Fstatat64 fills the wide record for path relative to the directory dirfd.
func (h *Handler) Fstatat64(dirfd int, path string, buf *record.Wide, flag int) error {
	return h.fstatat64(dirfd, path, buf, flag)
}

// FstatatINODE64 is the decorated name for [Handler.Fstatat64].
func (h *Handler) FstatatINODE64(dirfd int, path string, buf *record.Wide, flag int) error {
	return h.fstatat64(dirfd, path, buf, flag)
}

func checkAtFlags(flag int) error {
	if flag&^AtSymlinkNofollow != 0 {
		return unix.EINVAL
	}

	return nil
}

func (h *Handler) synthesizedFstatat(dirfd int, path string, buf *record.Narrow, flag int) error {
	if err := checkAtFlags(flag); err != nil {
		return err
	}

	query := h.narrowHandler.Stat
	if flag&AtSymlinkNofollow != 0 {
		query = h.narrowHandler.Lstat
	}

	return h.atHandler.At(dirfd, path, func(resolved string) error {
		return query(resolved, buf)
	})
}

func (h *Handler) synthesizedFstatat64(dirfd int, path string, buf *record.Wide, flag int) error {
	if err := checkAtFlags(flag); err != nil {
		return err
	}

	query := h.stat64
	if flag&AtSymlinkNofollow != 0 {
		query = h.lstat64
	}

	return h.atHandler.At(dirfd, path, func(resolved string) error {
		return query(resolved, buf)
	})
}
