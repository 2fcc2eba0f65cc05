package atcall

import (
	"strconv"
)

// dispatch resolves dirfd through procfs and falls back to changing into
// the directory when procfs is unavailable.
func (h *Handler) dispatch(dirfd int, path string, call func(path string) error) error {
	dir, err := h.osHandler.Readlink("/proc/self/fd/" + strconv.Itoa(dirfd))
	if err != nil {
		return h.inDirectory(dirfd, path, call)
	}

	return call(joinRelative(dir, path))
}
