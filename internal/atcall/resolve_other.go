//go:build !linux

package atcall

func (h *Handler) dispatch(dirfd int, path string, call func(path string) error) error {
	return h.inDirectory(dirfd, path, call)
}
