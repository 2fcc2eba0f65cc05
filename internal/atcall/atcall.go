package atcall

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// AtFDCWD is the directory handle meaning "the current working directory".
const AtFDCWD = unix.AT_FDCWD

type osProvider interface {
	Readlink(name string) (string, error)
}

type unixProvider interface {
	Chdir(path string) error
	Fchdir(fd int) error
	Fstat(fd int, stat *unix.Stat_t) error
	Getwd() (string, error)
}

// cwdMutex guards the process working directory. It is shared by every
// [Handler] since the working directory is process-wide: readers are
// queries relative to [AtFDCWD], the writer is the fchdir fallback.
//
//nolint:gochecknoglobals
var cwdMutex sync.RWMutex

// Handler resolves a (directory handle, relative path) pair into an
// effective path and dispatches a query on it.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}

// At invokes call on the path that path names relative to dirfd. Absolute
// paths are passed through unchanged. The error returned by call is
// returned as is, as are the errno values for an unusable dirfd.
func (h *Handler) At(dirfd int, path string, call func(path string) error) error {
	if path == "" {
		return unix.ENOENT
	}

	if filepath.IsAbs(path) {
		return call(path)
	}

	if dirfd == AtFDCWD {
		cwdMutex.RLock()
		defer cwdMutex.RUnlock()

		return call(path)
	}

	var st unix.Stat_t
	if err := h.unixHandler.Fstat(dirfd, &st); err != nil {
		return err
	}

	if uint32(st.Mode)&unix.S_IFMT != unix.S_IFDIR {
		return unix.ENOTDIR
	}

	return h.dispatch(dirfd, path, call)
}

// joinRelative appends path to dir without cleaning, so that ".." keeps
// its on-disk meaning across symbolic links.
func joinRelative(dir, path string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + path
	}

	return dir + string(os.PathSeparator) + path
}

// inDirectory changes into dirfd, runs call on the relative path and
// changes back. The working directory lock is held for the whole sequence.
func (h *Handler) inDirectory(dirfd int, path string, call func(path string) error) error {
	cwdMutex.Lock()
	defer cwdMutex.Unlock()

	cwd, err := h.unixHandler.Getwd()
	if err != nil {
		return err
	}

	if err := h.unixHandler.Fchdir(dirfd); err != nil {
		return err
	}

	status := call(path)

	if err := h.unixHandler.Chdir(cwd); err != nil {
		return err
	}

	return status
}
