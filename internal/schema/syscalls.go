package schema

import (
	"os"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Open wraps around [os.Open].
func (*OS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// Readlink wraps around [os.Readlink].
func (*OS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Chdir wraps around [unix.Chdir].
func (*Unix) Chdir(path string) error {
	return unix.Chdir(path)
}

// Fchdir wraps around [unix.Fchdir].
func (*Unix) Fchdir(fd int) error {
	return unix.Fchdir(fd)
}

// Fstat wraps around [unix.Fstat].
func (*Unix) Fstat(fd int, stat *unix.Stat_t) error {
	return unix.Fstat(fd, stat)
}

// Getwd wraps around [unix.Getwd].
func (*Unix) Getwd() (string, error) {
	return unix.Getwd()
}
