package shim

import (
	"log/slog"

	"github.com/desertwitch/statcompat/internal/capability"
	"github.com/desertwitch/statcompat/internal/record"
)

type narrowProvider interface {
	Stat(path string, st *record.Narrow) error
	Lstat(path string, st *record.Narrow) error
	Fstat(fd int, st *record.Narrow) error
	Statx(path string, st *record.Narrow, fsec *record.FileSec) error
	Lstatx(path string, st *record.Narrow, fsec *record.FileSec) error
	Fstatx(fd int, st *record.Narrow, fsec *record.FileSec) error
}

type nativeProvider interface {
	Stat64(path string, st *record.Wide) error
	Lstat64(path string, st *record.Wide) error
	Fstat64(fd int, st *record.Wide) error
	Statx64(path string, st *record.Wide, fsec *record.FileSec) error
	Lstatx64(path string, st *record.Wide, fsec *record.FileSec) error
	Fstatx64(fd int, st *record.Wide, fsec *record.FileSec) error
	Fstatat(dirfd int, path string, st *record.Narrow, flag int) error
	Fstatat64(dirfd int, path string, st *record.Wide, flag int) error
}

type atProvider interface {
	At(dirfd int, path string, call func(path string) error) error
}

// Entry point signatures, one per family of the wide-record ABI.
type (
	PathFunc     func(path string, buf *record.Wide) error
	DescFunc     func(fd int, buf *record.Wide) error
	PathSecFunc  func(path string, buf *record.Wide, fsec *record.FileSec) error
	DescSecFunc  func(fd int, buf *record.Wide, fsec *record.FileSec) error
	AtNarrowFunc func(dirfd int, path string, buf *record.Narrow, flag int) error
	AtWideFunc   func(dirfd int, path string, buf *record.Wide, flag int) error
)

// Handler publishes the wide-record entry points. Which implementation backs
// each of them is fixed at construction from the capability set.
type Handler struct {
	caps capability.Set

	narrowHandler narrowProvider
	nativeHandler nativeProvider
	atHandler     atProvider

	stat64    PathFunc
	lstat64   PathFunc
	fstat64   DescFunc
	statx64   PathSecFunc
	lstatx64  PathSecFunc
	fstatx64  DescSecFunc
	fstatat   AtNarrowFunc
	fstatat64 AtWideFunc
}

// NewHandler returns a pointer to a new [Handler] for the given capability set.
func NewHandler(caps capability.Set, narrowHandler narrowProvider, nativeHandler nativeProvider, atHandler atProvider) *Handler {
	h := &Handler{
		caps:          caps,
		narrowHandler: narrowHandler,
		nativeHandler: nativeHandler,
		atHandler:     atHandler,
	}

	if caps.SupportStat64 {
		h.stat64 = h.translatedStat
		h.lstat64 = h.translatedLstat
		h.fstat64 = h.translatedFstat
		h.statx64 = h.translatedStatx
		h.lstatx64 = h.translatedLstatx
		h.fstatx64 = h.translatedFstatx
	} else {
		h.stat64 = nativeHandler.Stat64
		h.lstat64 = nativeHandler.Lstat64
		h.fstat64 = nativeHandler.Fstat64
		h.statx64 = nativeHandler.Statx64
		h.lstatx64 = nativeHandler.Lstatx64
		h.fstatx64 = nativeHandler.Fstatx64
	}

	if caps.SupportAtCalls {
		h.fstatat = h.synthesizedFstatat
		h.fstatat64 = h.synthesizedFstatat64
	} else {
		h.fstatat = nativeHandler.Fstatat
		h.fstatat64 = nativeHandler.Fstatat64
	}

	slog.Debug("Established entry points.", "caps", caps.String(), "exports", len(h.Exports()))

	return h
}

// Capabilities returns the capability set the handler was built for.
func (h *Handler) Capabilities() capability.Set {
	return h.caps
}

// Stat64 fills buf for path, following a final symbolic link.
func (h *Handler) Stat64(path string, buf *record.Wide) error {
	return h.stat64(path, buf)
}

// Lstat64 fills buf for path without following a final symbolic link.
func (h *Handler) Lstat64(path string, buf *record.Wide) error {
	return h.lstat64(path, buf)
}

// Fstat64 fills buf for an open descriptor.
func (h *Handler) Fstat64(fd int, buf *record.Wide) error {
	return h.fstat64(fd, buf)
}

// Statx64NP is [Handler.Stat64] that also fills the security descriptor.
func (h *Handler) Statx64NP(path string, buf *record.Wide, fsec *record.FileSec) error {
	return h.statx64(path, buf, fsec)
}

// Lstatx64NP is [Handler.Lstat64] that also fills the security descriptor.
func (h *Handler) Lstatx64NP(path string, buf *record.Wide, fsec *record.FileSec) error {
	return h.lstatx64(path, buf, fsec)
}

// Fstatx64NP is [Handler.Fstat64] that also fills the security descriptor.
func (h *Handler) Fstatx64NP(fd int, buf *record.Wide, fsec *record.FileSec) error {
	return h.fstatx64(fd, buf, fsec)
}

func (h *Handler) translatedStat(path string, buf *record.Wide) error {
	var st record.Narrow

	return record.Translate(&st, buf, h.narrowHandler.Stat(path, &st))
}

func (h *Handler) translatedLstat(path string, buf *record.Wide) error {
	var st record.Narrow

	return record.Translate(&st, buf, h.narrowHandler.Lstat(path, &st))
}

func (h *Handler) translatedFstat(fd int, buf *record.Wide) error {
	var st record.Narrow

	return record.Translate(&st, buf, h.narrowHandler.Fstat(fd, &st))
}

func (h *Handler) translatedStatx(path string, buf *record.Wide, fsec *record.FileSec) error {
	var st record.Narrow

	return record.Translate(&st, buf, h.narrowHandler.Statx(path, &st, fsec))
}

func (h *Handler) translatedLstatx(path string, buf *record.Wide, fsec *record.FileSec) error {
	var st record.Narrow

	return record.Translate(&st, buf, h.narrowHandler.Lstatx(path, &st, fsec))
}

func (h *Handler) translatedFstatx(fd int, buf *record.Wide, fsec *record.FileSec) error {
	var st record.Narrow

	return record.Translate(&st, buf, h.narrowHandler.Fstatx(fd, &st, fsec))
}
