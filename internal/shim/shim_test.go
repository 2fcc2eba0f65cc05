package shim_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/desertwitch/statcompat/internal/capability"
	"github.com/desertwitch/statcompat/internal/record"
	"github.com/desertwitch/statcompat/internal/shim"
	"github.com/desertwitch/statcompat/internal/shim/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var tiger = capability.Set{SupportStat64: true, SupportAtCalls: true, HaveStat64: true}

func sampleNarrow() record.Narrow {
	return record.Narrow{
		Dev:     16777220,
		Mode:    unix.S_IFREG | 0o644,
		Nlink:   1,
		Ino:     4242,
		Uid:     501,
		Gid:     20,
		Atim:    record.Timespec{Sec: 300, Nsec: 3},
		Mtim:    record.Timespec{Sec: 100, Nsec: 200},
		Ctim:    record.Timespec{Sec: 100, Nsec: 500},
		Size:    1234,
		Blocks:  8,
		Blksize: 4096,
		Flags:   2,
		Gen:     9,
		Lspare:  77,
		Qspare:  [2]int64{1, 2},
	}
}

func fillNarrow(n record.Narrow) func(mock.Arguments) {
	return func(args mock.Arguments) {
		st, _ := args.Get(1).(*record.Narrow)
		*st = n
	}
}

func dirtyWide() record.Wide {
	return record.Wide{Lspare: -1, Qspare: [2]int64{-1, -1}, Ino: 1}
}

func assertTranslated(t *testing.T, n record.Narrow, w record.Wide) {
	t.Helper()

	assert.Equal(t, uint64(n.Ino), w.Ino)
	assert.Equal(t, n.Mode, w.Mode)
	assert.Equal(t, n.Size, w.Size)
	assert.Equal(t, n.Mtim, w.Mtim)
	assert.Equal(t, n.Ctim, w.Ctim)
	assert.Equal(t, record.Timespec{Sec: 100, Nsec: 200}, w.Birthtim)
	assert.Zero(t, w.Lspare)
	assert.Equal(t, [2]int64{}, w.Qspare)
}

func TestStat64_Success(t *testing.T) {
	t.Parallel()

	narrowMock := mocks.NewNarrowProvider(t)
	h := shim.NewHandler(tiger, narrowMock, nil, nil)

	n := sampleNarrow()
	narrowMock.On("Stat", "/tmp/file", mock.Anything).Run(fillNarrow(n)).Return(nil)

	w := dirtyWide()
	require.NoError(t, h.Stat64("/tmp/file", &w))

	assertTranslated(t, n, w)
}

func TestLstat64_Success(t *testing.T) {
	t.Parallel()

	narrowMock := mocks.NewNarrowProvider(t)
	h := shim.NewHandler(tiger, narrowMock, nil, nil)

	n := sampleNarrow()
	n.Mode = unix.S_IFLNK | 0o777
	narrowMock.On("Lstat", "/tmp/link", mock.Anything).Run(fillNarrow(n)).Return(nil)

	w := dirtyWide()
	require.NoError(t, h.Lstat64("/tmp/link", &w))

	assertTranslated(t, n, w)
	narrowMock.AssertNotCalled(t, "Stat", mock.Anything, mock.Anything)
}

func TestFstat64_Success(t *testing.T) {
	t.Parallel()

	narrowMock := mocks.NewNarrowProvider(t)
	h := shim.NewHandler(tiger, narrowMock, nil, nil)

	n := sampleNarrow()
	narrowMock.On("Fstat", 7, mock.Anything).Run(fillNarrow(n)).Return(nil)

	w := dirtyWide()
	require.NoError(t, h.Fstat64(7, &w))

	assertTranslated(t, n, w)
}

func TestStatx64NP_PassesFileSec(t *testing.T) {
	t.Parallel()

	narrowMock := mocks.NewNarrowProvider(t)
	h := shim.NewHandler(tiger, narrowMock, nil, nil)

	n := sampleNarrow()
	fsec := &record.FileSec{}

	narrowMock.On("Statx", "/tmp/file", mock.Anything, fsec).Run(func(args mock.Arguments) {
		fillNarrow(n)(args)
		sec, _ := args.Get(2).(*record.FileSec)
		sec.Owner = n.Uid
		sec.Group = n.Gid
	}).Return(nil)

	w := dirtyWide()
	require.NoError(t, h.Statx64NP("/tmp/file", &w, fsec))

	assertTranslated(t, n, w)
	assert.Equal(t, n.Uid, fsec.Owner)
	assert.Equal(t, n.Gid, fsec.Group)
}

func TestLstatx64NP_Fstatx64NP_Success(t *testing.T) {
	t.Parallel()

	narrowMock := mocks.NewNarrowProvider(t)
	h := shim.NewHandler(tiger, narrowMock, nil, nil)

	n := sampleNarrow()
	narrowMock.On("Lstatx", "/tmp/link", mock.Anything, mock.Anything).Run(fillNarrow(n)).Return(nil)
	narrowMock.On("Fstatx", 5, mock.Anything, mock.Anything).Run(fillNarrow(n)).Return(nil)

	w1 := dirtyWide()
	require.NoError(t, h.Lstatx64NP("/tmp/link", &w1, nil))
	assertTranslated(t, n, w1)

	w2 := dirtyWide()
	require.NoError(t, h.Fstatx64NP(5, &w2, nil))
	assertTranslated(t, n, w2)
}

// TestEntryPoints_StatusPassthrough verifies every wide entry point returns
// exactly what the narrow call returned.
func TestEntryPoints_StatusPassthrough(t *testing.T) {
	t.Parallel()

	customErr := errors.New("custom")

	for _, status := range []error{nil, unix.ENOENT, unix.EACCES, unix.ESTALE, unix.ELOOP, customErr} {
		narrowMock := mocks.NewNarrowProvider(t)
		h := shim.NewHandler(tiger, narrowMock, nil, nil)

		n := sampleNarrow()
		narrowMock.On("Stat", mock.Anything, mock.Anything).Run(fillNarrow(n)).Return(status)
		narrowMock.On("Lstat", mock.Anything, mock.Anything).Run(fillNarrow(n)).Return(status)
		narrowMock.On("Fstat", mock.Anything, mock.Anything).Run(fillNarrow(n)).Return(status)
		narrowMock.On("Statx", mock.Anything, mock.Anything, mock.Anything).Run(fillNarrow(n)).Return(status)
		narrowMock.On("Lstatx", mock.Anything, mock.Anything, mock.Anything).Run(fillNarrow(n)).Return(status)
		narrowMock.On("Fstatx", mock.Anything, mock.Anything, mock.Anything).Run(fillNarrow(n)).Return(status)

		var w record.Wide

		assert.Equal(t, status, h.Stat64("a", &w))          //nolint:testifylint
		assert.Equal(t, status, h.Lstat64("a", &w))         //nolint:testifylint
		assert.Equal(t, status, h.Fstat64(3, &w))           //nolint:testifylint
		assert.Equal(t, status, h.Statx64NP("a", &w, nil))  //nolint:testifylint
		assert.Equal(t, status, h.Lstatx64NP("a", &w, nil)) //nolint:testifylint
		assert.Equal(t, status, h.Fstatx64NP(3, &w, nil))   //nolint:testifylint

		// Translation still happens on failure.
		assert.Equal(t, n.Size, w.Size)
	}
}

func TestNativeRouting_WhenNotShimmed(t *testing.T) {
	t.Parallel()

	narrowMock := mocks.NewNarrowProvider(t)
	nativeMock := mocks.NewNativeProvider(t)
	h := shim.NewHandler(capability.Set{HaveStat64: true}, narrowMock, nativeMock, nil)

	nativeMock.On("Stat64", "/x", mock.Anything).Return(nil)
	nativeMock.On("Fstat64", 4, mock.Anything).Return(unix.EBADF)
	nativeMock.On("Fstatat", unix.AT_FDCWD, "x", mock.Anything, 0).Return(nil)

	var w record.Wide
	var n record.Narrow

	require.NoError(t, h.Stat64("/x", &w))
	require.ErrorIs(t, h.Fstat64(4, &w), unix.EBADF)
	require.NoError(t, h.Fstatat(unix.AT_FDCWD, "x", &n, 0))

	narrowMock.AssertNotCalled(t, "Stat", mock.Anything, mock.Anything)
	assert.Empty(t, h.Exports())
}

func TestStat64_Concurrent(t *testing.T) {
	t.Parallel()

	narrowMock := mocks.NewNarrowProvider(t)
	h := shim.NewHandler(tiger, narrowMock, nil, nil)

	n := sampleNarrow()
	narrowMock.On("Stat", mock.Anything, mock.Anything).Run(fillNarrow(n)).Return(nil)

	var wg sync.WaitGroup
	results := make([]record.Wide, 32)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = h.Stat64("/tmp/file", &results[i])
		}(i)
	}
	wg.Wait()

	for _, w := range results {
		assertTranslated(t, n, w)
	}
	narrowMock.AssertNumberOfCalls(t, "Stat", len(results))
}
