package atcall_test

import (
	"io/fs"
	"testing"

	"github.com/desertwitch/statcompat/internal/atcall"
	"github.com/desertwitch/statcompat/internal/atcall/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func directoryFstat(args mock.Arguments) {
	st, _ := args.Get(1).(*unix.Stat_t)
	st.Mode = unix.S_IFDIR | 0o755
}

func TestAt_ResolvesThroughProcfs(t *testing.T) {
	t.Parallel()

	osMock := mocks.NewOsProvider(t)
	unixMock := mocks.NewUnixProvider(t)
	h := atcall.NewHandler(osMock, unixMock)

	unixMock.On("Fstat", 5, mock.Anything).Run(directoryFstat).Return(nil)
	osMock.On("Readlink", "/proc/self/fd/5").Return("/srv/data", nil)

	var calls []string
	require.NoError(t, h.At(5, "sub/../file", recordCall(&calls, nil)))

	assert.Equal(t, []string{"/srv/data/sub/../file"}, calls)
	unixMock.AssertNotCalled(t, "Fchdir", mock.Anything)
}

func TestAt_RootDirectoryJoin(t *testing.T) {
	t.Parallel()

	osMock := mocks.NewOsProvider(t)
	unixMock := mocks.NewUnixProvider(t)
	h := atcall.NewHandler(osMock, unixMock)

	unixMock.On("Fstat", 5, mock.Anything).Run(directoryFstat).Return(nil)
	osMock.On("Readlink", "/proc/self/fd/5").Return("/", nil)

	var calls []string
	require.NoError(t, h.At(5, "etc", recordCall(&calls, nil)))

	assert.Equal(t, []string{"/etc"}, calls)
}

func TestAt_FallsBackWithoutProcfs(t *testing.T) {
	t.Parallel()

	osMock := mocks.NewOsProvider(t)
	unixMock := mocks.NewUnixProvider(t)
	h := atcall.NewHandler(osMock, unixMock)

	inDir := false

	unixMock.On("Fstat", 5, mock.Anything).Run(directoryFstat).Return(nil)
	osMock.On("Readlink", "/proc/self/fd/5").Return("", fs.ErrNotExist)
	unixMock.On("Getwd").Return("/home/user", nil).Once()
	unixMock.On("Fchdir", 5).Run(func(mock.Arguments) { inDir = true }).Return(nil)
	unixMock.On("Chdir", "/home/user").Run(func(mock.Arguments) { inDir = false }).Return(nil)

	var calls []string
	var ranInDir bool
	err := h.At(5, "file", func(path string) error {
		ranInDir = inDir

		return recordCall(&calls, unix.ENOENT)(path)
	})

	assert.Equal(t, unix.ENOENT, err) //nolint:testifylint
	assert.Equal(t, []string{"file"}, calls)
	assert.True(t, ranInDir)
	assert.False(t, inDir)
}

func TestAt_FallsBackOnAnyReadlinkError(t *testing.T) {
	t.Parallel()

	osMock := mocks.NewOsProvider(t)
	unixMock := mocks.NewUnixProvider(t)
	h := atcall.NewHandler(osMock, unixMock)

	unixMock.On("Fstat", 5, mock.Anything).Run(directoryFstat).Return(nil)
	osMock.On("Readlink", "/proc/self/fd/5").Return("", fs.ErrPermission)
	unixMock.On("Getwd").Return("/home/user", nil)
	unixMock.On("Fchdir", 5).Return(nil)
	unixMock.On("Chdir", "/home/user").Return(nil)

	var calls []string
	require.NoError(t, h.At(5, "file", recordCall(&calls, nil)))

	assert.Equal(t, []string{"file"}, calls)
}

func TestAt_Fail_FchdirRejected(t *testing.T) {
	t.Parallel()

	osMock := mocks.NewOsProvider(t)
	unixMock := mocks.NewUnixProvider(t)
	h := atcall.NewHandler(osMock, unixMock)

	unixMock.On("Fstat", 5, mock.Anything).Run(directoryFstat).Return(nil)
	osMock.On("Readlink", "/proc/self/fd/5").Return("", fs.ErrNotExist)
	unixMock.On("Getwd").Return("/home/user", nil)
	unixMock.On("Fchdir", 5).Return(unix.EACCES)

	var calls []string
	err := h.At(5, "file", recordCall(&calls, nil))

	assert.Equal(t, unix.EACCES, err) //nolint:testifylint
	assert.Empty(t, calls)
	unixMock.AssertNotCalled(t, "Chdir", mock.Anything)
}

func TestAt_Fail_RestoreRejected(t *testing.T) {
	t.Parallel()

	osMock := mocks.NewOsProvider(t)
	unixMock := mocks.NewUnixProvider(t)
	h := atcall.NewHandler(osMock, unixMock)

	unixMock.On("Fstat", 5, mock.Anything).Run(directoryFstat).Return(nil)
	osMock.On("Readlink", "/proc/self/fd/5").Return("", fs.ErrNotExist)
	unixMock.On("Getwd").Return("/home/user", nil)
	unixMock.On("Fchdir", 5).Return(nil)
	unixMock.On("Chdir", "/home/user").Return(unix.ENOENT)

	var calls []string
	err := h.At(5, "file", recordCall(&calls, nil))

	assert.Equal(t, unix.ENOENT, err) //nolint:testifylint
	assert.Equal(t, []string{"file"}, calls)
}
