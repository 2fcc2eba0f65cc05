package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/statcompat/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func setupTree(t *testing.T) (dir, file, link string) {
	t.Helper()

	dir = t.TempDir()
	file = filepath.Join(dir, "file.txt")
	link = filepath.Join(dir, "link")

	require.NoError(t, os.WriteFile(file, []byte("hello world"), 0o640))
	require.NoError(t, os.Chmod(file, 0o640))
	require.NoError(t, os.Symlink(file, link))

	return dir, file, link
}

func TestNarrow_Stat_Success(t *testing.T) {
	t.Parallel()

	_, file, link := setupTree(t)
	n := &Narrow{}

	var st record.Narrow
	require.NoError(t, n.Stat(link, &st))

	var hst unix.Stat_t
	require.NoError(t, unix.Stat(file, &hst))

	assert.Equal(t, int64(11), st.Size)
	assert.Equal(t, uint32(hst.Ino), st.Ino) //nolint:gosec
	assert.Equal(t, uint16(unix.S_IFREG), st.Mode&unix.S_IFMT)
	assert.Equal(t, uint16(0o640), st.Mode&0o777)
}

func TestNarrow_Lstat_Symlink(t *testing.T) {
	t.Parallel()

	_, _, link := setupTree(t)
	n := &Narrow{}

	var st record.Narrow
	require.NoError(t, n.Lstat(link, &st))

	assert.Equal(t, uint16(unix.S_IFLNK), st.Mode&unix.S_IFMT)
}

func TestNarrow_Fstat_Success(t *testing.T) {
	t.Parallel()

	_, file, _ := setupTree(t)
	n := &Narrow{}

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()

	var byFd, byPath record.Narrow
	require.NoError(t, n.Fstat(int(f.Fd()), &byFd))
	require.NoError(t, n.Stat(file, &byPath))

	assert.Equal(t, byPath, byFd)
}

func TestNarrow_Stat_Fail_ENOENT(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	n := &Narrow{}

	var st record.Narrow
	err := n.Stat(filepath.Join(dir, "missing"), &st)

	assert.Equal(t, unix.ENOENT, err) //nolint:testifylint
}

func TestNarrow_Statx_FillsFileSec(t *testing.T) {
	t.Parallel()

	_, file, link := setupTree(t)
	n := &Narrow{}

	var st record.Narrow
	fsec := &record.FileSec{ACL: []byte("stale")}
	require.NoError(t, n.Statx(file, &st, fsec))

	assert.Equal(t, st.Uid, fsec.Owner)
	assert.Equal(t, st.Gid, fsec.Group)
	assert.Equal(t, uint32(st.Mode), fsec.Mode)
	assert.NotEqual(t, []byte("stale"), fsec.ACL)

	var lst record.Narrow
	lsec := &record.FileSec{}
	require.NoError(t, n.Lstatx(link, &lst, lsec))
	assert.Equal(t, uint32(lst.Mode), lsec.Mode)

	require.NoError(t, n.Statx(file, &st, nil))
}

func TestNarrow_Fstatx_Success(t *testing.T) {
	t.Parallel()

	_, file, _ := setupTree(t)
	n := &Narrow{}

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()

	var st record.Narrow
	fsec := &record.FileSec{}
	require.NoError(t, n.Fstatx(int(f.Fd()), &st, fsec))
	assert.Equal(t, st.Uid, fsec.Owner)
}
