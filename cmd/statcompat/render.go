package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertwitch/statcompat/internal/capability"
	"github.com/desertwitch/statcompat/internal/record"
	"github.com/desertwitch/statcompat/internal/shim"
	"github.com/desertwitch/statcompat/internal/symbols"
	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		}).
		Headers(headers...)
}

// fileMode converts a stat mode into an [fs.FileMode] for display.
func fileMode(mode uint32) fs.FileMode {
	m := fs.FileMode(mode & 0o777)

	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		m |= fs.ModeDir
	case unix.S_IFLNK:
		m |= fs.ModeSymlink
	case unix.S_IFIFO:
		m |= fs.ModeNamedPipe
	case unix.S_IFSOCK:
		m |= fs.ModeSocket
	case unix.S_IFCHR:
		m |= fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFBLK:
		m |= fs.ModeDevice
	}

	if mode&unix.S_ISUID != 0 {
		m |= fs.ModeSetuid
	}
	if mode&unix.S_ISGID != 0 {
		m |= fs.ModeSetgid
	}
	if mode&unix.S_ISVTX != 0 {
		m |= fs.ModeSticky
	}

	return m
}

func formatTimespec(ts record.Timespec) string {
	t := time.Unix(ts.Sec, ts.Nsec)

	return fmt.Sprintf("%s (%s)", t.Format(time.RFC3339Nano), humanize.Time(t))
}

func formatSize(size int64) string {
	if size < 0 {
		return strconv.FormatInt(size, 10)
	}

	return fmt.Sprintf("%s (%s bytes)", humanize.IBytes(uint64(size)), humanize.Comma(size))
}

func renderNarrow(w io.Writer, title string, st *record.Narrow) {
	t := newTable("FIELD", "VALUE").Rows(
		[]string{"dev", strconv.FormatInt(int64(st.Dev), 10)},
		[]string{"mode", fmt.Sprintf("%s (%#o)", fileMode(uint32(st.Mode)), st.Mode)},
		[]string{"nlink", strconv.FormatUint(uint64(st.Nlink), 10)},
		[]string{"ino", strconv.FormatUint(uint64(st.Ino), 10)},
		[]string{"uid/gid", fmt.Sprintf("%d/%d", st.Uid, st.Gid)},
		[]string{"rdev", strconv.FormatInt(int64(st.Rdev), 10)},
		[]string{"atime", formatTimespec(st.Atim)},
		[]string{"mtime", formatTimespec(st.Mtim)},
		[]string{"ctime", formatTimespec(st.Ctim)},
		[]string{"size", formatSize(st.Size)},
		[]string{"blocks", fmt.Sprintf("%s x %d", humanize.Comma(st.Blocks), st.Blksize)},
		[]string{"flags/gen", fmt.Sprintf("%#x/%d", st.Flags, st.Gen)},
	)

	fmt.Fprintln(w, titleStyle.Render(title+" [narrow]"))
	fmt.Fprintln(w, t.Render())
}

func renderWide(w io.Writer, title string, st *record.Wide, fsec *record.FileSec, fingerprint bool) {
	t := newTable("FIELD", "VALUE").Rows(
		[]string{"dev", strconv.FormatInt(int64(st.Dev), 10)},
		[]string{"mode", fmt.Sprintf("%s (%#o)", fileMode(uint32(st.Mode)), st.Mode)},
		[]string{"nlink", strconv.FormatUint(uint64(st.Nlink), 10)},
		[]string{"ino", strconv.FormatUint(st.Ino, 10)},
		[]string{"uid/gid", fmt.Sprintf("%d/%d", st.Uid, st.Gid)},
		[]string{"rdev", strconv.FormatInt(int64(st.Rdev), 10)},
		[]string{"atime", formatTimespec(st.Atim)},
		[]string{"mtime", formatTimespec(st.Mtim)},
		[]string{"ctime", formatTimespec(st.Ctim)},
		[]string{"birthtime", formatTimespec(st.Birthtim)},
		[]string{"size", formatSize(st.Size)},
		[]string{"blocks", fmt.Sprintf("%s x %d", humanize.Comma(st.Blocks), st.Blksize)},
		[]string{"flags/gen", fmt.Sprintf("%#x/%d", st.Flags, st.Gen)},
	)

	if fsec != nil {
		t.Row("sec owner/group", fmt.Sprintf("%d/%d", fsec.Owner, fsec.Group))
		t.Row("sec mode", fileMode(fsec.Mode).String())
		t.Row("sec acl", humanize.Bytes(uint64(len(fsec.ACL))))
	}

	if fingerprint {
		sum := st.Fingerprint()
		t.Row("fingerprint", hex.EncodeToString(sum[:]))
	}

	fmt.Fprintln(w, titleStyle.Render(title+" [wide]"))
	fmt.Fprintln(w, t.Render())
}

func renderExports(w io.Writer, release string, exports []shim.Export) {
	t := newTable("SYMBOL", "FAMILY", "WIDTH", "VARIANT", "ENTRY")

	for _, e := range exports {
		t.Row(
			e.Symbol.Name,
			e.Symbol.Key.Family.String(),
			e.Symbol.Key.Width.String(),
			e.Symbol.Key.Variant.String(),
			fmt.Sprintf("%T", e.Entry),
		)
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("release %s: %d entry points", release, len(exports))))
	fmt.Fprintln(w, t.Render())
}

func renderProfiles(w io.Writer, current string) {
	t := newTable("RELEASE", "STAT64", "ATCALLS", "HAVE_STAT64", "SYMBOLS")

	for _, name := range capability.Releases() {
		caps := capability.Profiles[name]

		label := name
		if name == current {
			label += " *"
		}

		t.Row(
			label,
			strconv.FormatBool(caps.SupportStat64),
			strconv.FormatBool(caps.SupportAtCalls),
			strconv.FormatBool(caps.HaveStat64),
			strconv.Itoa(len(symbols.Required(caps))),
		)
	}

	fmt.Fprintln(w, titleStyle.Render("release profiles (compiled: "+capability.Release+")"))
	fmt.Fprintln(w, t.Render())
}
