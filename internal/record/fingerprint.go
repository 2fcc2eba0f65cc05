package record

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// wideEncodedSize is the packed little-endian size of a [Wide].
const wideEncodedSize = 4 + 2 + 2 + 8 + 4 + 4 + 4 + 4*16 + 8 + 8 + 4 + 4 + 4 + 4 + 2*8

// Fingerprint returns the BLAKE3 digest of the record's fixed-layout
// little-endian encoding, reserved fields included.
func (w *Wide) Fingerprint() [32]byte {
	return blake3.Sum256(w.appendBinary(make([]byte, 0, wideEncodedSize)))
}

// appendBinary appends the packed encoding of w in field order.
func (w *Wide) appendBinary(b []byte) []byte {
	le := binary.LittleEndian

	b = le.AppendUint32(b, uint32(w.Dev)) //nolint:gosec
	b = le.AppendUint16(b, w.Mode)
	b = le.AppendUint16(b, w.Nlink)
	b = le.AppendUint64(b, w.Ino)
	b = le.AppendUint32(b, w.Uid)
	b = le.AppendUint32(b, w.Gid)
	b = le.AppendUint32(b, uint32(w.Rdev)) //nolint:gosec

	for _, ts := range [...]Timespec{w.Atim, w.Mtim, w.Ctim, w.Birthtim} {
		b = le.AppendUint64(b, uint64(ts.Sec))  //nolint:gosec
		b = le.AppendUint64(b, uint64(ts.Nsec)) //nolint:gosec
	}

	b = le.AppendUint64(b, uint64(w.Size))    //nolint:gosec
	b = le.AppendUint64(b, uint64(w.Blocks))  //nolint:gosec
	b = le.AppendUint32(b, uint32(w.Blksize)) //nolint:gosec
	b = le.AppendUint32(b, w.Flags)
	b = le.AppendUint32(b, w.Gen)
	b = le.AppendUint32(b, uint32(w.Lspare)) //nolint:gosec

	for _, q := range w.Qspare {
		b = le.AppendUint64(b, uint64(q)) //nolint:gosec
	}

	return b
}
