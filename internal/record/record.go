package record

// Timespec is a seconds/nanoseconds pair as carried by both record shapes.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Before reports whether t is strictly earlier than u, comparing seconds
// first and nanoseconds only when the seconds are equal.
func (t Timespec) Before(u Timespec) bool {
	if t.Sec != u.Sec {
		return t.Sec < u.Sec
	}

	return t.Nsec < u.Nsec
}

// Narrow is the legacy metadata record with a 32-bit inode number and no
// birth time.
type Narrow struct {
	Dev     int32
	Mode    uint16
	Nlink   uint16
	Ino     uint32
	Uid     uint32
	Gid     uint32
	Rdev    int32
	Atim    Timespec
	Mtim    Timespec
	Ctim    Timespec
	Size    int64
	Blocks  int64
	Blksize int32
	Flags   uint32
	Gen     uint32
	Lspare  int32
	Qspare  [2]int64
}

// Wide is the metadata record expected by callers of the 64-bit inode ABI.
type Wide struct {
	Dev      int32
	Mode     uint16
	Nlink    uint16
	Ino      uint64
	Uid      uint32
	Gid      uint32
	Rdev     int32
	Atim     Timespec
	Mtim     Timespec
	Ctim     Timespec
	Birthtim Timespec
	Size     int64
	Blocks   int64
	Blksize  int32
	Flags    uint32
	Gen      uint32
	Lspare   int32
	Qspare   [2]int64
}

// FileSec is the security descriptor returned alongside a record by the
// extended query variants.
type FileSec struct {
	Owner uint32
	Group uint32
	Mode  uint32
	ACL   []byte
}
