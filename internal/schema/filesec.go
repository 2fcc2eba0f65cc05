package schema

import (
	"errors"

	"github.com/desertwitch/statcompat/internal/record"
	"golang.org/x/sys/unix"
)

// fillFileSec populates fsec from the already queried ownership and mode,
// reading the access ACL through get. A missing ACL is not an error.
func fillFileSec(fsec *record.FileSec, uid, gid, mode uint32, get func(dest []byte) (int, error)) error {
	if fsec == nil {
		return nil
	}

	fsec.Owner = uid
	fsec.Group = gid
	fsec.Mode = mode
	fsec.ACL = nil

	if aclXattr == "" {
		return nil
	}

	sz, err := get(nil)
	if err != nil || sz == 0 {
		return ignoreMissingACL(err)
	}

	buf := make([]byte, sz)
	sz, err = get(buf)
	if err != nil {
		return ignoreMissingACL(err)
	}
	fsec.ACL = buf[:sz]

	return nil
}

func ignoreMissingACL(err error) error {
	if err == nil || errors.Is(err, unix.ENODATA) || errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EOPNOTSUPP) {
		return nil
	}

	return err
}
