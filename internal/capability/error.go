package capability

import "errors"

// ErrUnknownRelease is returned when no capability profile exists for a
// requested release name.
var ErrUnknownRelease = errors.New("unknown release")
