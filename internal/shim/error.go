package shim

import "errors"

// ErrSymbolNotExported is returned when a known symbol is not required by
// the handler's capability set and therefore not provided.
var ErrSymbolNotExported = errors.New("symbol not exported")
