package symbols

import "errors"

// ErrUnknownSymbol is returned for a name that is not in the [Table].
var ErrUnknownSymbol = errors.New("unknown symbol")
