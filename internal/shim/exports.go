package shim

import (
	"fmt"

	"github.com/desertwitch/statcompat/internal/symbols"
)

// Export binds a required symbol name to the callable that implements it.
// Entry holds one of [PathFunc], [DescFunc], [PathSecFunc], [DescSecFunc],
// [AtNarrowFunc] or [AtWideFunc].
type Export struct {
	Symbol symbols.Symbol
	Entry  any
}

// Exports returns every entry point the handler's capability set requires,
// in symbol table order.
func (h *Handler) Exports() []Export {
	required := symbols.Required(h.caps)
	exports := make([]Export, 0, len(required))

	for _, sym := range required {
		exports = append(exports, Export{
			Symbol: sym,
			Entry:  h.entry(sym.Key),
		})
	}

	return exports
}

// Resolve returns the callable exported under name.
func (h *Handler) Resolve(name string) (any, error) {
	sym, err := symbols.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("(shim-resolve) failed to lookup: %w", err)
	}

	for _, req := range symbols.Required(h.caps) {
		if req.Name == sym.Name {
			return h.entry(sym.Key), nil
		}
	}

	return nil, fmt.Errorf("(shim-resolve) %w: %s (%s)", ErrSymbolNotExported, name, h.caps.String())
}

func (h *Handler) entry(key symbols.Key) any {
	switch key.Family {
	case symbols.Path:
		return PathFunc(h.Stat64)
	case symbols.Link:
		return PathFunc(h.Lstat64)
	case symbols.Desc:
		return DescFunc(h.Fstat64)
	case symbols.PathSec:
		return PathSecFunc(h.Statx64NP)
	case symbols.LinkSec:
		return PathSecFunc(h.Lstatx64NP)
	case symbols.DescSec:
		return DescSecFunc(h.Fstatx64NP)
	case symbols.At:
		if key.Width == symbols.Narrow {
			return AtNarrowFunc(h.Fstatat)
		}
		if key.Variant == symbols.Suffixed {
			return AtWideFunc(h.FstatatINODE64)
		}

		return AtWideFunc(h.Fstatat64)
	default:
		return nil
	}
}
