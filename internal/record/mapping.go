package record

// FieldKind describes how a [Field] produces its destination value.
type FieldKind int

const (
	// Identity copies a source field verbatim.
	Identity FieldKind = iota

	// Computed derives the destination value from one or more source fields.
	Computed

	// Reserved zeroes a destination field that has no source.
	Reserved
)

func (k FieldKind) String() string {
	switch k {
	case Identity:
		return "identity"
	case Computed:
		return "computed"
	case Reserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// Field is a single entry of a [Mapping] between a source shape S and a
// destination shape D.
type Field[S, D any] struct {
	Name  string
	Kind  FieldKind
	Apply func(src *S, dst *D)
}

// Mapping is a declarative, ordered table of fields translating records of
// shape S into records of shape D.
type Mapping[S, D any] []Field[S, D]

// Apply writes every destination field described by the mapping.
func (m Mapping[S, D]) Apply(src *S, dst *D) {
	for _, f := range m {
		f.Apply(src, dst)
	}
}

// Names returns the destination field names of the given kind, in table order.
func (m Mapping[S, D]) Names(kind FieldKind) []string {
	var names []string

	for _, f := range m {
		if f.Kind == kind {
			names = append(names, f.Name)
		}
	}

	return names
}
