package ir

// Kind identifies the variant of a resolved schema.
type Kind int

const (
	KindPrimitive Kind = iota // string, integer, number or boolean scalar
	KindArray                 // ordered collection ("vector")
	KindMap                   // string-keyed mapping ("map")
	KindOpaque                // unconstrained key/value object ("object")
	KindReference             // weak reference to a named type by name
	KindVoid                  // absence of a type
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindOpaque:
		return "Opaque"
	case KindReference:
		return "Reference"
	case KindVoid:
		return "Void"
	default:
		return "Unknown"
	}
}

// Schema is the base interface for all resolved schema variants.
type Schema interface {
	// Kind returns the variant kind for type switching.
	Kind() Kind

	// Ensure only types in this package can implement Schema.
	sealed()
}

type exprBase struct{}

func (exprBase) sealed() {}
