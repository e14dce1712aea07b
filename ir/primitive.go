package ir

import "strings"

// PrimitiveKind identifies the category of a primitive schema.
type PrimitiveKind int

const (
	PrimitiveString PrimitiveKind = iota
	PrimitiveInteger
	PrimitiveNumber
	PrimitiveBoolean
)

// String returns the OpenAPI type name of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveString:
		return "string"
	case PrimitiveInteger:
		return "integer"
	case PrimitiveNumber:
		return "number"
	case PrimitiveBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Primitive represents a scalar type.
type Primitive struct {
	exprBase
	PrimitiveKind PrimitiveKind

	// Format carries the source tag for sized numeric types
	// ("int32", "uint64", "double", ...). Empty for string and boolean.
	Format string
}

// Kind returns KindPrimitive.
func (p *Primitive) Kind() Kind { return KindPrimitive }

// Unsigned reports whether the primitive is a non-negative integer.
func (p *Primitive) Unsigned() bool {
	return p.PrimitiveKind == PrimitiveInteger && strings.HasPrefix(p.Format, "uint")
}

// String returns a Primitive for string.
func String() *Primitive {
	return &Primitive{PrimitiveKind: PrimitiveString}
}

// Integer returns a Primitive for an integer with the given format tag.
func Integer(format string) *Primitive {
	return &Primitive{PrimitiveKind: PrimitiveInteger, Format: format}
}

// Number returns a Primitive for a floating point number with the given format tag.
func Number(format string) *Primitive {
	return &Primitive{PrimitiveKind: PrimitiveNumber, Format: format}
}

// Bool returns a Primitive for boolean.
func Bool() *Primitive {
	return &Primitive{PrimitiveKind: PrimitiveBoolean}
}
