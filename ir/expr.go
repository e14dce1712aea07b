package ir

// Array represents an ordered collection ("vector" in the catalog).
type Array struct {
	exprBase

	// Element is the element schema.
	Element Schema
}

// Kind returns KindArray.
func (a *Array) Kind() Kind { return KindArray }

// ArrayOf returns an Array of the given element schema.
func ArrayOf(element Schema) *Array {
	return &Array{Element: element}
}

// MapOf represents a string-keyed mapping ("map" in the catalog).
// Keys are never described by the catalog; only values carry a schema.
type MapOf struct {
	exprBase

	// Value is the value schema.
	Value Schema
}

// Kind returns KindMap.
func (m *MapOf) Kind() Kind { return KindMap }

// MapOfValues returns a MapOf with the given value schema.
func MapOfValues(value Schema) *MapOf {
	return &MapOf{Value: value}
}

// Opaque represents an unconstrained key/value object ("object" in the catalog).
type Opaque struct {
	exprBase
}

// Kind returns KindOpaque.
func (o *Opaque) Kind() Kind { return KindOpaque }

// Object returns an Opaque schema.
func Object() *Opaque {
	return &Opaque{}
}

// Reference names a type in the component table. It never owns the target
// and is never dereferenced while resolving: the target may be declared
// later in the catalog, may be part of a cycle, or may not exist at all.
// Consumers look Target up when they need the definition.
type Reference struct {
	exprBase

	// Target is the referenced type's name.
	Target string
}

// Kind returns KindReference.
func (r *Reference) Kind() Kind { return KindReference }

// Ref returns a Reference to the named type.
func Ref(name string) *Reference {
	return &Reference{Target: name}
}

// Void represents the absence of a type (an empty tag).
type Void struct {
	exprBase
}

// Kind returns KindVoid.
func (v *Void) Kind() Kind { return KindVoid }

// VoidType returns a Void schema.
func VoidType() *Void {
	return &Void{}
}

// IsVoid reports whether s is nil or Void.
func IsVoid(s Schema) bool {
	if s == nil {
		return true
	}
	_, ok := s.(*Void)
	return ok
}
