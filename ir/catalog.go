package ir

// Catalog is the normalized form of the service's reflection catalog.
// Collections follow the raw catalog's iteration order.
type Catalog struct {
	// Version is the build version reported by the service.
	Version string

	Types     []NamedType
	Functions []Endpoint
	Events    []Event

	// Warnings contains non-fatal issues encountered during normalization.
	Warnings []Warning
}

// AddWarning adds a warning to the catalog.
func (c *Catalog) AddWarning(w Warning) {
	c.Warnings = append(c.Warnings, w)
}

// FindType looks up a type by name. Returns nil if not found.
func (c *Catalog) FindType(name string) *NamedType {
	for i := range c.Types {
		if c.Types[i].Name == name {
			return &c.Types[i]
		}
	}
	return nil
}

// Overridden returns the endpoints whose routing came from the override table.
func (c *Catalog) Overridden() []Endpoint {
	var out []Endpoint
	for _, fn := range c.Functions {
		if fn.Overridden {
			out = append(out, fn)
		}
	}
	return out
}

// Validate reports every Reference that names a type missing from the
// catalog, plus duplicate type names. References are weak, so a lenient
// caller records these as warnings instead of failing.
// Returns all validation errors found (not just the first).
func (c *Catalog) Validate() []error {
	var errors []*ValidationError

	typeNames := make(map[string]bool, len(c.Types))
	for _, t := range c.Types {
		if typeNames[t.Name] {
			errors = append(errors, &ValidationError{
				Code:    WarnDuplicateType,
				Message: "duplicate type name: " + t.Name,
				Name:    t.Name,
			})
		}
		typeNames[t.Name] = true
	}

	for _, t := range c.Types {
		for _, f := range t.Fields {
			errors = append(errors, validateReferences(f.Schema, typeNames, "field "+t.Name+"."+f.Name)...)
		}
	}

	for _, fn := range c.Functions {
		for _, arg := range fn.Arguments {
			errors = append(errors, validateReferences(arg.Schema, typeNames, "endpoint "+fn.Name+" argument "+arg.Name)...)
		}
		errors = append(errors, validateReferences(fn.Returns, typeNames, "endpoint "+fn.Name+" returns")...)
	}

	for _, ev := range c.Events {
		errors = append(errors, validateReferences(ev.Payload, typeNames, "event "+ev.Name)...)
	}

	var result []error
	for _, e := range errors {
		result = append(result, e)
	}
	return result
}

// validateReferences walks a schema and checks that all References point to
// types present in typeNames.
func validateReferences(s Schema, typeNames map[string]bool, context string) []*ValidationError {
	if s == nil {
		return nil
	}

	var errors []*ValidationError

	switch d := s.(type) {
	case *Reference:
		if !typeNames[d.Target] {
			errors = append(errors, &ValidationError{
				Code:    WarnMissingReference,
				Message: context + " references unknown type: " + d.Target,
				Name:    d.Target,
			})
		}
	case *Array:
		errors = append(errors, validateReferences(d.Element, typeNames, context)...)
	case *MapOf:
		errors = append(errors, validateReferences(d.Value, typeNames, context)...)
	}

	return errors
}

// ValidationError represents a catalog validation error.
type ValidationError struct {
	Code    string
	Message string

	// Name is the type the error is about.
	Name string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Warning converts the error into a catalog warning.
func (e *ValidationError) Warning() Warning {
	return Warning{Code: e.Code, Message: e.Message, Name: e.Name}
}
