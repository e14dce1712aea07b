package ir

// NamedType is a named component of the catalog. It is a struct when it
// has fields, an enum when it has values and no fields, and an open map
// otherwise. Fields take precedence over enum values.
type NamedType struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Fields      []Field     `json:"fields,omitempty"`
	EnumValues  []EnumValue `json:"enumValues,omitempty"`
}

// IsStruct reports whether the type has fields.
func (t *NamedType) IsStruct() bool { return len(t.Fields) > 0 }

// IsEnum reports whether the type is an enumeration.
func (t *NamedType) IsEnum() bool { return len(t.Fields) == 0 && len(t.EnumValues) > 0 }

// IsOpenMap reports whether the type has neither fields nor values.
func (t *NamedType) IsOpenMap() bool { return len(t.Fields) == 0 && len(t.EnumValues) == 0 }

// Field is a member of a struct type.
type Field struct {
	Name        string
	Description string
	Schema      Schema
	Optional    bool
}

// EnumValue is a member of an enum type.
type EnumValue struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Value       int    `json:"value"`
}

// Endpoint is a callable function of the service.
type Endpoint struct {
	Name        string
	Description string
	Tags        []string
	Arguments   []Argument
	Returns     Schema

	// Method is the HTTP verb as reported by the service (or the override table).
	Method string

	// Template is the URL template, e.g. "/lol-summoner/v1/summoners/{id}".
	Template string

	// Placeholders are the template's "{...}" segments with braces stripped,
	// in template order.
	Placeholders []string

	// Overridden is set when the routing was supplied by the override table.
	Overridden bool
}

// Routable reports whether the endpoint has both a method and a template.
func (e *Endpoint) Routable() bool {
	return e.Method != "" && e.Template != ""
}

// Argument is a positional argument of an endpoint.
type Argument struct {
	Name        string
	Description string
	Schema      Schema
	Optional    bool
}

// Event is a server-pushed notification with a payload schema.
type Event struct {
	Name        string
	Description string
	Tags        []string
	Payload     Schema
}
