package openapi

import (
	"encoding/json"

	"github.com/broady/helpgen/ir"
)

// SchemaOrBool represents a value that can be either a Schema object or a boolean.
// additionalProperties is true for opaque objects and a schema for maps.
type SchemaOrBool struct {
	Schema *Schema
	Bool   *bool
}

// MarshalJSON implements json.Marshaler.
func (s SchemaOrBool) MarshalJSON() ([]byte, error) {
	if s.Bool != nil {
		return json.Marshal(*s.Bool)
	}
	if s.Schema != nil {
		return json.Marshal(s.Schema)
	}
	return []byte("{}"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SchemaOrBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		s.Bool = &b
		return nil
	}
	s.Schema = new(Schema)
	return json.Unmarshal(data, s.Schema)
}

// Schema is a JSON Schema node in the OpenAPI 3.0 dialect.
// A node with Ref set carries no other field.
type Schema struct {
	Type                 string               `json:"type,omitempty"`
	Format               string               `json:"format,omitempty"`
	Description          string               `json:"description,omitempty"`
	Properties           *OrderedMap[*Schema] `json:"properties,omitempty"`
	Required             []string             `json:"required,omitempty"`
	Items                *Schema              `json:"items,omitempty"`
	Enum                 []string             `json:"enum,omitempty"`
	Minimum              *float64             `json:"minimum,omitempty"`
	AdditionalProperties *SchemaOrBool        `json:"additionalProperties,omitempty"`
	Ref                  string               `json:"$ref,omitempty"`
}

// RefPrefix is the JSON pointer prefix of component schema references.
const RefPrefix = "#/components/schemas/"

// RefName returns the component name a $ref points to, or "".
func (s *Schema) RefName() string {
	if s == nil || len(s.Ref) <= len(RefPrefix) || s.Ref[:len(RefPrefix)] != RefPrefix {
		return ""
	}
	return s.Ref[len(RefPrefix):]
}

// IsRequired reports whether name is listed in the schema's required list.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

func boolPtr(b bool) *bool { return &b }

// SchemaFromIR converts a resolved schema to a schema node.
// Void converts to nil: the caller omits the slot.
func SchemaFromIR(s ir.Schema) *Schema {
	switch d := s.(type) {
	case *ir.Primitive:
		node := &Schema{Type: d.PrimitiveKind.String(), Format: d.Format}
		if d.Unsigned() {
			zero := 0.0
			node.Minimum = &zero
		}
		return node
	case *ir.Array:
		items := SchemaFromIR(d.Element)
		if items == nil {
			items = &Schema{}
		}
		return &Schema{Type: "array", Items: items}
	case *ir.MapOf:
		node := &Schema{Type: "object"}
		if v := SchemaFromIR(d.Value); v != nil {
			node.AdditionalProperties = &SchemaOrBool{Schema: v}
		}
		return node
	case *ir.Opaque:
		return &Schema{Type: "object", AdditionalProperties: &SchemaOrBool{Bool: boolPtr(true)}}
	case *ir.Reference:
		return &Schema{Ref: RefPrefix + d.Target}
	default:
		return nil
	}
}

// ComponentSchema converts a named type to its component table entry.
// Structs become objects with a required list of non-optional fields, enums
// become strings listing value names in order, and anything else is an
// open map.
func ComponentSchema(t ir.NamedType) *Schema {
	switch {
	case t.IsStruct():
		node := &Schema{
			Type:        "object",
			Description: t.Description,
			Properties:  NewOrderedMap[*Schema](),
		}
		for _, f := range t.Fields {
			prop := SchemaFromIR(f.Schema)
			if prop == nil {
				prop = &Schema{}
			}
			node.Properties.Set(f.Name, prop)
			if !f.Optional {
				node.Required = append(node.Required, f.Name)
			}
		}
		return node
	case t.IsEnum():
		node := &Schema{Type: "string", Description: t.Description}
		for _, v := range t.EnumValues {
			node.Enum = append(node.Enum, v.Name)
		}
		return node
	default:
		return &Schema{
			Type:                 "object",
			Description:          t.Description,
			AdditionalProperties: &SchemaOrBool{Bool: boolPtr(true)},
		}
	}
}
