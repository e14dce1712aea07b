package ir

import "encoding/json"

// JSON serialization support for resolved schemas.
// All variants include a "kind" field for type discrimination.

// MarshalJSON implements json.Marshaler for Primitive.
func (p *Primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind          string `json:"kind"`
		PrimitiveKind string `json:"primitiveKind"`
		Format        string `json:"format,omitempty"`
	}{
		Kind:          "primitive",
		PrimitiveKind: p.PrimitiveKind.String(),
		Format:        p.Format,
	})
}

// MarshalJSON implements json.Marshaler for Array.
func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string `json:"kind"`
		Element Schema `json:"element"`
	}{
		Kind:    "array",
		Element: a.Element,
	})
}

// MarshalJSON implements json.Marshaler for MapOf.
func (m *MapOf) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string `json:"kind"`
		Value Schema `json:"value"`
	}{
		Kind:  "map",
		Value: m.Value,
	})
}

// MarshalJSON implements json.Marshaler for Opaque.
func (o *Opaque) MarshalJSON() ([]byte, error) {
	return []byte(`{"kind":"object"}`), nil
}

// MarshalJSON implements json.Marshaler for Reference.
func (r *Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}{
		Kind: "reference",
		Name: r.Target,
	})
}

// MarshalJSON implements json.Marshaler for Void.
func (v *Void) MarshalJSON() ([]byte, error) {
	return []byte(`{"kind":"void"}`), nil
}

// MarshalJSON implements json.Marshaler for Field.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Schema      Schema `json:"schema"`
		Optional    bool   `json:"optional,omitempty"`
	}{
		Name:        f.Name,
		Description: f.Description,
		Schema:      f.Schema,
		Optional:    f.Optional,
	})
}

// MarshalJSON implements json.Marshaler for Argument.
func (a Argument) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Schema      Schema `json:"schema"`
		Optional    bool   `json:"optional,omitempty"`
	}{
		Name:        a.Name,
		Description: a.Description,
		Schema:      a.Schema,
		Optional:    a.Optional,
	})
}

// MarshalJSON implements json.Marshaler for Endpoint.
func (e Endpoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name         string     `json:"name"`
		Description  string     `json:"description,omitempty"`
		Tags         []string   `json:"tags,omitempty"`
		Arguments    []Argument `json:"arguments,omitempty"`
		Returns      Schema     `json:"returns"`
		Method       string     `json:"method,omitempty"`
		Template     string     `json:"template,omitempty"`
		Placeholders []string   `json:"placeholders,omitempty"`
		Overridden   bool       `json:"overridden,omitempty"`
	}{
		Name:         e.Name,
		Description:  e.Description,
		Tags:         e.Tags,
		Arguments:    e.Arguments,
		Returns:      e.Returns,
		Method:       e.Method,
		Template:     e.Template,
		Placeholders: e.Placeholders,
		Overridden:   e.Overridden,
	})
}

// MarshalJSON implements json.Marshaler for Event.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name        string   `json:"name"`
		Description string   `json:"description,omitempty"`
		Tags        []string `json:"tags,omitempty"`
		Payload     Schema   `json:"payload"`
	}{
		Name:        e.Name,
		Description: e.Description,
		Tags:        e.Tags,
		Payload:     e.Payload,
	})
}

// MarshalJSON implements json.Marshaler for Catalog.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Version   string      `json:"version"`
		Types     []NamedType `json:"types"`
		Functions []Endpoint  `json:"functions"`
		Events    []Event     `json:"events"`
		Warnings  []Warning   `json:"warnings,omitempty"`
	}{
		Version:   c.Version,
		Types:     c.Types,
		Functions: c.Functions,
		Events:    c.Events,
		Warnings:  c.Warnings,
	})
}
