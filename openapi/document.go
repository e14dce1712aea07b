// Package openapi builds an OpenAPI 3.0 document from a normalized catalog.
package openapi

import (
	"encoding/json"
	"strings"
)

// Version is the OpenAPI version the assembler emits.
const Version = "3.0.0"

// Document represents an OpenAPI 3.0 document.
// Paths and component schemas keep catalog order.
type Document struct {
	OpenAPI    string                 `json:"openapi"`
	Info       Info                   `json:"info"`
	Paths      *OrderedMap[*PathItem] `json:"paths"`
	Components *Components            `json:"components,omitempty"`
	Tags       []Tag                  `json:"tags,omitempty"`
}

// Info holds API metadata.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// Tag represents an OpenAPI tag.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Components holds reusable schemas.
type Components struct {
	Schemas *OrderedMap[*Schema] `json:"schemas"`
}

// Lookup returns the component schema registered under name.
func (c *Components) Lookup(name string) (*Schema, bool) {
	if c == nil {
		return nil, false
	}
	return c.Schemas.Get(name)
}

// Methods lists the verbs a PathItem holds, in output order.
var Methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// PathItem holds the operations for a single path.
type PathItem struct {
	Get     *Operation `json:"get,omitempty"`
	Put     *Operation `json:"put,omitempty"`
	Post    *Operation `json:"post,omitempty"`
	Delete  *Operation `json:"delete,omitempty"`
	Options *Operation `json:"options,omitempty"`
	Head    *Operation `json:"head,omitempty"`
	Patch   *Operation `json:"patch,omitempty"`
	Trace   *Operation `json:"trace,omitempty"`
}

func (p *PathItem) slot(method string) **Operation {
	switch strings.ToLower(method) {
	case "get":
		return &p.Get
	case "put":
		return &p.Put
	case "post":
		return &p.Post
	case "delete":
		return &p.Delete
	case "options":
		return &p.Options
	case "head":
		return &p.Head
	case "patch":
		return &p.Patch
	case "trace":
		return &p.Trace
	default:
		return nil
	}
}

// Operation returns the operation for method (case-insensitive), or nil.
func (p *PathItem) Operation(method string) *Operation {
	if s := p.slot(method); s != nil {
		return *s
	}
	return nil
}

// SetOperation stores op under method. It reports false for an unknown verb.
func (p *PathItem) SetOperation(method string, op *Operation) bool {
	s := p.slot(method)
	if s == nil {
		return false
	}
	*s = op
	return true
}

// Operations returns the non-nil operations keyed by lower-case method, in Methods order.
func (p *PathItem) Operations() []MethodOperation {
	var out []MethodOperation
	for _, m := range Methods {
		if op := p.Operation(m); op != nil {
			out = append(out, MethodOperation{Method: m, Operation: op})
		}
	}
	return out
}

// MethodOperation pairs an operation with its verb.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operation represents an HTTP operation.
type Operation struct {
	OperationID string       `json:"operationId,omitempty"`
	Description string       `json:"description,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Parameters  []Parameter  `json:"parameters,omitempty"`
	RequestBody *RequestBody `json:"requestBody,omitempty"`
	Responses   Responses    `json:"responses"`
}

// Parameter represents an OpenAPI parameter (path or query).
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Description string  `json:"description,omitempty"`
	Required    bool    `json:"required"`
	Schema      *Schema `json:"schema,omitempty"`
}

// RequestBody represents an OpenAPI request body.
type RequestBody struct {
	Required bool                 `json:"required,omitempty"`
	Content  map[string]MediaType `json:"content"`
}

// MediaType holds the schema for a content type.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Responses maps status codes to response objects.
type Responses map[string]*Response

// Response represents an OpenAPI response.
type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

// SuccessCode is the response key every operation reports.
const SuccessCode = "2XX"

// ContentTypeJSON is the media type of bodies and responses.
const ContentTypeJSON = "application/json"

// Success returns the success response of the operation, or nil.
func (o *Operation) Success() *Response {
	if o == nil {
		return nil
	}
	return o.Responses[SuccessCode]
}

// ToJSON serializes the document to JSON with indentation.
func (doc *Document) ToJSON() ([]byte, error) {
	return json.MarshalIndent(doc, "", "    ")
}
