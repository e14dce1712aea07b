// Package catalog decodes the service's reflection catalog and normalizes
// it into the resolved form defined by package ir.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TypeRef is a type descriptor as reported by the service: a tag plus an
// optional element descriptor for containers.
type TypeRef struct {
	Type        string   `json:"type"`
	ElementType *TypeRef `json:"elementType,omitempty"`
}

// UnmarshalJSON accepts the service's encoding, where elementType is a bare
// tag string, as well as a nested object. A bare string in place of the
// whole descriptor is treated as its tag.
func (t *TypeRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return err
		}
		*t = TypeRef{Type: tag}
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*t = TypeRef{}
		return nil
	}

	var wire struct {
		Type        string          `json:"type"`
		ElementType json.RawMessage `json:"elementType"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decode type descriptor: %w", err)
	}
	t.Type = wire.Type
	t.ElementType = nil

	elem := bytes.TrimSpace(wire.ElementType)
	if len(elem) == 0 || bytes.Equal(elem, []byte("null")) || bytes.Equal(elem, []byte(`""`)) {
		return nil
	}
	var et TypeRef
	if err := json.Unmarshal(elem, &et); err != nil {
		return fmt.Errorf("decode element type: %w", err)
	}
	t.ElementType = &et
	return nil
}

// MarshalJSON writes the element type as a bare tag when it has no element of its own,
// matching the service's encoding.
func (t TypeRef) MarshalJSON() ([]byte, error) {
	var elem any = ""
	if t.ElementType != nil {
		if t.ElementType.ElementType == nil {
			elem = t.ElementType.Type
		} else {
			elem = t.ElementType
		}
	}
	return json.Marshal(&struct {
		ElementType any    `json:"elementType"`
		Type        string `json:"type"`
	}{
		ElementType: elem,
		Type:        t.Type,
	})
}

// RawType is a type entry of the catalog.
type RawType struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	NameSpace   string     `json:"nameSpace"`
	Size        int        `json:"size"`
	Tags        []string   `json:"tags"`
	Fields      []RawField `json:"fields" validate:"dive"`
	Values      []RawValue `json:"values" validate:"dive"`
}

// RawField is a member of a struct type entry.
type RawField struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Offset      int     `json:"offset"`
	Optional    bool    `json:"optional"`
	Type        TypeRef `json:"type"`
}

// RawValue is a member of an enum type entry.
type RawValue struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Value       int    `json:"value"`
}

// RawFunction is a function entry of the catalog. Method, Path and
// PathParams come from the Console detail format and are nil when the
// service does not expose the function over HTTP.
type RawFunction struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Help        string        `json:"help"`
	NameSpace   string        `json:"nameSpace"`
	Async       string        `json:"async"`
	ThreadSafe  bool          `json:"threadSafe"`
	Tags        []string      `json:"tags"`
	Arguments   []RawArgument `json:"arguments" validate:"dive"`
	Returns     TypeRef       `json:"returns"`
	Method      *string       `json:"method" validate:"omitempty,httpmethod"`
	Path        *string       `json:"path" validate:"omitempty,urltemplate"`
	PathParams  []string      `json:"pathParams"`
	Overridden  bool          `json:"overridden,omitempty"`
}

// RawArgument is a positional argument of a function entry.
type RawArgument struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Optional    bool    `json:"optional"`
	Type        TypeRef `json:"type"`
}

// RawEvent is an event entry of the catalog.
type RawEvent struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	NameSpace   string   `json:"nameSpace"`
	Tags        []string `json:"tags"`
	Type        TypeRef  `json:"type"`
}

// RawCatalog is the complete fetched catalog in service iteration order.
type RawCatalog struct {
	Version   string        `json:"version"`
	Types     []RawType     `json:"types"`
	Functions []RawFunction `json:"functions"`
	Events    []RawEvent    `json:"events"`
}

// Decode reads a RawCatalog previously written as JSON.
func Decode(data []byte) (*RawCatalog, error) {
	var raw RawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &raw, nil
}

// ConsoleRecord is the Console-format detail of a function: its HTTP binding.
type ConsoleRecord struct {
	HTTPMethod *string `json:"http_method"`
	URL        *string `json:"url"`
}

// MergeConsole copies the HTTP binding of the console record onto fn.
// A url without a leading slash is prefixed with one.
func MergeConsole(fn RawFunction, console ConsoleRecord) RawFunction {
	if console.HTTPMethod != nil && *console.HTTPMethod != "" {
		m := *console.HTTPMethod
		fn.Method = &m
	}
	if console.URL != nil && *console.URL != "" {
		u := *console.URL
		if !strings.HasPrefix(u, "/") {
			u = "/" + u
		}
		fn.Path = &u
		fn.PathParams = Placeholders(u)
	}
	return fn
}
