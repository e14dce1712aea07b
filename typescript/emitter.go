package typescript

import (
	"bytes"
	"errors"
	"maps"
	"strings"

	"github.com/broady/helpgen/ir"
	"github.com/broady/helpgen/openapi"
)

// Emit renders the declaration files for doc. events populate the event
// table; duplicate event names keep their first payload.
func Emit(doc *openapi.Document, events []ir.Event, cfg Config) (*Declarations, error) {
	if doc == nil {
		return nil, errors.New("typescript: nil document")
	}
	cfg = cfg.withDefaults()

	definitions := maps.Clone(builtinDefinitions)
	maps.Copy(definitions, cfg.Definitions)

	// Inside the types file references are qualified only when the
	// declarations live in a namespace. The other files always import.
	inner := &Emitter{definitions: definitions}
	outer := &Emitter{definitions: definitions}
	if cfg.Namespace != "" {
		inner.qualifier = cfg.Namespace + "."
		outer.qualifier = cfg.Namespace + "."
	} else {
		outer.qualifier = cfg.ImportNamespace + "."
	}

	return &Declarations{
		Types:     inner.Types(doc, cfg.Namespace),
		Endpoints: outer.importLine(cfg) + "\n\n" + outer.Endpoints(doc),
		Events:    outer.importLine(cfg) + "\n\n" + outer.Events(events),
	}, nil
}

// Emitter handles TypeScript emission for document schemas.
type Emitter struct {
	// qualifier prefixes every type reference, e.g. "LCUTypes.".
	qualifier   string
	definitions map[string]string
}

func (e *Emitter) importLine(cfg Config) string {
	if cfg.Namespace != "" {
		return "import { " + cfg.Namespace + " } from " + quote(cfg.ImportPath) + ";"
	}
	return "import * as " + cfg.ImportNamespace + " from " + quote(cfg.ImportPath) + ";"
}

// Types emits one exported declaration per component schema, in
// component order, wrapped in a namespace when one is given.
func (e *Emitter) Types(doc *openapi.Document, namespace string) string {
	var decls []string
	if doc.Components != nil {
		for name, schema := range doc.Components.Schemas.All() {
			var buf bytes.Buffer
			e.emitComponent(&buf, name, schema)
			decls = append(decls, buf.String())
		}
	}
	body := strings.Join(decls, "\n\n")
	if namespace == "" {
		return body
	}
	return "export namespace " + namespace + " {\n" + indentLines(body, "\t") + "\n}"
}

func (e *Emitter) emitComponent(buf *bytes.Buffer, name string, s *openapi.Schema) {
	if def, ok := e.definitions[name]; ok {
		buf.WriteString("export ")
		buf.WriteString(strings.ReplaceAll(def, "{{namespace}}", e.qualifier))
		return
	}

	switch {
	case s.Ref != "":
		buf.WriteString("export type ")
		buf.WriteString(typeName(name))
		buf.WriteString(" = ")
		buf.WriteString(e.reference(s.RefName()))
	case len(s.Enum) > 0:
		emitJSDoc(buf, s, "")
		buf.WriteString("export type ")
		buf.WriteString(typeName(name))
		buf.WriteString(" = ")
		for i, v := range s.Enum {
			if i > 0 {
				buf.WriteString(" | ")
			}
			buf.WriteString(quote(v))
		}
	case s.Type == "object":
		emitJSDoc(buf, s, "")
		buf.WriteString("export interface ")
		buf.WriteString(typeName(name))
		buf.WriteString(" {\n")
		e.emitMembers(buf, s, "\t", true)
		buf.WriteString("}")
	default:
		buf.WriteString("export type ")
		buf.WriteString(typeName(name))
		buf.WriteString(" = ")
		buf.WriteString(e.TypeExpr(s))
	}
}

// emitMembers writes the index signature and properties of an object
// schema, one per line at the given indent.
func (e *Emitter) emitMembers(buf *bytes.Buffer, s *openapi.Schema, indent string, docs bool) {
	if ap := s.AdditionalProperties; ap != nil {
		buf.WriteString(indent)
		buf.WriteString("[key: string | number]: ")
		if ap.Bool != nil {
			buf.WriteString("any")
		} else {
			buf.WriteString(e.TypeExpr(ap.Schema))
		}
		buf.WriteString("\n")
	}
	for name, prop := range s.Properties.All() {
		if docs {
			emitJSDoc(buf, prop, indent)
		}
		buf.WriteString(indent)
		buf.WriteString(propertyKey(name))
		if !s.IsRequired(name) {
			buf.WriteString("?")
		}
		buf.WriteString(": ")
		buf.WriteString(strings.ReplaceAll(e.TypeExpr(prop), "\n", "\n"+indent))
		buf.WriteString("\n")
	}
}

func (e *Emitter) reference(name string) string {
	return e.qualifier + typeName(name)
}

// TypeExpr emits the type expression for a schema node. A nil schema is void.
// Inline objects span several lines indented by one tab.
func (e *Emitter) TypeExpr(s *openapi.Schema) string {
	if s == nil {
		return "void"
	}
	if s.Ref != "" {
		return e.reference(s.RefName())
	}

	switch s.Type {
	case "string":
		if len(s.Enum) > 0 {
			parts := make([]string, len(s.Enum))
			for i, v := range s.Enum {
				parts[i] = quote(v)
			}
			return strings.Join(parts, " | ")
		}
		return "string"
	case "number", "integer":
		return "number"
	case "boolean":
		return "boolean"
	case "array":
		if s.Items == nil {
			return "any[]"
		}
		return e.TypeExpr(s.Items) + "[]"
	case "object":
		return e.objectExpr(s)
	default:
		return "unknown"
	}
}

func (e *Emitter) objectExpr(s *openapi.Schema) string {
	if s.Properties.Len() == 0 {
		switch ap := s.AdditionalProperties; {
		case ap == nil:
			return "Record<string, unknown>"
		case ap.Bool != nil:
			return "unknown"
		default:
			return "Record<string, " + e.TypeExpr(ap.Schema) + ">"
		}
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	e.emitMembers(&buf, s, "\t", false)
	buf.WriteString("}")
	return buf.String()
}

// emitJSDoc writes the description and format of s as a JSDoc block.
func emitJSDoc(buf *bytes.Buffer, s *openapi.Schema, indent string) {
	if s == nil || s.Ref != "" {
		return
	}
	var lines []string
	if s.Description != "" {
		lines = append(lines, strings.Split(s.Description, "\n")...)
	}
	if s.Format != "" {
		lines = append(lines, "@format "+s.Format)
	}
	if len(lines) == 0 {
		return
	}

	buf.WriteString(indent)
	if len(lines) == 1 {
		buf.WriteString("/** ")
		buf.WriteString(escapeComment(strings.TrimSpace(lines[0])))
		buf.WriteString(" */\n")
		return
	}
	buf.WriteString("/**\n")
	for _, line := range lines {
		buf.WriteString(indent)
		buf.WriteString(" * ")
		buf.WriteString(escapeComment(strings.TrimSpace(line)))
		buf.WriteString("\n")
	}
	buf.WriteString(indent)
	buf.WriteString(" */\n")
}

func escapeComment(s string) string {
	return strings.ReplaceAll(s, "*/", "*\\/")
}

func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
