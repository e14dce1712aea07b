package typescript

import (
	"strings"

	"github.com/broady/helpgen/openapi"
)

// Endpoints emits the LCUEndpoints table: per path and verb, the
// parameter tuple, body type and response type, followed by the helper
// types that index it.
func (e *Emitter) Endpoints(doc *openapi.Document) string {
	var b strings.Builder
	b.WriteString("export interface LCUEndpoints {\n")
	for path, item := range doc.Paths.All() {
		b.WriteString("\t")
		b.WriteString(quote(path))
		b.WriteString(": {\n")
		for _, method := range endpointMethods {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			b.WriteString("\t\t")
			b.WriteString(method)
			b.WriteString(": { Parameters: ")
			b.WriteString(e.parameters(op))
			b.WriteString(", Body: ")
			b.WriteString(e.body(op))
			b.WriteString(", Response: ")
			b.WriteString(e.response(op))
			b.WriteString(" }\n")
		}
		b.WriteString("\t},\n")
	}
	b.WriteString("}\n\n")
	b.WriteString(endpointHelpers)
	return b.String()
}

// parameters renders the path placeholders as labelled tuple elements,
// followed by a params record when there are query parameters. The
// record is optional unless one of its members is required.
func (e *Emitter) parameters(op *openapi.Operation) string {
	var parts, query []string
	queryRequired := false
	for _, p := range op.Parameters {
		expr := inline(e.TypeExpr(p.Schema))
		switch p.In {
		case "path":
			parts = append(parts, parameterLabel(p.Name)+": "+expr)
		case "query":
			opt := "?"
			if p.Required {
				opt = ""
				queryRequired = true
			}
			query = append(query, quote(p.Name)+opt+": "+expr)
		}
	}
	if len(query) > 0 {
		opt := "?"
		if queryRequired {
			opt = ""
		}
		parts = append(parts, "params"+opt+": { "+strings.Join(query, ", ")+" }")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (e *Emitter) body(op *openapi.Operation) string {
	if op.RequestBody == nil {
		return "never"
	}
	mt, ok := op.RequestBody.Content[openapi.ContentTypeJSON]
	if !ok {
		return "never"
	}
	return inline(e.TypeExpr(mt.Schema))
}

func (e *Emitter) response(op *openapi.Operation) string {
	resp := op.Success()
	if resp == nil {
		return "void"
	}
	mt, ok := resp.Content[openapi.ContentTypeJSON]
	if !ok {
		return "void"
	}
	return inline(e.TypeExpr(mt.Schema))
}

// inline flattens a multi-line expression so it fits a single table row.
// Members of inline objects are separated with semicolons.
func inline(expr string) string {
	if !strings.Contains(expr, "\n") {
		return expr
	}
	lines := strings.Split(expr, "\n")
	var b strings.Builder
	prev := ""
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if i > 0 {
			if !strings.HasSuffix(prev, "{") && !strings.HasPrefix(line, "}") {
				b.WriteString(";")
			}
			b.WriteString(" ")
		}
		b.WriteString(line)
		prev = line
	}
	return b.String()
}
