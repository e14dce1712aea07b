package openapi

import (
	"strings"

	"github.com/broady/helpgen/ir"
)

// SchemaLookup resolves component names for query flattening.
// *Components implements it.
type SchemaLookup interface {
	Lookup(name string) (*Schema, bool)
}

// readOnlyMethods never carry a request body.
var readOnlyMethods = map[string]bool{
	"get":     true,
	"delete":  true,
	"head":    true,
	"options": true,
	"trace":   true,
}

// Classify reconstructs path, query and body parameters for a routable
// endpoint. The catalog lists arguments positionally; placeholders in the
// template consume the leading arguments, and the rest are placed by verb.
// The result depends only on ep and lookup.
func Classify(ep ir.Endpoint, lookup SchemaLookup) *Operation {
	op := &Operation{
		OperationID: ep.Name,
		Description: ep.Description,
		Responses:   Responses{SuccessCode: successResponse(ep.Returns)},
	}

	for _, name := range ep.Placeholders {
		param := Parameter{Name: name, In: "path", Required: true}
		if arg, ok := findArgument(ep.Arguments, name); ok {
			param.Description = arg.Description
			param.Schema = SchemaFromIR(arg.Schema)
		}
		if param.Schema == nil {
			param.Schema = &Schema{Type: "string"}
		}
		op.Parameters = append(op.Parameters, param)
	}

	rest := ep.Arguments[min(len(ep.Placeholders), len(ep.Arguments)):]
	switch {
	case len(rest) > 1:
		for _, arg := range rest {
			op.Parameters = append(op.Parameters, queryParam(arg))
		}
	case len(rest) == 0:
	case readOnlyMethods[strings.ToLower(ep.Method)]:
		op.Parameters = append(op.Parameters, flattenQuery(rest[0], lookup)...)
	default:
		arg := rest[0]
		op.RequestBody = &RequestBody{
			Required: !arg.Optional,
			Content:  map[string]MediaType{ContentTypeJSON: {Schema: SchemaFromIR(arg.Schema)}},
		}
	}

	return op
}

func successResponse(returns ir.Schema) *Response {
	resp := &Response{Description: "Success response"}
	if s := SchemaFromIR(returns); s != nil {
		resp.Content = map[string]MediaType{ContentTypeJSON: {Schema: s}}
	}
	return resp
}

// findArgument matches a placeholder to an argument, ignoring a trailing "+" on both sides.
func findArgument(args []ir.Argument, placeholder string) (ir.Argument, bool) {
	want := strings.TrimSuffix(placeholder, "+")
	for _, arg := range args {
		if strings.TrimSuffix(arg.Name, "+") == want {
			return arg, true
		}
	}
	return ir.Argument{}, false
}

func queryParam(arg ir.Argument) Parameter {
	return Parameter{
		Name:        arg.Name,
		In:          "query",
		Description: arg.Description,
		Required:    !arg.Optional,
		Schema:      SchemaFromIR(arg.Schema),
	}
}

// flattenQuery expands a reference to a struct component into one query
// parameter per property. Anything else is a single query parameter.
func flattenQuery(arg ir.Argument, lookup SchemaLookup) []Parameter {
	ref, ok := arg.Schema.(*ir.Reference)
	if !ok || lookup == nil {
		return []Parameter{queryParam(arg)}
	}
	component, ok := lookup.Lookup(ref.Target)
	if !ok || component.Properties.Len() == 0 {
		return []Parameter{queryParam(arg)}
	}

	params := make([]Parameter, 0, component.Properties.Len())
	for name, prop := range component.Properties.All() {
		params = append(params, Parameter{
			Name:     name,
			In:       "query",
			Required: component.IsRequired(name),
			Schema:   prop,
		})
	}
	return params
}
