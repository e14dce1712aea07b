package catalog

import (
	"regexp"

	"github.com/broady/helpgen/ir"
)

// Resolve maps a raw type descriptor to a resolved schema. The mapping is
// total and pure: unknown tags become references by name and are never
// looked up.
func Resolve(t TypeRef) ir.Schema {
	switch t.Type {
	case "vector":
		return ir.ArrayOf(resolveElement(t.ElementType))
	case "map":
		return ir.MapOfValues(resolveElement(t.ElementType))
	default:
		return ResolveTag(t.Type)
	}
}

// ResolveTag maps a bare tag to a resolved schema. Containers resolved
// through a bare tag have a Void element.
func ResolveTag(tag string) ir.Schema {
	switch tag {
	case "string":
		return ir.String()
	case "uint8", "uint16", "uint32", "uint64",
		"int8", "int16", "int32", "int64":
		return ir.Integer(tag)
	case "bool":
		return ir.Bool()
	case "double", "float":
		return ir.Number(tag)
	case "vector":
		return ir.ArrayOf(ir.VoidType())
	case "map":
		return ir.MapOfValues(ir.VoidType())
	case "object":
		return ir.Object()
	case "":
		return ir.VoidType()
	default:
		return ir.Ref(tag)
	}
}

func resolveElement(t *TypeRef) ir.Schema {
	if t == nil {
		return ir.VoidType()
	}
	return Resolve(*t)
}

var placeholderPattern = regexp.MustCompile(`\{(.*?)\}`)

// Placeholders returns the "{...}" segments of a URL template with braces
// stripped, in template order. Returns nil when there are none.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m[1]
	}
	return out
}
