package typescript

import (
	"strings"

	"github.com/broady/helpgen/ir"
	"github.com/broady/helpgen/openapi"
)

// Events emits the LCUWebSocketEvents table. The index signature admits
// the built-in payload types for event names the catalog does not list.
func (e *Emitter) Events(events []ir.Event) string {
	var b strings.Builder
	b.WriteString("export interface LCUWebSocketEvents {\n\t[key: string]: ")
	for i, name := range builtinEventTypes {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(e.reference(name))
	}

	seen := make(map[string]bool, len(events))
	var members []string
	for _, ev := range events {
		if seen[ev.Name] {
			continue
		}
		seen[ev.Name] = true
		members = append(members, quote(ev.Name)+": "+inline(e.TypeExpr(openapi.SchemaFromIR(ev.Payload))))
	}
	if len(members) > 0 {
		b.WriteString("\n\t")
		b.WriteString(strings.Join(members, ",\n\t"))
	}
	b.WriteString("\n}")
	return b.String()
}
