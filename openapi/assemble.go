package openapi

import (
	"fmt"
	"strings"

	"github.com/broady/helpgen/ir"
)

// DefaultTitle is the document title when Metadata leaves it empty.
const DefaultTitle = "LCU SCHEMA"

// Metadata carries the descriptive fields of the document.
type Metadata struct {
	// Title defaults to DefaultTitle.
	Title string

	// Version overrides the catalog's build version when set.
	Version string

	// Preamble opens info.description. Defaults to a short provenance note.
	Preamble string
}

const defaultPreamble = "Auto-generated using the client's /Help endpoint."

// Assemble builds the document for a normalized catalog: one component per
// named type, one operation per routable endpoint keyed by template and
// lower-cased method, and the converged tag list. References are left as
// they are; Validate checks them when strict output is wanted.
func Assemble(cat *ir.Catalog, meta Metadata) *Document {
	doc := &Document{
		OpenAPI: Version,
		Info: Info{
			Title:   meta.Title,
			Version: cat.Version,
		},
		Paths:      NewOrderedMap[*PathItem](),
		Components: &Components{Schemas: NewOrderedMap[*Schema]()},
	}
	if doc.Info.Title == "" {
		doc.Info.Title = DefaultTitle
	}
	if meta.Version != "" {
		doc.Info.Version = meta.Version
	}
	if doc.Info.Version == "" {
		doc.Info.Version = "unknown"
	}

	for _, t := range cat.Types {
		doc.Components.Schemas.Set(t.Name, ComponentSchema(t))
	}

	for _, ep := range cat.Functions {
		if !ep.Routable() {
			continue
		}
		item, ok := doc.Paths.Get(ep.Template)
		if !ok {
			item = &PathItem{}
			doc.Paths.Set(ep.Template, item)
		}
		item.SetOperation(ep.Method, Classify(ep, doc.Components))
	}

	BuildTags(doc)
	doc.Info.Description = describe(cat, meta)
	return doc
}

func describe(cat *ir.Catalog, meta Metadata) string {
	var b strings.Builder
	preamble := meta.Preamble
	if preamble == "" {
		preamble = defaultPreamble
	}
	b.WriteString(preamble)

	if overridden := cat.Overridden(); len(overridden) > 0 {
		b.WriteString("\nThe following endpoints are not entirely auto-generated because their /Help response is missing necessary fields:\n\n")
		for i, ep := range overridden {
			fmt.Fprintf(&b, "%d.\t%s\n", i+1, ep.Name)
		}
	}

	if len(cat.Warnings) > 0 {
		b.WriteString("\n### Notices\n\n")
		for _, w := range cat.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
