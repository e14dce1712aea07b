package catalog

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/broady/helpgen/ir"
)

// Options configures Normalize.
type Options struct {
	// Overrides is applied to every function. Nil means DefaultOverrides.
	Overrides *OverrideTable

	// Logger receives one line per warning. Nil means slog.Default.
	Logger *slog.Logger
}

// Normalize resolves every raw record into the ir form. It never fails:
// malformed records, duplicate fields and unroutable functions are
// recorded as warnings on the returned catalog. Output order follows the
// raw catalog, except enum values which are sorted by descending value.
func Normalize(raw *RawCatalog, opts Options) *ir.Catalog {
	n := &normalizer{
		overrides: opts.Overrides,
		logger:    opts.Logger,
		out:       &ir.Catalog{},
	}
	if n.overrides == nil {
		n.overrides = DefaultOverrides()
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	if raw == nil {
		return n.out
	}
	n.out.Version = raw.Version

	for _, t := range raw.Types {
		if n.invalid("type", t.Name, t) {
			continue
		}
		n.out.Types = append(n.out.Types, n.namedType(t))
	}
	for _, fn := range raw.Functions {
		if n.invalid("function", fn.Name, fn) {
			continue
		}
		n.out.Functions = append(n.out.Functions, n.endpoint(fn))
	}
	for _, ev := range raw.Events {
		if n.invalid("event", ev.Name, ev) {
			continue
		}
		n.out.Events = append(n.out.Events, ir.Event{
			Name:        ev.Name,
			Description: ev.Description,
			Tags:        ev.Tags,
			Payload:     Resolve(ev.Type),
		})
	}
	return n.out
}

type normalizer struct {
	overrides *OverrideTable
	logger    *slog.Logger
	out       *ir.Catalog
}

func (n *normalizer) warn(code, name, msg string) {
	n.logger.Warn(msg, slog.String("code", code), slog.String("name", name))
	n.out.AddWarning(ir.Warning{Code: code, Message: msg, Name: name})
}

func (n *normalizer) invalid(kind, name string, record any) bool {
	err := validate.Struct(record)
	if err == nil {
		return false
	}
	n.warn(ir.WarnInvalidRecord, name, fmt.Sprintf("skipping invalid %s record: %s", kind, describeInvalid(err)))
	return true
}

func (n *normalizer) namedType(t RawType) ir.NamedType {
	nt := ir.NamedType{
		Name:        t.Name,
		Description: t.Description,
		Tags:        t.Tags,
	}

	seen := make(map[string]bool, len(t.Fields))
	for _, f := range t.Fields {
		if seen[f.Name] {
			n.warn(ir.WarnDuplicateField, t.Name, fmt.Sprintf("duplicate field %s in %s", f.Name, t.Name))
			continue
		}
		seen[f.Name] = true
		nt.Fields = append(nt.Fields, ir.Field{
			Name:        f.Name,
			Description: f.Description,
			Schema:      Resolve(f.Type),
			Optional:    f.Optional,
		})
	}

	for _, v := range t.Values {
		nt.EnumValues = append(nt.EnumValues, ir.EnumValue{
			Name:        v.Name,
			Description: v.Description,
			Value:       v.Value,
		})
	}
	sort.SliceStable(nt.EnumValues, func(i, j int) bool {
		return nt.EnumValues[i].Value > nt.EnumValues[j].Value
	})
	return nt
}

func (n *normalizer) endpoint(fn RawFunction) ir.Endpoint {
	fn = n.overrides.Apply(fn)

	ep := ir.Endpoint{
		Name:        fn.Name,
		Description: fn.Description,
		Tags:        fn.Tags,
		Returns:     Resolve(fn.Returns),
		Overridden:  fn.Overridden,
	}
	if fn.Method != nil {
		ep.Method = *fn.Method
	}
	if fn.Path != nil {
		ep.Template = *fn.Path
		ep.Placeholders = Placeholders(ep.Template)
	}
	for _, arg := range fn.Arguments {
		ep.Arguments = append(ep.Arguments, ir.Argument{
			Name:        arg.Name,
			Description: arg.Description,
			Schema:      Resolve(arg.Type),
			Optional:    arg.Optional,
		})
	}

	if !ep.Routable() {
		n.warn(ir.WarnUnroutableEndpoint, fn.Name, fmt.Sprintf("function %s has no HTTP binding", fn.Name))
	}
	return ep
}
