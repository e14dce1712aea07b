package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed overrides.yaml
var defaultOverridesYAML string

// Override supplies routing for a function. Empty fields leave the
// function's own value in place.
type Override struct {
	Method string `yaml:"method"`
	Path   string `yaml:"path"`

	// Silent applies the override without marking the function as overridden,
	// which keeps it out of the document's override listing.
	Silent bool `yaml:"silent,omitempty"`
}

// OverrideTable maps function names to routing overrides.
// A table is immutable once built.
type OverrideTable struct {
	entries map[string]Override
}

var (
	defaultOnce  sync.Once
	defaultTable *OverrideTable
)

// DefaultOverrides returns the built-in override table.
func DefaultOverrides() *OverrideTable {
	defaultOnce.Do(func() {
		t, err := LoadOverrides(strings.NewReader(defaultOverridesYAML))
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid built-in overrides: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// NewOverrideTable returns a table holding a copy of entries.
func NewOverrideTable(entries map[string]Override) *OverrideTable {
	return &OverrideTable{entries: maps.Clone(entries)}
}

// LoadOverrides parses a YAML document mapping function names to overrides.
func LoadOverrides(r io.Reader) (*OverrideTable, error) {
	entries := make(map[string]Override)
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	for name, o := range entries {
		if o.Method != "" && !isHTTPMethod(o.Method) {
			return nil, fmt.Errorf("override %s: invalid method %q", name, o.Method)
		}
		if o.Path != "" && !strings.HasPrefix(o.Path, "/") {
			return nil, fmt.Errorf("override %s: path %q must start with /", name, o.Path)
		}
	}
	return &OverrideTable{entries: entries}, nil
}

// Merge returns a new table with the entries of other layered over t.
func (t *OverrideTable) Merge(other *OverrideTable) *OverrideTable {
	merged := make(map[string]Override, t.Len()+other.Len())
	if t != nil {
		maps.Copy(merged, t.entries)
	}
	if other != nil {
		maps.Copy(merged, other.entries)
	}
	return &OverrideTable{entries: merged}
}

// Lookup returns the override for name, if any.
func (t *OverrideTable) Lookup(name string) (Override, bool) {
	if t == nil {
		return Override{}, false
	}
	o, ok := t.entries[name]
	return o, ok
}

// Len returns the number of entries.
func (t *OverrideTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Names returns the overridden function names in sorted order.
func (t *OverrideTable) Names() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.entries))
}

// Apply returns fn with its routing replaced by the table entry for its
// name. Functions without an entry are returned unchanged.
func (t *OverrideTable) Apply(fn RawFunction) RawFunction {
	o, ok := t.Lookup(fn.Name)
	if !ok {
		return fn
	}
	if o.Method != "" {
		m := o.Method
		fn.Method = &m
	}
	if o.Path != "" {
		p := o.Path
		fn.Path = &p
		fn.PathParams = Placeholders(p)
	}
	if !o.Silent {
		fn.Overridden = true
	}
	return fn
}
