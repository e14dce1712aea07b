// Package typescript emits TypeScript declarations for an assembled
// OpenAPI document: the component types, an endpoint lookup table with
// helper types, and the WebSocket event table.
package typescript

// Defaults for Config.
const (
	DefaultImportPath      = "./lcu-types"
	DefaultImportNamespace = "LCUTypes"
)

// Config configures Emit.
type Config struct {
	// Namespace wraps the type declarations in "export namespace Namespace { ... }"
	// and qualifies every reference with it. Empty emits top-level declarations.
	Namespace string

	// ImportPath is the module the endpoint and event files import the
	// type declarations from.
	ImportPath string

	// ImportNamespace qualifies references in the endpoint and event files
	// when Namespace is empty.
	ImportNamespace string

	// Definitions replace the generated declaration of the named components.
	// "{{namespace}}" in a definition expands to the qualifier ("NS." or "").
	// Entries are layered over the built-in definitions.
	Definitions map[string]string
}

func (c Config) withDefaults() Config {
	if c.ImportPath == "" {
		c.ImportPath = DefaultImportPath
	}
	if c.ImportNamespace == "" {
		c.ImportNamespace = DefaultImportNamespace
	}
	return c
}

// Declarations holds the emitted declaration files.
type Declarations struct {
	// Types declares one type per component schema.
	Types string

	// Endpoints declares the LCUEndpoints lookup table and its helper types.
	Endpoints string

	// Events declares the LCUWebSocketEvents table.
	Events string
}
