// Package helpgen turns the League client's /Help reflection catalog into an
// OpenAPI 3.0 document and TypeScript declarations.
//
// A run fetches (or is given) the raw catalog, normalizes it, assembles the
// document and emits the declaration files:
//
//	res, err := helpgen.FromFetcher(c).
//	    WithNamespace("LCU").
//	    ToSink(sink.NewFilesystemSink("./out")).
//	    Generate(ctx)
package helpgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/broady/helpgen/catalog"
	"github.com/broady/helpgen/ir"
	"github.com/broady/helpgen/openapi"
	"github.com/broady/helpgen/sink"
	"github.com/broady/helpgen/typescript"
)

// Artifact names written by a run.
const (
	FileOpenAPI    = "openapi.json"
	FileTypes      = "types.ts"
	FileEndpoints  = "endpoints.ts"
	FileEvents     = "events.ts"
	FileRawCatalog = "raw/catalog.json"
	FileNormalized = "raw/normalized.json"
)

// typesImport is how endpoints.ts and events.ts import types.ts.
const typesImport = "./types"

// Fetcher supplies the raw catalog of a running service.
type Fetcher interface {
	FetchCatalog(ctx context.Context) (*catalog.RawCatalog, error)
}

// Generator provides a fluent API for a generation run.
// Create with FromFetcher or FromCatalog and configure with method chaining.
type Generator struct {
	fetcher Fetcher
	raw     *catalog.RawCatalog

	logger     *slog.Logger
	namespace  string
	overrides  *catalog.OverrideTable
	meta       openapi.Metadata
	strict     bool
	rawData    bool
	out        sink.OutputSink
	typesFile  string
	importPath string
}

// FromFetcher creates a Generator that fetches the catalog from f.
func FromFetcher(f Fetcher) *Generator {
	return &Generator{fetcher: f}
}

// FromCatalog creates a Generator for an already fetched catalog.
func FromCatalog(raw *catalog.RawCatalog) *Generator {
	return &Generator{raw: raw}
}

// WithLogger sets the logger. The default is slog.Default.
func (g *Generator) WithLogger(l *slog.Logger) *Generator {
	g.logger = l
	return g
}

// WithNamespace wraps the type declarations in a TypeScript namespace.
func (g *Generator) WithNamespace(ns string) *Generator {
	g.namespace = ns
	return g
}

// WithOverrides layers t over the built-in override table.
func (g *Generator) WithOverrides(t *catalog.OverrideTable) *Generator {
	g.overrides = t
	return g
}

// WithTitle sets the document title.
func (g *Generator) WithTitle(title string) *Generator {
	g.meta.Title = title
	return g
}

// WithVersion replaces the build version reported by the service.
func (g *Generator) WithVersion(version string) *Generator {
	g.meta.Version = version
	return g
}

// Strict makes dangling references and catalog consistency errors fatal.
func (g *Generator) Strict() *Generator {
	g.strict = true
	return g
}

// WithRawData adds the raw and normalized catalogs to the artifacts.
func (g *Generator) WithRawData() *Generator {
	g.rawData = true
	return g
}

// ToSink writes every artifact to s. Without a sink the artifacts are only
// returned in the Result.
func (g *Generator) ToSink(s sink.OutputSink) *Generator {
	g.out = s
	return g
}

// Artifact is one generated file.
type Artifact struct {
	Name    string
	Content []byte
}

// Result describes a completed run.
type Result struct {
	RunID        string
	Catalog      *ir.Catalog
	Document     *openapi.Document
	Declarations *typescript.Declarations
	Artifacts    []Artifact
	Warnings     []ir.Warning
}

// Artifact returns the content of the named artifact, or nil.
func (r *Result) Artifact(name string) []byte {
	for _, a := range r.Artifacts {
		if a.Name == name {
			return a.Content
		}
	}
	return nil
}

// Generate runs the pipeline.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	logger := g.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("run", runID))

	raw, err := g.catalog(ctx, logger)
	if err != nil {
		return nil, err
	}

	overrides := catalog.DefaultOverrides().Merge(g.overrides)
	cat := catalog.Normalize(raw, catalog.Options{Overrides: overrides, Logger: logger})
	if err := g.checkCatalog(cat, logger); err != nil {
		return nil, err
	}

	doc := openapi.Assemble(cat, g.meta)
	if g.strict {
		if err := openapi.Validate(ctx, doc); err != nil {
			return nil, wrap(CodeStrictValidation, err, "document validation")
		}
	}

	decls, err := typescript.Emit(doc, cat.Events, typescript.Config{
		Namespace:  g.namespace,
		ImportPath: typesImport,
	})
	if err != nil {
		return nil, wrap(CodeInternal, err, "emit declarations")
	}

	res := &Result{
		RunID:        runID,
		Catalog:      cat,
		Document:     doc,
		Declarations: decls,
		Warnings:     cat.Warnings,
	}
	if res.Artifacts, err = g.artifacts(raw, cat, doc, decls); err != nil {
		return nil, wrap(CodeInternal, err, "encode artifacts")
	}

	if g.out != nil {
		for _, a := range res.Artifacts {
			if err := g.out.WriteFile(ctx, a.Name, a.Content); err != nil {
				return nil, wrap(CodeOutput, err, fmt.Sprintf("write %s", a.Name))
			}
		}
	}

	logger.InfoContext(ctx, "generation complete",
		slog.String("version", doc.Info.Version),
		slog.Int("schemas", doc.Components.Schemas.Len()),
		slog.Int("paths", doc.Paths.Len()),
		slog.Int("events", len(cat.Events)),
		slog.Int("warnings", len(cat.Warnings)),
	)
	return res, nil
}

func (g *Generator) catalog(ctx context.Context, logger *slog.Logger) (*catalog.RawCatalog, error) {
	if g.raw != nil {
		return g.raw, nil
	}
	if g.fetcher == nil {
		return nil, NewError(CodeInvalidConfig, "no catalog source")
	}
	logger.InfoContext(ctx, "fetching catalog")
	raw, err := g.fetcher.FetchCatalog(ctx)
	if err != nil {
		return nil, wrap(CodeTransport, err, "fetch catalog")
	}
	return raw, nil
}

func (g *Generator) checkCatalog(cat *ir.Catalog, logger *slog.Logger) error {
	errs := cat.Validate()
	if len(errs) == 0 {
		return nil
	}
	if g.strict {
		return wrap(CodeStrictValidation, errors.Join(errs...), "catalog validation")
	}
	for _, err := range errs {
		logger.Warn("catalog inconsistency", slog.Any("error", err))
		var verr *ir.ValidationError
		if errors.As(err, &verr) {
			cat.AddWarning(verr.Warning())
		}
	}
	return nil
}

func (g *Generator) artifacts(raw *catalog.RawCatalog, cat *ir.Catalog, doc *openapi.Document, decls *typescript.Declarations) ([]Artifact, error) {
	docJSON, err := doc.ToJSON()
	if err != nil {
		return nil, err
	}
	out := []Artifact{
		{Name: FileOpenAPI, Content: docJSON},
		{Name: FileTypes, Content: []byte(decls.Types)},
		{Name: FileEndpoints, Content: []byte(decls.Endpoints)},
		{Name: FileEvents, Content: []byte(decls.Events)},
	}
	if !g.rawData {
		return out, nil
	}

	rawJSON, err := json.MarshalIndent(raw, "", "    ")
	if err != nil {
		return nil, err
	}
	normJSON, err := json.MarshalIndent(cat, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(out,
		Artifact{Name: FileRawCatalog, Content: rawJSON},
		Artifact{Name: FileNormalized, Content: normJSON},
	), nil
}
