package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/broady/helpgen"
	"github.com/broady/helpgen/catalog"
	"github.com/broady/helpgen/client"
	"github.com/broady/helpgen/internal/config"
	"github.com/broady/helpgen/sink"
)

// Globals are flags shared by every command.
type Globals struct {
	EnvFile   []string `help:"Read settings from these .env files instead of ./.env." name:"env-file" type:"existingfile"`
	Verbose   bool     `help:"Log every request." short:"v"`
	LogFormat string   `help:"Log output format." enum:"text,json" default:"text" name:"log-format"`

	stdout io.Writer `kong:"-"`
	stderr io.Writer `kong:"-"`
}

func (g *Globals) logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if g.Verbose {
		opts.Level = slog.LevelDebug
	}
	if g.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(g.stderr, opts))
	}
	return slog.New(slog.NewTextHandler(g.stderr, opts))
}

func (g *Globals) config() (*config.Config, error) {
	cfg, err := config.Load(g.EnvFile...)
	if err != nil {
		return nil, helpgen.ValidationError(err)
	}
	return cfg, nil
}

// OutputFlags configure what a run writes and where.
type OutputFlags struct {
	Out       string `arg:"" help:"Output directory for generated files." type:"path"`
	Namespace string `help:"Wrap the type declarations in this TypeScript namespace."`
	Overrides string `help:"YAML override table layered over the built-in one." type:"existingfile"`
	Title     string `help:"Document title."`
	Strict    bool   `help:"Fail on dangling type references."`
	RawData   bool   `help:"Also write the raw and normalized catalogs." name:"raw-data"`
	NoUpload  bool   `help:"Do not upload to the configured S3 bucket." name:"no-upload"`
}

func (o *OutputFlags) generator(g *helpgen.Generator, cfg *config.Config, logger *slog.Logger) (*helpgen.Generator, error) {
	namespace := cfg.Namespace
	if o.Namespace != "" {
		namespace = o.Namespace
	}
	g = g.WithLogger(logger).WithNamespace(namespace).WithTitle(o.Title)
	if o.Strict {
		g = g.Strict()
	}
	if o.RawData {
		g = g.WithRawData()
	}

	if o.Overrides != "" {
		f, err := os.Open(o.Overrides)
		if err != nil {
			return nil, helpgen.Errorf(helpgen.CodeInvalidConfig, "open overrides: %v", err)
		}
		defer f.Close()
		table, err := catalog.LoadOverrides(f)
		if err != nil {
			return nil, helpgen.Errorf(helpgen.CodeInvalidConfig, "%s: %v", o.Overrides, err)
		}
		g = g.WithOverrides(table)
	}

	out := sink.MultiSink{sink.NewFilesystemSink(o.Out)}
	if cfg.S3.Enabled() && !o.NoUpload {
		s3, err := sink.NewS3Sink(cfg.S3.Sink())
		if err != nil {
			return nil, helpgen.Errorf(helpgen.CodeInvalidConfig, "s3: %v", err)
		}
		out = append(out, s3)
	}
	return g.ToSink(out), nil
}

func report(w io.Writer, res *helpgen.Result, out string) {
	fmt.Fprintf(w, "wrote %d files to %s (version %s, %d paths, %d warnings)\n",
		len(res.Artifacts), out, res.Document.Info.Version, res.Document.Paths.Len(), len(res.Warnings))
}

// GenCmd fetches the catalog from a running client.
type GenCmd struct {
	OutputFlags `embed:""`

	BaseURL     string `help:"Address of the client's HTTP surface." name:"base-url"`
	Password    string `help:"Password for basic auth as user riot."`
	Concurrency int    `help:"Maximum number of detail requests in flight."`
}

func (c *GenCmd) Run(ctx context.Context, g *Globals) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	if c.Password != "" {
		cfg.Password = c.Password
	}
	if c.Concurrency != 0 {
		cfg.Concurrency = c.Concurrency
	}
	if err := cfg.Validate(); err != nil {
		return helpgen.ValidationError(err)
	}

	logger := g.logger()
	cl, err := client.New(cfg.ClientOptions(logger))
	if err != nil {
		return helpgen.Errorf(helpgen.CodeInvalidConfig, "%v", err)
	}
	gen, err := c.generator(helpgen.FromFetcher(cl), cfg, logger)
	if err != nil {
		return err
	}
	res, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	report(g.stdout, res, c.Out)
	return nil
}

// ConvertCmd regenerates artifacts from a raw catalog written with --raw-data.
type ConvertCmd struct {
	Raw         string `arg:"" help:"Raw catalog JSON." type:"existingfile"`
	OutputFlags `embed:""`

	Version string `help:"Build version recorded in the document."`
}

func (c *ConvertCmd) Run(ctx context.Context, g *Globals) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(c.Raw)
	if err != nil {
		return helpgen.Errorf(helpgen.CodeInvalidConfig, "read raw catalog: %v", err)
	}
	raw, err := catalog.Decode(data)
	if err != nil {
		return helpgen.Errorf(helpgen.CodeInvalidCatalog, "%s: %v", c.Raw, err)
	}

	gen, err := c.generator(helpgen.FromCatalog(raw), cfg, g.logger())
	if err != nil {
		return err
	}
	if c.Version != "" {
		gen = gen.WithVersion(c.Version)
	}
	res, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	report(g.stdout, res, c.Out)
	return nil
}
