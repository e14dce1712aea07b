package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/broady/helpgen/catalog"
)

// FetchCatalog collects the whole catalog: the index, then every entry's
// detail with at most the configured number of calls in flight. Entries
// keep index order. The first failed call aborts the fetch.
func (c *Client) FetchCatalog(ctx context.Context) (*catalog.RawCatalog, error) {
	version, err := c.Version(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "build version unavailable", slog.Any("error", err))
	}

	ix, err := c.Help(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch help index: %w", err)
	}
	c.logger.InfoContext(ctx, "fetched help index",
		slog.Int("types", len(ix.Types)),
		slog.Int("functions", len(ix.Functions)),
		slog.Int("events", len(ix.Events)),
	)

	raw := &catalog.RawCatalog{
		Version:   version,
		Types:     make([]catalog.RawType, len(ix.Types)),
		Functions: make([]catalog.RawFunction, len(ix.Functions)),
		Events:    make([]catalog.RawEvent, len(ix.Events)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, name := range ix.Types {
		g.Go(func() error {
			return c.fetchInto(gctx, KindType, name, FormatFull, &raw.Types[i])
		})
	}
	for i, name := range ix.Functions {
		g.Go(func() error {
			return c.fetchFunction(gctx, name, &raw.Functions[i])
		})
	}
	for i, name := range ix.Events {
		g.Go(func() error {
			return c.fetchInto(gctx, KindEvent, name, FormatFull, &raw.Events[i])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) fetchFunction(ctx context.Context, name string, out *catalog.RawFunction) error {
	var fn catalog.RawFunction
	if err := c.fetchInto(ctx, KindFunction, name, FormatFull, &fn); err != nil {
		return err
	}
	var console catalog.ConsoleRecord
	if err := c.fetchInto(ctx, KindFunction, name, FormatConsole, &console); err != nil {
		return err
	}
	*out = catalog.MergeConsole(fn, console)
	return nil
}

func (c *Client) fetchInto(ctx context.Context, kind Kind, name string, format Format, out any) error {
	record, err := c.Detail(ctx, kind, name, format)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(record, out); err != nil {
		return fmt.Errorf("%s %q: decode %s record: %w", kind, name, format, err)
	}
	return nil
}
