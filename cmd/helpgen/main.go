package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/broady/helpgen"
)

type CLI struct {
	Globals

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Fetch the /Help catalog from a running client and generate artifacts."`
	Convert ConvertCmd `cmd:"" help:"Generate artifacts from a saved raw catalog."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	fmt.Fprintln(g.stdout, Version())
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, executes the selected command and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cli := &CLI{}
	cli.stdout, cli.stderr = stdout, stderr

	exit := -1
	parser, err := kong.New(cli,
		kong.Name("helpgen"),
		kong.Description("Generate an OpenAPI document and TypeScript declarations from the League client's /Help endpoint."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exit = code }),
		kong.Bind(&cli.Globals),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if exit >= 0 {
		return exit
	}
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}
	if err := kctx.Run(); err != nil {
		parser.Errorf("%s", err)
		return helpgen.CodeOf(err).ExitCode()
	}
	return 0
}
