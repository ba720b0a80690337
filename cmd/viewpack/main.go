package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	vperrors "git.home.luguber.info/inful/viewpack/internal/errors"
	"git.home.luguber.info/inful/viewpack/internal/version"
	"github.com/alecthomas/kong"
)

// Global carries process-wide state bound into hooks and command Run methods.
type Global struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"1" help:"Write the view templates and stylesheet, then package them into views_package.zip"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(g.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cli := &CLI{}
	globals := &Global{Stdout: stdout, Stderr: stderr, Logger: slog.Default()}
	parser, err := kong.New(cli,
		kong.Name("viewpack"),
		kong.Description("Materialize the view templates and stylesheet, then package them into a zip archive."),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Bind(globals),
		kong.UsageOnError(),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if err := ctx.Run(); err != nil {
		return vperrors.NewCLIErrorAdapter(cli.Verbose, globals.Logger).WithOutput(stderr).Report(err)
	}
	return 0
}
