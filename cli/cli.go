package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/soyops/soyctl/cli/cmd"
)

// CLI is the top-level command-line interface for soyctl.
type CLI struct {
	Log     logConfig     `embed:"" group:"log"     prefix:"log-"`
	Profile profileConfig `embed:"" group:"profile" prefix:"profile-"`

	Env   cmd.Env   `cmd:"" help:"Show resolved environment settings"`
	Check cmd.Check `cmd:"" help:"Validate an asset definition"`
}

// Run executes the soyctl CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name("soyctl"),
		kong.Description("Data-pipeline tooling built around a structured-logging core."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Profile.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Configure the facade before any command logic runs; an invalid
	// level name aborts the run here.
	if err := cli.Log.start(); err != nil {
		return err
	}

	// No-op unless a profiling mode was selected.
	defer cli.Profile.start()()

	// Execute the selected command
	return ktx.Run(ctx)
}
