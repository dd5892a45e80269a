package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/frrdocs/cmd/frrdocs/commands"
	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{Out: os.Stdout}

	ctx := kong.Parse(cli,
		kong.Name("frrdocs"),
		kong.Description("Resolve the FRR documentation build configuration."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	if err := ctx.Run(global, cli); err != nil {
		adapter := ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		os.Exit(adapter.Report(err))
	}
}
