package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/doclinkcheck/cmd/doclinkcheck/commands"
	foundationerrors "git.home.luguber.info/inful/doclinkcheck/internal/foundation/errors"
	"git.home.luguber.info/inful/doclinkcheck/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("doclinkcheck"),
		kong.Description("Check that relative markdown links in a documentation tree point to files on disk."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Logger: slog.Default(), Stdout: os.Stdout}
	err := ctx.Run(global, cli)
	if errors.Is(err, commands.ErrBrokenLinks) {
		os.Exit(foundationerrors.ExitBrokenLinks)
	}
	foundationerrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
