// Command addressbook is a demo harness for the addressbook library. It owns
// every human-readable message; the library only returns outcomes and errors.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vortex-fintech/go-addressbook/logger"
)

// CLI is the top-level command structure.
type CLI struct {
	Config `embed:""`

	Demo     DemoCmd     `cmd:"" default:"withargs" help:"Run the scripted address book walkthrough."`
	Validate ValidateCmd `cmd:"" help:"Validate a contact given as flags."`
}

// App carries what every command needs.
type App struct {
	Out io.Writer
	Log *logger.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("addressbook"),
		kong.Description("In-memory contact manager demo."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 2
	}

	if err := cli.Config.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 2
	}

	log, err := logger.New(cli.Service, cli.Env)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 1
	}
	defer log.SafeSync()

	if err := kctx.Run(&App{Out: stdout, Log: log}); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 1
	}
	return 0
}
