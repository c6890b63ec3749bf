package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/om270459-crypto/ghpush/cmd"
	"github.com/om270459-crypto/ghpush/internal/logger"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type mainCmd struct {
	cmd.GlobalOptions

	Version   versionFlag `name:"version" help:"Print version information"`
	Verbosity int         `short:"v" type:"counter" help:"Increase verbosity"`

	Publish cmd.PublishCmd `cmd:"" default:"withargs" help:"Publish a local project directory to a remote repository"`
}

type versionFlag bool

func (v versionFlag) BeforeApply(app *kong.Kong) error {
	app.Stdout.Write([]byte("ghpush " + version + " (" + commit + ") built on " + date + "\n"))
	os.Exit(0)
	return nil
}

func main() {
	// Setup logging
	log := logger.Init()

	// Context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = logger.WithLogger(ctx, &log)

	// Signal handling
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		log.Warn().Msg("Interrupted, finishing up...")
		cancel()
	}()

	// Parse CLI
	var cli mainCmd
	parser := kong.Must(&cli,
		kong.Name("ghpush"),
		kong.Description("Publish a local project directory to a remote GitHub repository over HTTPS"),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(&log, (*zerolog.Logger)(nil)),
	)

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.FatalIfErrorf(err)
	}

	// Set verbosity
	logger.SetLogLevel(cli.Verbosity)

	// Run command
	err = kctx.Run(&cli.GlobalOptions, ctx)
	kctx.FatalIfErrorf(err)
}
