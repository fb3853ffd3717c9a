// Command mash-av builds, binds and inspects typed audio-control resources.
//
// Usage:
//
//	mash-av <command> [flags] [args]
//
// Commands:
//
//	build    Build a model from flags and print its CBOR representation
//	hydrate  Hydrate a model from a CBOR representation
//	parcel   Encode or decode the compact parcel form
//	log      View an event log file
//	shell    Edit an audio model interactively
//
// Examples:
//
//	# Build a muted audio resource
//	mash-av build -name den -uri /ocf/audio/1 -mute -volume 20
//
//	# Hydrate from hex and record events
//	mash-av hydrate -event-log av.mlog a3647265...
//
//	# Convert a representation file to a parcel
//	mash-av parcel encode rep.cbor
//
//	# Show only hydrations that left the model uninitialized
//	mash-av log -incomplete av.mlog
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mash-protocol/mash-av/cmd/mash-av/commands"
	"github.com/mash-protocol/mash-av/cmd/mash-av/interactive"
	"github.com/mash-protocol/mash-av/pkg/log"
	"github.com/mash-protocol/mash-av/pkg/model"
)

const usage = `mash-av - Typed Audio Resource Binding Tool

Usage:
  mash-av <command> [flags] [args]

Commands:
  build    Build a model from flags and print its CBOR representation
  hydrate  Hydrate a model from a CBOR representation (file or hex)
  parcel   Encode or decode the compact parcel form (parcel encode|decode)
  log      View an event log file
  shell    Edit an audio model interactively

Use "mash-av <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "build":
		runBuild(args)
	case "hydrate":
		runHydrate(args)
	case "parcel":
		runParcel(args)
	case "log":
		runLog(args)
	case "shell":
		runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// commonFlags are accepted by every command that binds a model.
type commonFlags struct {
	fs       *flag.FlagSet
	config   *string
	logLevel *string
	eventLog *string
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		fs:       fs,
		config:   fs.String("config", "", "YAML config file"),
		logLevel: fs.String("log-level", "", "Log level (debug, info, warn, error)"),
		eventLog: fs.String("event-log", "", "Append binding events to this .mlog file"),
	}
}

// wasSet reports whether the named flag was given on the command line.
func wasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// load reads the config file and applies flag overrides.
func (c *commonFlags) load() Config {
	cfg, err := LoadConfig(*c.config)
	if err != nil {
		fatal(err)
	}
	if *c.logLevel != "" {
		cfg.LogLevel = *c.logLevel
	}
	if *c.eventLog != "" {
		cfg.EventLog = *c.eventLog
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	return cfg
}

// setup builds the command environment. The returned func closes the event
// log file.
func setup(cfg Config) (*commands.Env, func()) {
	slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(slogger)

	sessionID := log.NewSessionID()
	loggers := []log.Logger{log.NewSlogAdapter(slogger)}
	closeFn := func() {}

	if cfg.EventLog != "" {
		fileLogger, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			fatal(fmt.Errorf("failed to open event log: %w", err))
		}
		loggers = append(loggers, fileLogger)
		closeFn = func() {
			if err := fileLogger.Close(); err != nil {
				slog.Warn("failed to close event log", "path", cfg.EventLog, "error", err)
			}
			slog.Debug("event log closed", "path", cfg.EventLog, "events", fileLogger.Count())
		}
	}

	slog.Debug("session started", "session_id", sessionID)
	return &commands.Env{
		Out:       os.Stdout,
		Logger:    log.NewMultiLogger(loggers...),
		SessionID: sessionID,
	}, closeFn
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `mash-av build - Build a model and print its CBOR representation

Usage:
  mash-av build [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	common := addCommonFlags(fs)
	resource := fs.String("resource", commands.ResourceAudio, "Resource (audio, switch)")
	name := fs.String("name", "", "Service name")
	uri := fs.String("uri", "", "Resource URI")
	mute := fs.Bool("mute", false, "Mute state (audio)")
	volume := fs.Int("volume", 0, "Volume (audio)")
	value := fs.Bool("value", false, "On/off value (switch)")
	output := fs.String("o", "", "Write raw CBOR to this file")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := common.load()
	opts := commands.BuildOptions{
		Resource: *resource,
		Name:     cfg.Defaults.Name,
		URI:      cfg.Defaults.URI,
		Mute:     cfg.Defaults.Mute,
		Volume:   cfg.Defaults.Volume,
		Value:    *value,
		Output:   *output,
	}
	if wasSet(fs, "name") {
		opts.Name = *name
	}
	if wasSet(fs, "uri") {
		opts.URI = *uri
	}
	if wasSet(fs, "mute") {
		opts.Mute = *mute
	}
	if wasSet(fs, "volume") {
		opts.Volume = int32(*volume)
		if int(opts.Volume) != *volume {
			fatal(fmt.Errorf("volume out of int32 range: %d", *volume))
		}
	}

	env, done := setup(cfg)
	defer done()

	if err := commands.RunBuild(env, opts); err != nil {
		done()
		fatal(err)
	}
}

func runHydrate(args []string) {
	fs := flag.NewFlagSet("hydrate", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `mash-av hydrate - Hydrate a model from a CBOR representation

Usage:
  mash-av hydrate [flags] <file|hex>

Flags:
`)
		fs.PrintDefaults()
	}

	common := addCommonFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: representation file or hex required")
		fs.Usage()
		os.Exit(1)
	}

	data, err := commands.ReadInput(fs.Arg(0))
	if err != nil {
		fatal(err)
	}

	env, done := setup(common.load())
	defer done()

	if err := commands.RunHydrate(env, data); err != nil {
		done()
		fatal(err)
	}
}

func runParcel(args []string) {
	fs := flag.NewFlagSet("parcel", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `mash-av parcel - Encode or decode the compact parcel form

Usage:
  mash-av parcel [flags] encode <rep-file|hex>
  mash-av parcel [flags] decode <parcel-file|hex>

Flags:
`)
		fs.PrintDefaults()
	}

	common := addCommonFlags(fs)
	resource := fs.String("resource", commands.ResourceAudio, "Resource for decode (audio, switch)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: mode (encode or decode) and input required")
		fs.Usage()
		os.Exit(1)
	}

	data, err := commands.ReadInput(fs.Arg(1))
	if err != nil {
		fatal(err)
	}

	env, done := setup(common.load())
	defer done()

	switch fs.Arg(0) {
	case "encode":
		err = commands.RunParcelEncode(env, data)
	case "decode":
		err = commands.RunParcelDecode(env, *resource, data)
	default:
		err = fmt.Errorf("unknown parcel mode: %s (must be encode or decode)", fs.Arg(0))
	}
	if err != nil {
		done()
		fatal(err)
	}
}

func runLog(args []string) {
	fs := flag.NewFlagSet("log", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `mash-av log - View an event log file

Usage:
  mash-av log [flags] <file.mlog>

Flags:
`)
		fs.PrintDefaults()
	}

	layer := fs.String("layer", "", "Filter by layer (wire, binding, parcel)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (binding, parcel, error)")
	sessionID := fs.String("session", "", "Filter by session ID")
	uri := fs.String("uri", "", "Filter by resource URI")
	incomplete := fs.Bool("incomplete", false, "Only hydrations that left the model uninitialized")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter := log.Filter{
		SessionID:      *sessionID,
		ResourceURI:    *uri,
		IncompleteOnly: *incomplete,
	}

	if *layer != "" {
		l, err := commands.ParseLayerFlag(*layer)
		if err != nil {
			fatal(err)
		}
		filter.Layer = &l
	}

	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			fatal(err)
		}
		filter.Direction = &d
	}

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fatal(err)
		}
		filter.Category = &c
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fatal(err)
	}
}

func runShell(args []string) {
	fs := flag.NewFlagSet("shell", flag.ExitOnError)
	common := addCommonFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := common.load()
	env, done := setup(cfg)
	defer done()

	a := model.NewAudio()
	a.Name = cfg.Defaults.Name
	a.URI = cfg.Defaults.URI
	a.SetMute(cfg.Defaults.Mute)
	a.SetVolume(cfg.Defaults.Volume)

	sh, err := interactive.New(a, env.Logger, env.SessionID)
	if err != nil {
		done()
		fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sh.Run(ctx)
}
