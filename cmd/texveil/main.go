// Package main is the entry point for the texveil demo viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/texveil/internal/app"
	"github.com/dshills/texveil/internal/conceal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	var engineOpts []conceal.Option
	if opts.ConcealDelay > 0 {
		engineOpts = append(engineOpts, conceal.WithDelay(opts.ConcealDelay))
	}

	ed := &editor{}
	engineOpts = append(engineOpts, conceal.WithRefreshFunc(ed.onEngineRefresh))

	application, err := app.New(opts.ConfigPath, engineOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	var text string
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		text = string(data)
	}

	if err := ed.init(application, opts.File, text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer ed.shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		ed.quit()
	}()

	if err := ed.loop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// options holds the parsed command line.
type options struct {
	ConfigPath   string
	ConcealDelay time.Duration
	File         string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.DurationVar(&opts.ConcealDelay, "conceal-delay", 0, "Delayed-reveal duration (0 uses the configured value)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "texveil - live math concealment viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: texveil [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: arrows move, type to edit, Esc or Ctrl+C quits\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("texveil %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		opts.File = args[0]
	}
	return opts
}
