package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/desertwitch/statcompat/internal/atcall"
	"github.com/desertwitch/statcompat/internal/capability"
	"github.com/desertwitch/statcompat/internal/configuration"
	"github.com/desertwitch/statcompat/internal/schema"
	"github.com/desertwitch/statcompat/internal/shim"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configFile  = pflag.StringP("config", "c", configuration.DefaultConfigFile, "configuration file (KEY=value)")
	release     = pflag.StringP("release", "r", "", "target release profile, overrides the configuration")
	debug       = pflag.BoolP("debug", "d", false, "enable debug logging")
	showVersion = pflag.BoolP("version", "v", false, "show version")
	showHelp    = pflag.BoolP("help", "h", false, "show help")
)

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command> [args]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  stat [-L] [-x] [-f] PATH...   query paths through the wide entry points")
	fmt.Fprintln(os.Stderr, "  fstat [-x] [-f] PATH...       query open descriptors through the wide entry points")
	fmt.Fprintln(os.Stderr, "  at [-L] [-n] DIR PATH         query PATH relative to the directory DIR")
	fmt.Fprintln(os.Stderr, "  symbols                       list the entry points the release requires")
	fmt.Fprintln(os.Stderr, "  profiles                      list the known release profiles")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	pflag.PrintDefaults()
}

func establishSettings(configHandler *configuration.Handler) (*configuration.Settings, error) {
	settings, err := configHandler.Establish(*configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || pflag.CommandLine.Changed("config") {
			return nil, err
		}
		settings = configHandler.Defaults()
	}

	if *release != "" {
		caps, err := capability.Lookup(*release)
		if err != nil {
			return nil, fmt.Errorf("invalid --release: %w", err)
		}
		settings.TargetRelease = *release
		settings.Capabilities = caps
	}

	if *debug {
		settings.LogLevel = slog.LevelDebug
	}

	return settings, nil
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	pflag.CommandLine.SetInterspersed(false)
	pflag.Usage = printUsage
	pflag.Parse()

	if *showHelp {
		printUsage()

		return
	}

	if *showVersion {
		fmt.Fprintf(os.Stdout, "statcompat %s (built for %s)\n", Version, capability.Release)

		return
	}

	setupLogging(slog.LevelInfo)

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings, err := establishSettings(configHandler)
	if err != nil {
		slog.Error("Failed to establish configuration.", "err", err)
		ExitCode = 1

		return
	}
	setupLogging(settings.LogLevel)

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	atHandler := atcall.NewHandler(osProvider, unixProvider)
	shimHandler := shim.NewHandler(settings.Capabilities, &schema.Narrow{}, &schema.Native{}, atHandler)

	slog.Debug("Established configuration.",
		"release", settings.TargetRelease,
		"caps", settings.Capabilities.String(),
	)

	app := NewApp(settings, shimHandler, osProvider, os.Stdout)

	if err := app.Run(pflag.Args()); err != nil {
		if errors.Is(err, ErrUsage) {
			printUsage()
		}
		slog.Error("Command failed.", "err", err)
		ExitCode = 1
	}
}
