package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/desertwitch/statcompat/internal/configuration"
	"github.com/desertwitch/statcompat/internal/record"
	"github.com/desertwitch/statcompat/internal/shim"
	"github.com/spf13/pflag"
)

var ErrUsage = errors.New("invalid usage")

type shimProvider interface {
	Stat64(path string, buf *record.Wide) error
	Lstat64(path string, buf *record.Wide) error
	Fstat64(fd int, buf *record.Wide) error
	Statx64NP(path string, buf *record.Wide, fsec *record.FileSec) error
	Lstatx64NP(path string, buf *record.Wide, fsec *record.FileSec) error
	Fstatx64NP(fd int, buf *record.Wide, fsec *record.FileSec) error
	Fstatat(dirfd int, path string, buf *record.Narrow, flag int) error
	Fstatat64(dirfd int, path string, buf *record.Wide, flag int) error
	Exports() []shim.Export
}

type osProvider interface {
	Open(name string) (*os.File, error)
}

type App struct {
	settings    *configuration.Settings
	shimHandler shimProvider
	osHandler   osProvider
	out         io.Writer
}

func NewApp(settings *configuration.Settings, shimHandler shimProvider, osHandler osProvider, out io.Writer) *App {
	return &App{
		settings:    settings,
		shimHandler: shimHandler,
		osHandler:   osHandler,
		out:         out,
	}
}

func (app *App) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	switch args[0] {
	case "stat":
		return app.runStat(args[1:])
	case "fstat":
		return app.runFstat(args[1:])
	case "at":
		return app.runAt(args[1:])
	case "symbols":
		return app.runSymbols()
	case "profiles":
		return app.runProfiles()
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
}

type queryOptions struct {
	nofollow    bool
	sec         bool
	fingerprint bool
}

func newQueryFlags(name string, opts *queryOptions, withNofollow bool) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	if withNofollow {
		flags.BoolVarP(&opts.nofollow, "nofollow", "L", false, "do not follow a final symbolic link")
	}
	flags.BoolVarP(&opts.sec, "sec", "x", false, "also query the security descriptor")
	flags.BoolVarP(&opts.fingerprint, "fingerprint", "f", false, "show the record fingerprint")

	return flags
}

func (app *App) runStat(args []string) error {
	var opts queryOptions

	flags := newQueryFlags("stat", &opts, true)
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("%w: stat needs at least one path", ErrUsage)
	}

	var errs []error

	for _, path := range flags.Args() {
		var buf record.Wide
		var fsec *record.FileSec
		var err error

		switch {
		case opts.sec && opts.nofollow:
			fsec = &record.FileSec{}
			err = app.shimHandler.Lstatx64NP(path, &buf, fsec)
		case opts.sec:
			fsec = &record.FileSec{}
			err = app.shimHandler.Statx64NP(path, &buf, fsec)
		case opts.nofollow:
			err = app.shimHandler.Lstat64(path, &buf)
		default:
			err = app.shimHandler.Stat64(path, &buf)
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))

			continue
		}

		renderWide(app.out, path, &buf, fsec, opts.fingerprint)
	}

	return errors.Join(errs...)
}

func (app *App) runFstat(args []string) error {
	var opts queryOptions

	flags := newQueryFlags("fstat", &opts, false)
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("%w: fstat needs at least one path", ErrUsage)
	}

	var errs []error

	for _, path := range flags.Args() {
		if err := app.fstatOne(path, opts); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}

	return errors.Join(errs...)
}

func (app *App) fstatOne(path string, opts queryOptions) error {
	f, err := app.osHandler.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer f.Close()

	var buf record.Wide
	var fsec *record.FileSec

	if opts.sec {
		fsec = &record.FileSec{}
		err = app.shimHandler.Fstatx64NP(int(f.Fd()), &buf, fsec)
	} else {
		err = app.shimHandler.Fstat64(int(f.Fd()), &buf)
	}
	if err != nil {
		return err
	}

	renderWide(app.out, path, &buf, fsec, opts.fingerprint)

	return nil
}

func (app *App) runAt(args []string) error {
	var nofollow, narrow bool
	var rawFlags string

	flags := pflag.NewFlagSet("at", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&nofollow, "nofollow", "L", false, "do not follow a final symbolic link")
	flags.BoolVarP(&narrow, "narrow", "n", false, "query the legacy narrow record")
	flags.StringVar(&rawFlags, "flags", "", "pass this raw flag value instead of deriving it")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if flags.NArg() != 2 { //nolint:mnd
		return fmt.Errorf("%w: at needs a directory and a path", ErrUsage)
	}

	flag := 0
	if nofollow {
		flag = shim.AtSymlinkNofollow
	}
	if rawFlags != "" {
		v, err := strconv.ParseInt(rawFlags, 0, 0)
		if err != nil {
			return fmt.Errorf("%w: invalid --flags: %w", ErrUsage, err)
		}
		flag = int(v)
	}

	dirName, path := flags.Arg(0), flags.Arg(1)

	dir, err := app.osHandler.Open(dirName)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer dir.Close()

	title := dirName + " :: " + path

	if narrow {
		var buf record.Narrow
		if err := app.shimHandler.Fstatat(int(dir.Fd()), path, &buf, flag); err != nil {
			return fmt.Errorf("%s: %w", title, err)
		}
		renderNarrow(app.out, title, &buf)

		return nil
	}

	var buf record.Wide
	if err := app.shimHandler.Fstatat64(int(dir.Fd()), path, &buf, flag); err != nil {
		return fmt.Errorf("%s: %w", title, err)
	}
	renderWide(app.out, title, &buf, nil, false)

	return nil
}

func (app *App) runSymbols() error {
	renderExports(app.out, app.settings.TargetRelease, app.shimHandler.Exports())

	return nil
}

func (app *App) runProfiles() error {
	renderProfiles(app.out, app.settings.TargetRelease)

	return nil
}
