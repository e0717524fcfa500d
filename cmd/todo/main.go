package main

import (
	"flag"
	"os"

	"github.com/idilsaglam/today/internal/cli"
	"github.com/idilsaglam/today/internal/config"
	"github.com/idilsaglam/today/internal/logging"
	"github.com/idilsaglam/today/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	file := flag.String("file", "", "data file (default ~/"+config.DataFileName+")")
	cfgPath := flag.String("config", "", "config file (default ~/.config/today/config.yaml)")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	noColor := flag.Bool("no-color", false, "disable colored output")
	verbose := flag.Bool("verbose", false, "debug logging on stderr")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	fallback := ui.NewPrinter(os.Stdout, os.Stderr, "classic", !*noColor)

	home, err := config.Home()
	if err != nil {
		fallback.Fail(err.Error())
		os.Exit(1)
	}
	path, explicit := *cfgPath, *cfgPath != ""
	if explicit {
		path = config.ExpandPath(path, home)
	} else {
		path = config.DefaultPath(home)
	}
	cfg, err := config.Load(path, home, explicit)
	if err == nil {
		err = cfg.Apply(config.Overrides{
			File:    *file,
			Theme:   *theme,
			NoColor: *noColor,
			Verbose: *verbose,
		}, home)
	}
	if err != nil {
		fallback.Fail(err.Error())
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fallback.Fail(err.Error())
		os.Exit(1)
	}
	logger.Debug("config resolved", "config", path, "file", cfg.File, "theme", cfg.Theme)

	// Hand the remaining args to the CLI runner.
	os.Exit(cli.Run(flag.Args(), cli.Options{
		File:    cfg.File,
		Printer: ui.NewPrinter(os.Stdout, os.Stderr, cfg.Theme, cfg.Color),
		Logger:  logger,
	}))
}
