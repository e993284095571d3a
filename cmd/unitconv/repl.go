package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/sambeau/unitconv/internal/aliases"
	"github.com/sambeau/unitconv/internal/config"
	"github.com/sambeau/unitconv/internal/replui"
)

// runREPL starts the interactive shell. --watch keeps a config.Watcher
// running for the session's lifetime so edits to unitconv.yaml take effect
// without restarting the REPL; each such reload also re-reads the
// extra-units alias file. Edits to the alias file alone are not watched.
func runREPL(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) error {
	flags := flag.NewFlagSet("repl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	watch := flags.Bool("watch", false, "reload config/alias changes while the REPL is running")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, path, err := config.LoadWithPath("", getenv, config.Overrides{})
	if err != nil {
		return err
	}
	aliasMap, err := aliases.Load(cfg.Catalog.ExtraUnitsFile)
	if err != nil {
		return err
	}

	opts := replui.Options{
		HistoryFile: cfg.REPL.HistoryFile,
		Prompt:      cfg.REPL.Prompt,
		Locale:      cfg.Output.Locale,
		Precision:   cfg.Output.Precision,
		Aliases:     aliasMap,
	}

	if *watch {
		if path == "" {
			return fmt.Errorf("--watch requires a config file; none was found (see UNITCONV_CONFIG)")
		}
		live := replui.NewLiveConfig(cfg.Output.Locale, cfg.Output.Precision, aliasMap)
		opts.Live = live

		w, err := config.NewWatcher(path, getenv, config.Overrides{}, stderr)
		if err != nil {
			return err
		}
		defer w.Close()
		w.OnReload(func(newCfg *config.Config) {
			newAliases, err := aliases.Load(newCfg.Catalog.ExtraUnitsFile)
			if err != nil {
				newAliases = aliasMap
			}
			live.Set(newCfg.Output.Locale, newCfg.Output.Precision, newAliases)
		})
		if err := w.Start(ctx); err != nil {
			return err
		}
	}

	replui.Start(stdin, stdout, opts)
	return nil
}
