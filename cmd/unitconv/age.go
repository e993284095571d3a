package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/araddon/dateparse"

	"github.com/sambeau/unitconv/internal/aliases"
	"github.com/sambeau/unitconv/internal/localefmt"
	"github.com/sambeau/unitconv/quantity"
)

// runAge parses a flexible date string, measures the elapsed duration
// against now, and reports it as a Quantity converted to the requested
// time unit. Grounded in pkg/parsley/evaluator/eval_datetime.go's use of
// dateparse.ParseAny for free-form date input.
func runAge(args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	flags := flag.NewFlagSet("age", flag.ContinueOnError)
	flags.SetOutput(stderr)
	verbose := flags.Bool("verbose", false, "also print the parsed date in locale-aware long form")
	if err := flags.Parse(args); err != nil {
		return err
	}
	rest := flags.Args()
	if len(rest) != 2 {
		return fmt.Errorf("age requires exactly 2 arguments: <date> <units>")
	}

	when, err := dateparse.ParseAny(rest[0])
	if err != nil {
		return fmt.Errorf("cannot parse date %q: %w", rest[0], err)
	}

	cfg, err := loadConfig(getenv)
	if err != nil {
		return err
	}

	elapsedSeconds := time.Since(when).Seconds()
	q, err := quantity.New(elapsedSeconds, "s")
	if err != nil {
		return explain(err)
	}

	aliasMap, err := aliases.Load(cfg.Catalog.ExtraUnitsFile)
	if err != nil {
		return err
	}
	result, err := q.Convert(aliasMap.Resolve(rest[1]))
	if err != nil {
		return explain(err)
	}

	printResult(stdout, result, q, cfg)
	if *verbose {
		fmt.Fprintf(stdout, "since %s\n", localefmt.Date(when, cfg.Output.Locale))
	}
	return nil
}
