package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/sambeau/unitconv/internal/aliases"
	"github.com/sambeau/unitconv/internal/config"
	"github.com/sambeau/unitconv/internal/localefmt"
	"github.com/sambeau/unitconv/internal/qerrors"
	"github.com/sambeau/unitconv/quantity"
)

func runConvert(args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	flags := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags.SetOutput(stderr)
	legacy := flags.Bool("legacy", false, "echo the target unit string verbatim instead of the canonical form")
	if err := flags.Parse(args); err != nil {
		return err
	}
	rest := flags.Args()
	if len(rest) != 3 {
		return fmt.Errorf("convert requires exactly 3 arguments: <magnitude> <from-units> <to-units>")
	}

	magnitude, err := strconv.ParseFloat(rest[0], 64)
	if err != nil {
		return fmt.Errorf("invalid magnitude %q: %w", rest[0], err)
	}

	cfg, err := loadConfig(getenv)
	if err != nil {
		return err
	}
	if *legacy {
		cfg.Output.Legacy = true
	}

	aliasMap, err := aliases.Load(cfg.Catalog.ExtraUnitsFile)
	if err != nil {
		return err
	}
	from := aliasMap.Resolve(rest[1])
	to := aliasMap.Resolve(rest[2])

	q, err := quantity.New(magnitude, from)
	if err != nil {
		return explain(err)
	}

	var result quantity.Result
	if cfg.Output.Legacy {
		result, err = q.ConvertLegacy(to)
	} else {
		result, err = q.Convert(to)
	}
	if err != nil {
		return explain(err)
	}

	printResult(stdout, result, q, cfg)
	return nil
}

func printResult(w io.Writer, result quantity.Result, q *quantity.Quantity, cfg *config.Config) {
	rendered := localefmt.FormatPrecision(result.Magnitude, cfg.Output.Precision)
	if cfg.Output.Thousands {
		rendered = localefmt.Number(result.Magnitude, cfg.Output.Locale)
	}
	fmt.Fprintf(w, "%s %s\n", rendered, result.Units)

	if localefmt.IsInformation(q.Dimensions()) {
		binary := isBinaryPrefixed(result.Units)
		fmt.Fprintf(w, "(%s)\n", localefmt.Bytes(q.MagnitudeSI(), binary))
	}
}

func isBinaryPrefixed(units string) bool {
	for _, marker := range []string{"Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"} {
		if len(units) >= len(marker) && units[:len(marker)] == marker {
			return true
		}
	}
	return false
}

func explain(err error) error {
	if qe, ok := err.(*qerrors.Error); ok {
		return fmt.Errorf("%s", qe.Error())
	}
	return err
}
