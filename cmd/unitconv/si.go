package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/sambeau/unitconv/internal/aliases"
	"github.com/sambeau/unitconv/quantity"
)

func runSI(args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	flags := flag.NewFlagSet("si", flag.ContinueOnError)
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}
	rest := flags.Args()
	if len(rest) != 2 {
		return fmt.Errorf("si requires exactly 2 arguments: <magnitude> <units>")
	}

	magnitude, err := strconv.ParseFloat(rest[0], 64)
	if err != nil {
		return fmt.Errorf("invalid magnitude %q: %w", rest[0], err)
	}

	cfg, err := loadConfig(getenv)
	if err != nil {
		return err
	}

	aliasMap, err := aliases.Load(cfg.Catalog.ExtraUnitsFile)
	if err != nil {
		return err
	}

	q, err := quantity.New(magnitude, aliasMap.Resolve(rest[1]))
	if err != nil {
		return explain(err)
	}

	result := q.GetSI()
	printResult(stdout, result, q, cfg)
	return nil
}
