package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"

	"github.com/sambeau/unitconv/internal/aliases"
	"github.com/sambeau/unitconv/internal/applog"
	"github.com/sambeau/unitconv/internal/qerrors"
	"github.com/sambeau/unitconv/quantity"
)

// batchRow is one line of a JSON-lines batch report.
type batchRow struct {
	RunID     string  `json:"run_id"`
	Line      int     `json:"line"`
	Magnitude float64 `json:"magnitude"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Result    float64 `json:"result,omitempty"`
	Units     string  `json:"units,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// runBatch reads "magnitude,from,to" triples (one per line) from a file
// argument or stdin, converts each, and emits a JSON-lines report. With
// --gzip the report is compressed through klauspost/compress/gzip instead
// of stdlib compress/gzip.
func runBatch(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) error {
	flags := flag.NewFlagSet("batch", flag.ContinueOnError)
	flags.SetOutput(stderr)
	useGzip := flags.Bool("gzip", false, "gzip-compress the JSON-lines report")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var in io.Reader = stdin
	if rest := flags.Args(); len(rest) == 1 {
		f, err := os.Open(rest[0])
		if err != nil {
			return fmt.Errorf("open batch file: %w", err)
		}
		defer f.Close()
		in = f
	}

	cfg, err := loadConfig(getenv)
	if err != nil {
		return err
	}
	aliasMap, err := aliases.Load(cfg.Catalog.ExtraUnitsFile)
	if err != nil {
		return err
	}

	logger, err := applog.New(cfg.Logging, stdout, stderr)
	if err != nil {
		return err
	}
	defer logger.Close()

	runID := uuid.New().String()
	logger.Infof("batch run %s starting", runID)

	var out io.Writer = stdout
	var gz *gzip.Writer
	if *useGzip {
		gz = gzip.NewWriter(stdout)
		defer gz.Close()
		out = gz
	}

	enc := json.NewEncoder(out)
	scanner := bufio.NewScanner(in)
	lineNum := 0
	errCount := 0

	for scanner.Scan() {
		lineNum++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		row, err := processBatchLine(runID, lineNum, scanner.Text(), aliasMap)
		if row == nil {
			continue // blank line
		}
		if err != nil {
			errCount++
		}
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("encode batch row: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read batch input: %w", err)
	}

	logger.Infof("batch run %s complete: %d lines, %d errors", runID, lineNum, errCount)
	return nil
}

func processBatchLine(runID string, lineNum int, line string, aliasMap aliases.Map) (*batchRow, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	fields := strings.SplitN(line, ",", 3)
	row := &batchRow{RunID: runID, Line: lineNum}
	if len(fields) != 3 {
		row.Error = fmt.Sprintf("expected 3 comma-separated fields, got %d", len(fields))
		return row, errors.New(row.Error)
	}

	magnitude, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		row.Error = fmt.Sprintf("invalid magnitude %q", fields[0])
		return row, err
	}
	row.Magnitude = magnitude
	row.From = aliasMap.Resolve(strings.TrimSpace(fields[1]))
	row.To = aliasMap.Resolve(strings.TrimSpace(fields[2]))

	q, err := quantity.New(magnitude, row.From)
	if err != nil {
		row.Error = batchErrString(err)
		return row, err
	}
	result, err := q.Convert(row.To)
	if err != nil {
		row.Error = batchErrString(err)
		return row, err
	}

	row.Result = result.Magnitude
	row.Units = result.Units
	return row, nil
}

func batchErrString(err error) string {
	if qe, ok := err.(*qerrors.Error); ok {
		return string(qe.Kind)
	}
	return err.Error()
}
