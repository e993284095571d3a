package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestRunVersion(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"--version"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "unitconv version") {
		t.Errorf("expected version output, got %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"--help"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "unitconv - physical-quantity conversion") {
		t.Errorf("expected help output, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "convert") {
		t.Errorf("expected 'convert' in help, got %q", stdout.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"bogus"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })
	if err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestRunConvert(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"convert", "100", "degC", "degF"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "212") {
		t.Errorf("expected 212 in output, got %q", stdout.String())
	}
}

func TestRunConvertInvalidArgCount(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"convert", "100", "degC"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })
	if err == nil {
		t.Error("expected error for wrong argument count")
	}
}

func TestRunConvertUnknownUnit(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"convert", "1", "flibbertigibbet", "m"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })
	if err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestRunSI(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"si", "36", "km/h"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "10") || !strings.Contains(stdout.String(), "m/s") {
		t.Errorf("expected 10 m/s in output, got %q", stdout.String())
	}
}

func TestRunCatalog(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"catalog"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "unitconv catalogue") {
		t.Errorf("expected catalogue heading, got %q", stdout.String())
	}
}

func TestRunCatalogHTML(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"catalog", "--html"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "<table>") {
		t.Errorf("expected an HTML table, got %q", stdout.String())
	}
}

func TestRunAge(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"age", "2000-01-01", "yr"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "yr") {
		t.Errorf("expected years in output, got %q", stdout.String())
	}
}

func TestRunAgeInvalidDate(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"age", "not-a-date", "yr"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })
	if err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestRunBatch(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	input := strings.NewReader("100,degC,degF\n1,GiB,B\n1,flibbertigibbet,m\nbad line\n")

	err := run(context.Background(), []string{"batch"}, input, stdout, stderr, func(s string) string { return "" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []batchRow
	scanner := bufio.NewScanner(strings.NewReader(stdout.String()))
	for scanner.Scan() {
		var row batchRow
		if err := json.Unmarshal(scanner.Bytes(), &row); err != nil {
			t.Fatalf("decode batch row %q: %v", scanner.Text(), err)
		}
		rows = append(rows, row)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 batch rows, got %d", len(rows))
	}
	if rows[0].Error != "" || math.Abs(rows[0].Result-212) > 1e-9 {
		t.Errorf("expected degC->degF result near 212, got %+v", rows[0])
	}
	if rows[2].Error != "UnknownUnit" {
		t.Errorf("expected bare error kind %q for unknown unit, got %+v", "UnknownUnit", rows[2])
	}
	if rows[3].Error == "" {
		t.Errorf("expected an error row for the malformed line, got %+v", rows[3])
	}
}

func TestRunNoSubcommandWithPipedStdinUsesBatchMode(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	input := strings.NewReader("1,m,km\n")

	err := run(context.Background(), nil, input, stdout, stderr, func(s string) string { return "" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var row batchRow
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &row); err != nil {
		t.Fatalf("expected a batch JSON row, got %q: %v", stdout.String(), err)
	}
	if row.Error != "" {
		t.Errorf("expected no error, got %+v", row)
	}
}

func TestStdinIsTerminalFalseForNonFile(t *testing.T) {
	if stdinIsTerminal(strings.NewReader("")) {
		t.Error("a non-*os.File reader should never be reported as a terminal")
	}
}

// TestRunReplWatchRequiresConfigFile exercises the --watch flag's
// config-resolution guard without ever reaching replui.Start, which binds
// to the real terminal via liner and would block in a test process.
func TestRunReplWatchRequiresConfigFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"repl", "--watch"}, strings.NewReader(""), stdout, stderr, func(s string) string { return "" })
	if err == nil {
		t.Fatal("expected --watch to fail with no resolvable config file")
	}
}

func TestRunBatchGzip(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	input := strings.NewReader("1,m,km\n")

	err := run(context.Background(), []string{"batch", "--gzip"}, input, stdout, stderr, func(s string) string { return "" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// gzip magic bytes
	if stdout.Len() < 2 || stdout.Bytes()[0] != 0x1f || stdout.Bytes()[1] != 0x8b {
		t.Error("expected gzip-magic-prefixed output")
	}
}
