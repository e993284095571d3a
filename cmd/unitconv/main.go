package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/sambeau/unitconv/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run is the testable entry point (Mat Ryer pattern): subcommand dispatch
// happens by inspecting args[0] before any flag set is built.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) error {
	if len(args) == 0 {
		if stdinIsTerminal(stdin) {
			return runREPL(ctx, nil, stdin, stdout, stderr, getenv)
		}
		return runBatch(ctx, nil, stdin, stdout, stderr, getenv)
	}

	switch args[0] {
	case "convert":
		return runConvert(args[1:], stdout, stderr, getenv)
	case "si":
		return runSI(args[1:], stdout, stderr, getenv)
	case "catalog":
		return runCatalog(args[1:], stdout, stderr)
	case "age":
		return runAge(args[1:], stdout, stderr, getenv)
	case "batch":
		return runBatch(ctx, args[1:], stdin, stdout, stderr, getenv)
	case "repl":
		return runREPL(ctx, args[1:], stdin, stdout, stderr, getenv)
	case "-h", "--help", "help":
		printUsage(stdout)
		return nil
	case "-V", "--version", "version":
		fmt.Fprintf(stdout, "unitconv version %s\n", Version)
		return nil
	default:
		return fmt.Errorf("unknown command %q (try --help)", args[0])
	}
}

func loadConfig(getenv func(string) string) (*config.Config, error) {
	return config.Load("", getenv, config.Overrides{})
}

// stdinIsTerminal reports whether stdin is an interactive terminal rather
// than a pipe or redirected file. Only *os.File can be a terminal; stdin
// passed in tests (bytes.Buffer, strings.Reader) is always treated as
// non-interactive, matching how a piped batch input behaves.
func stdinIsTerminal(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `unitconv - physical-quantity conversion

Usage:
  unitconv convert <magnitude> <from-units> <to-units>
  unitconv si <magnitude> <units>
  unitconv catalog [--markdown|--html]
  unitconv age [--verbose] <date> <units>
  unitconv batch [--gzip] [file]
  unitconv repl [--watch]

Options:
  -h, --help       Show this help
  -V, --version    Show version

Examples:
  unitconv convert 100 degC degF
  unitconv si 36 km/h
  unitconv catalog --html > catalog.html
  unitconv age 2020-01-01 yr
  echo "100,degC,degF" | unitconv batch
`)
}
