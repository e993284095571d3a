// Package replui is unitconv's interactive shell: a liner-backed
// line-editing loop with history and tab completion over unit symbols.
package replui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/peterh/liner"

	"github.com/sambeau/unitconv/internal/aliases"
	"github.com/sambeau/unitconv/internal/catalogdoc"
	"github.com/sambeau/unitconv/internal/localefmt"
	"github.com/sambeau/unitconv/internal/qerrors"
	"github.com/sambeau/unitconv/internal/unittab"
	"github.com/sambeau/unitconv/quantity"
)

const (
	defaultPrompt = ">> "
	logo          = "█░█ █▄░█ █ ▀█▀ █▀▀ █▀█ █▄░█ █░█\n█▄█ █░▀█ █ ░█░ █▄▄ █▄█ █░▀█ ▀▄▀"
)

// completionWords lists every static unit symbol plus the shell's own
// keywords, for tab completion.
func completionWords() []string {
	words := []string{"to", "exit", "quit", ":help", ":catalog", ":locale"}
	for sym := range unittab.Table {
		words = append(words, sym)
	}
	sort.Strings(words)
	return words
}

// Options configures a Start session.
type Options struct {
	HistoryFile string
	Prompt      string // defaults to ">> " when empty
	Locale      string
	Precision   int
	Aliases     aliases.Map

	// Live, when set, is consulted before every prompt so a config/alias
	// hot-reload (driven by a config.Watcher, see cmd/unitconv's --watch
	// flag) takes effect on a running REPL session without a restart.
	Live *LiveConfig
}

// LiveConfig is a hot-swappable snapshot of the REPL settings a
// config.Watcher can update while a session is running.
type LiveConfig struct {
	mu        sync.RWMutex
	locale    string
	precision int
	aliases   aliases.Map
}

// NewLiveConfig seeds a LiveConfig with a session's starting settings.
func NewLiveConfig(locale string, precision int, aliasMap aliases.Map) *LiveConfig {
	return &LiveConfig{locale: locale, precision: precision, aliases: aliasMap}
}

// Set replaces the live settings, typically from a config.Watcher's reload
// callback.
func (l *LiveConfig) Set(locale string, precision int, aliasMap aliases.Map) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.locale, l.precision, l.aliases = locale, precision, aliasMap
}

func (l *LiveConfig) snapshot() (string, int, aliases.Map) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.locale, l.precision, l.aliases
}

// Start runs the REPL loop, writing to out, until the user exits or input
// reaches EOF. Lines are read by liner from the process's terminal; in is
// not read from.
func Start(in io.Reader, out io.Writer, opts Options) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	words := completionWords()
	line.SetCompleter(func(partial string) []string {
		return filterCompletions(partial, words)
	})

	if opts.HistoryFile != "" {
		if f, err := os.Open(opts.HistoryFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if opts.HistoryFile == "" {
			return
		}
		if f, err := os.Create(opts.HistoryFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	locale := opts.Locale
	if locale == "" {
		locale = "en-US"
	}
	precision := opts.Precision
	aliasMap := opts.Aliases
	prompt := opts.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}

	fmt.Fprintln(out, logo)
	fmt.Fprintln(out, "Type a conversion like \"36 km/h to m/s\", or just \"36 km/h\" for its canonical SI form.")
	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit, ':help' for more commands.")
	fmt.Fprintln(out, "")

	for {
		if opts.Live != nil {
			locale, precision, aliasMap = opts.Live.snapshot()
		}

		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(out, "^C")
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		line.AppendHistory(trimmed)

		if trimmed == "exit" || trimmed == "quit" {
			fmt.Fprintln(out, "Goodbye!")
			return
		}

		if strings.HasPrefix(trimmed, ":") {
			locale, precision = handleCommand(trimmed, out, locale, precision)
			continue
		}

		evalLine(trimmed, out, locale, precision, aliasMap)
	}
}

func handleCommand(cmd string, out io.Writer, locale string, precision int) (string, int) {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":help", ":h", ":?":
		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  <magnitude> <units>              show the canonical SI form")
		fmt.Fprintln(out, "  <magnitude> <units> to <units>   convert between compatible units")
		fmt.Fprintln(out, "  :catalog                         list every known unit")
		fmt.Fprintln(out, "  :locale <tag>                    set the number-formatting locale")
		fmt.Fprintln(out, "  exit, quit                       leave the REPL")
	case ":catalog":
		fmt.Fprintln(out, catalogdoc.Markdown())
	case ":locale":
		if len(fields) < 2 {
			fmt.Fprintf(out, "current locale: %s\n", locale)
			return locale, precision
		}
		locale = fields[1]
		fmt.Fprintf(out, "locale set to %s\n", locale)
	default:
		fmt.Fprintf(out, "unknown command: %s (type :help)\n", fields[0])
	}
	return locale, precision
}

// evalLine parses "<magnitude> <units>" or "<magnitude> <units> to <units>"
// and prints the result, or a one-line error.
func evalLine(input string, out io.Writer, locale string, precision int, aliasMap aliases.Map) {
	magnitude, rest, err := splitMagnitude(input)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}

	fromUnits, toUnits, hasTarget := splitOnTo(rest)
	fromUnits = aliasMap.Resolve(fromUnits)
	toUnits = aliasMap.Resolve(toUnits)

	q, err := quantity.New(magnitude, fromUnits)
	if err != nil {
		printErr(out, err)
		return
	}

	var result quantity.Result
	if hasTarget {
		result, err = q.Convert(toUnits)
	} else {
		result = q.GetSI()
	}
	if err != nil {
		printErr(out, err)
		return
	}

	rendered := localefmt.NumberPrecision(result.Magnitude, locale, precision)
	fmt.Fprintf(out, "= %s %s\n", rendered, result.Units)
}

func splitMagnitude(input string) (float64, string, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return 0, "", fmt.Errorf("empty input")
	}
	m, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, "", fmt.Errorf("expected a number, got %q", fields[0])
	}
	return m, strings.TrimSpace(strings.TrimPrefix(input, fields[0])), nil
}

func splitOnTo(rest string) (from, to string, hasTarget bool) {
	fields := strings.Fields(rest)
	for i, f := range fields {
		if f == "to" {
			return strings.Join(fields[:i], " "), strings.Join(fields[i+1:], " "), true
		}
	}
	return rest, "", false
}

func printErr(out io.Writer, err error) {
	if qe, ok := err.(*qerrors.Error); ok {
		fmt.Fprintf(out, "error: %s\n", qe.Error())
		return
	}
	fmt.Fprintf(out, "error: %v\n", err)
}

func filterCompletions(partial string, words []string) []string {
	trimmed := strings.TrimSpace(partial)
	if trimmed == "" {
		return nil
	}
	if strings.HasSuffix(partial, " ") {
		return nil
	}
	fields := strings.Fields(partial)
	last := fields[len(fields)-1]

	var matches []string
	for _, w := range words {
		if strings.HasPrefix(w, last) {
			matches = append(matches, w)
		}
	}
	return matches
}
