// Package applog is unitconv's log writer: a small leveled writer over a
// configured output, rendering text or JSON lines.
package applog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sambeau/unitconv/internal/config"
)

var levelRank = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}

// Logger writes leveled log lines to a configured writer, text or JSON.
type Logger struct {
	output io.Writer
	format string // "json" or "text"
	level  int
	quiet  bool
	closer io.Closer
}

// entry is the shape of a single log line, in both text and JSON form.
type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// New builds a Logger from cfg, resolving "stderr"/"stdout"/a file path to
// a concrete writer. stdout and stderr are the CLI's own injected writers,
// not os.Stdout/os.Stderr directly, so tests can capture log output the
// same way they capture command output.
func New(cfg config.LoggingConfig, stdout, stderr io.Writer) (*Logger, error) {
	format := cfg.Format
	if format == "" {
		format = "text"
	}
	level, ok := levelRank[cfg.Level]
	if !ok {
		level = levelRank["info"]
	}

	var out io.Writer
	var closer io.Closer
	switch cfg.Output {
	case "", "stderr":
		out = stderr
	case "stdout":
		out = stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open logging.output %q: %w", cfg.Output, err)
		}
		out, closer = f, f
	}

	return &Logger{output: out, format: format, level: level, quiet: cfg.Quiet, closer: closer}, nil
}

// Close releases the file New opened for a logging.output path. It is a
// no-op when the output is stdout/stderr.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// Infof logs at info level. Quiet suppresses info (the batch run
// start/complete lines) while leaving warnings and errors visible.
func (l *Logger) Infof(format string, args ...any) {
	if l.quiet {
		return
	}
	l.write("info", format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.write("warn", format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.write("error", format, args...)
}

func (l *Logger) write(level, format string, args ...any) {
	if levelRank[level] < l.level {
		return
	}
	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Message:   fmt.Sprintf(format, args...),
	}
	if l.format == "json" {
		data, err := json.Marshal(e)
		if err != nil {
			return
		}
		fmt.Fprintf(l.output, "%s\n", data)
		return
	}
	fmt.Fprintf(l.output, "%s %s %s\n", e.Timestamp, e.Level, e.Message)
}
