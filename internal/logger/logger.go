// Package logger provides the leveled logger used by every ink-tools command.
//
// It wraps a standard log.Logger and prefixes each line with its level. Level
// prefixes are colored when the output is a terminal.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelDebug
	LevelTrace
)

// ParseLevel maps "info", "debug" or "trace" (case-insensitive) to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q (want info, debug or trace)", s)
}

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "info"
	}
}

type colorMode int

const (
	colorAuto colorMode = iota
	colorOn
	colorOff
)

type Logger struct {
	*log.Logger
	level  LogLevel
	mode   colorMode
	colors map[string]*color.Color
}

type Option func(*Logger)

func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.Logger = log.New(w, l.Logger.Prefix(), l.Logger.Flags())
	}
}

func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), prefix, l.Logger.Flags())
	}
}

func WithFlags(flags int) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), l.Logger.Prefix(), flags)
	}
}

func WithLevel(level LogLevel) Option {
	return func(l *Logger) {
		l.level = level
	}
}

// WithColor forces colored level prefixes on or off. Without it, color is
// enabled only when the output is a terminal.
func WithColor(enabled bool) Option {
	return func(l *Logger) {
		if enabled {
			l.mode = colorOn
		} else {
			l.mode = colorOff
		}
	}
}

// New creates a logger writing to stderr at LevelInfo.
func New(options ...Option) *Logger {
	l := &Logger{
		Logger: log.New(os.Stderr, "", log.LstdFlags),
		level:  LevelInfo,
	}

	for _, opt := range options {
		opt(l)
	}

	switch l.mode {
	case colorOn:
		l.colors = levelColors()
	case colorAuto:
		if f, ok := l.Logger.Writer().(*os.File); ok && isTerminal(f) {
			l.colors = levelColors()
		}
	}

	return l
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.printf("INFO", format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.printf("WARN", format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.printf("ERROR", format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LevelDebug {
		l.printf("DEBUG", format, args...)
	}
}

func (l *Logger) Trace(format string, args ...interface{}) {
	if l.level >= LevelTrace {
		l.printf("TRACE", format, args...)
	}
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.Logger.Fatalf(l.tag("FATAL")+format, args...)
}

func (l *Logger) printf(level, format string, args ...interface{}) {
	l.Logger.Printf(l.tag(level)+format, args...)
}

func (l *Logger) tag(level string) string {
	if c, ok := l.colors[level]; ok {
		return c.Sprint(level) + ": "
	}
	return level + ": "
}

func levelColors() map[string]*color.Color {
	colors := map[string]*color.Color{
		"INFO":  color.New(color.FgGreen),
		"WARN":  color.New(color.FgYellow),
		"ERROR": color.New(color.FgRed),
		"FATAL": color.New(color.FgRed, color.Bold),
		"DEBUG": color.New(color.FgCyan),
		"TRACE": color.New(color.FgMagenta),
	}
	// color.NoColor is decided from stdout; the log output is checked separately.
	for _, c := range colors {
		c.EnableColor()
	}
	return colors
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
