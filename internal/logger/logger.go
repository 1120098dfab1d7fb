// Package logger provides a small leveled logger with key=value fields.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// ANSI colors per level.
var levelColors = [...]string{"\033[36m", "\033[32m", "\033[33m", "\033[31m"}

func (l Level) String() string {
	if l < DEBUG || l > ERROR {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel parses a level name, case-insensitively. The empty string is INFO.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "":
		return INFO, nil
	case "WARNING":
		return WARN, nil
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// TimeFormat is the layout of the timestamp starting every line.
const TimeFormat = "2006-01-02 15:04:05.000"

// Logger writes one line per message: timestamp, level, message and the
// fields sorted by key. Loggers derived with WithField share the parent's
// lock and output.
type Logger struct {
	mu     *sync.Mutex
	out    io.Writer
	level  Level
	color  bool
	fields []string // "key=value", sorted by key
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sets the output destination.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.out = w }
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(l *Logger) { l.level = level }
}

// WithColors enables or disables ANSI colored levels.
func WithColors(enabled bool) Option {
	return func(l *Logger) { l.color = enabled }
}

// New creates a Logger writing to stderr at INFO.
func New(opts ...Option) *Logger {
	l := &Logger{mu: &sync.Mutex{}, out: os.Stderr, level: INFO}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return New(WithOutput(io.Discard), WithLevel(ERROR+1))
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// SetDefault replaces the logger returned by Default.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Default returns the process-wide logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

// WithField returns a logger that appends key=value to every line. A key
// already present is replaced.
func (l *Logger) WithField(key string, value any) *Logger {
	c := *l
	c.fields = make([]string, 0, len(l.fields)+1)
	for _, f := range l.fields {
		if !strings.HasPrefix(f, key+"=") {
			c.fields = append(c.fields, f)
		}
	}
	c.fields = append(c.fields, fmt.Sprintf("%s=%v", key, value))
	sort.Strings(c.fields)
	return &c
}

func (l *Logger) write(level Level, msg string, args []any) {
	if !l.Enabled(level) {
		return
	}

	var sb strings.Builder
	sb.WriteString(time.Now().Format(TimeFormat))
	sb.WriteByte(' ')
	name := fmt.Sprintf("%-5s", level)
	if l.color {
		name = levelColors[level] + name + "\033[0m"
	}
	sb.WriteString(name)
	sb.WriteByte(' ')

	if len(args) > 0 {
		fmt.Fprintf(&sb, msg, args...)
	} else {
		sb.WriteString(msg)
	}
	for _, f := range l.fields {
		sb.WriteByte(' ')
		sb.WriteString(f)
	}
	sb.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, sb.String()) //nolint:errcheck // logging is best effort
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(msg string, args ...any) { l.write(DEBUG, msg, args) }

// Info logs a message at INFO level.
func (l *Logger) Info(msg string, args ...any) { l.write(INFO, msg, args) }

// Warn logs a message at WARN level.
func (l *Logger) Warn(msg string, args ...any) { l.write(WARN, msg, args) }

// Error logs a message at ERROR level.
func (l *Logger) Error(msg string, args ...any) { l.write(ERROR, msg, args) }
