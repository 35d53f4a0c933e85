package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
)

// Logger is a minimal printf-style logger used by the Payflow client.
//
// Plug in zap/logrus/etc by implementing it. Passwords never reach the logger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Level is the minimum severity StdLogger writes; LevelOff silences it.
// Request/response traces from the HTTP layer are emitted at LevelDebug.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelOff:
		return "off"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel maps a case-insensitive name such as "debug" or "WARN" to a Level.
// An empty string yields LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off", "none":
		return LevelOff, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// StdLogger writes "SEVERITY: tag: message" lines through a standard library *log.Logger.
type StdLogger struct {
	l     *stdlog.Logger
	level Level
	tag   string
}

// NewStdLogger logs to w (stderr when nil) with the "Payflow" tag.
func NewStdLogger(w io.Writer, level Level) *StdLogger {
	if w == nil {
		w = os.Stderr
	}
	return &StdLogger{
		l:     stdlog.New(w, "", stdlog.LstdFlags),
		level: level,
		tag:   "Payflow",
	}
}

// NewDefault is the client's logger when WithLogger is not given: stderr, info level.
func NewDefault() *StdLogger {
	return NewStdLogger(os.Stderr, LevelInfo)
}

func (s *StdLogger) SetLevel(level Level) {
	if s == nil {
		return
	}
	s.level = level
}

func (s *StdLogger) SetTag(tag string) {
	if s == nil {
		return
	}
	s.tag = tag
}

func (s *StdLogger) format(format string) string {
	if s == nil || s.tag == "" {
		return format
	}
	return s.tag + ": " + format
}

func (s *StdLogger) Debugf(format string, args ...any) {
	if s == nil || s.level > LevelDebug {
		return
	}
	s.l.Printf("DEBUG: "+s.format(format), args...)
}

func (s *StdLogger) Infof(format string, args ...any) {
	if s == nil || s.level > LevelInfo {
		return
	}
	s.l.Printf("INFO: "+s.format(format), args...)
}

func (s *StdLogger) Warnf(format string, args ...any) {
	if s == nil || s.level > LevelWarn {
		return
	}
	s.l.Printf("WARN: "+s.format(format), args...)
}

func (s *StdLogger) Errorf(format string, args ...any) {
	if s == nil || s.level > LevelError {
		return
	}
	s.l.Printf("ERROR: "+s.format(format), args...)
}

// NopLogger is installed by WithLogger(nil).
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
