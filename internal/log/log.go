// Package log is the editor's minimal leveled logger. Ebiten owns the main
// loop and there is a single event-processing goroutine, so plain line
// output to a writer is all that is needed.
package log

import (
	"io"
	stdlog "log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a configuration string to a Level. Unknown strings fall
// back to info rather than failing startup.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE":
		return LevelNone
	default:
		return LevelInfo
	}
}

type Logger struct {
	out   *stdlog.Logger
	level Level
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{out: stdlog.New(out, "", 0), level: level}
}

func (l *Logger) Debugf(format string, v ...any) { l.printf(LevelDebug, format, v...) }
func (l *Logger) Infof(format string, v ...any)  { l.printf(LevelInfo, format, v...) }
func (l *Logger) Warnf(format string, v ...any)  { l.printf(LevelWarn, format, v...) }
func (l *Logger) Errorf(format string, v ...any) { l.printf(LevelError, format, v...) }

func (l *Logger) SetLevel(level Level) { l.level = level }
func (l *Logger) Level() Level         { return l.level }

func (l *Logger) printf(lv Level, format string, v ...any) {
	if l.level > lv {
		return
	}
	l.out.Printf(lv.String()+": "+format, v...)
}
