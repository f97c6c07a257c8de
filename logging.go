package schemagen

import (
	"fmt"
	"io"
	"strings"
)

// Logger is the structured logger used by the generator.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}

// Field is a key-value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// F creates a new Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Warn(string, ...Field)  {}

// NewWriterLogger writes one line per entry to w. Debug lines are dropped
// unless verbose is set.
func NewWriterLogger(w io.Writer, verbose bool) Logger {
	return &writerLogger{w: w, verbose: verbose}
}

type writerLogger struct {
	w       io.Writer
	verbose bool
}

func (l *writerLogger) Info(msg string, fields ...Field)  { l.write("INFO", msg, fields) }
func (l *writerLogger) Error(msg string, fields ...Field) { l.write("ERROR", msg, fields) }
func (l *writerLogger) Warn(msg string, fields ...Field)  { l.write("WARN", msg, fields) }

func (l *writerLogger) Debug(msg string, fields ...Field) {
	if l.verbose {
		l.write("DEBUG", msg, fields)
	}
}

func (l *writerLogger) write(level, msg string, fields []Field) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level, msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(l.w, b.String())
}
