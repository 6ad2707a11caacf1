// Package dlog wraps the standard logger with Debug methods that are
// compiled out unless the debug build tag is set.
package dlog

import (
	"io"
	"log"
	"os"
)

type Logger struct {
	*log.Logger
}

type LoggerOption struct {
	f func(*Logger)
}

func NewLogger(options ...LoggerOption) *Logger {
	logger := &Logger{log.New(os.Stderr, "", log.LstdFlags)}

	for _, option := range options {
		option.f(logger)
	}

	return logger
}

func LoggerSetOutput(w io.Writer) LoggerOption {
	return LoggerOption{func(l *Logger) {
		l.SetOutput(w)
	}}
}

func LoggerSetPrefix(prefix string) LoggerOption {
	return LoggerOption{func(l *Logger) {
		l.SetPrefix(prefix)
	}}
}

func LoggerSetFlags(flag int) LoggerOption {
	return LoggerOption{func(l *Logger) {
		l.SetFlags(flag)
	}}
}
