// +build !debug

package dlog

// Debug statements compile to nothing in release builds.
func (l *Logger) Debug(v ...interface{}) {}

func (l *Logger) Debugf(format string, v ...interface{}) {}

func (l *Logger) Debugln(v ...interface{}) {}
