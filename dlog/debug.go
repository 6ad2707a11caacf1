// +build debug

package dlog

import "fmt"

func (l *Logger) Debug(v ...interface{}) {
	l.Output(2, fmt.Sprint(v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Debugln(v ...interface{}) {
	l.Output(2, fmt.Sprintln(v...))
}
