// Package stdlogger adapts the global zerolog logger to printf style logger interfaces,
// e.g. the gorm logger writer.
package stdlogger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger implements printf style logging on top of zerolog.
type Logger struct {
	component string
}

// New returns a Logger writing to the global zerolog logger.
func New() *Logger {
	return &Logger{}
}

// WithComponent returns a copy tagging every entry with a component field.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{component: name}
}

func (l *Logger) event(e *zerolog.Event) *zerolog.Event {
	if l.component != "" {
		e = e.Str("component", l.component)
	}

	return e
}

// Printf logs at info level, gorm filters by its own level before calling it.
func (l *Logger) Printf(format string, v ...interface{}) {
	l.event(log.Info()).Msgf(format, v...)
}
