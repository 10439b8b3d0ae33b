// Package logger provides the leveled, colored loggers shared by the application components.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
)

var _ i.Logger = &Logger{}

// Logger writes "[NAME] [LEVEL] message" lines, with the name in the component color.
type Logger struct {
	logger *log.Logger
}

// New creates a Logger for the named component.
func New(name string, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	prefix := fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset)
	return &Logger{
		logger: log.New(w, prefix, log.LstdFlags|log.Lmsgprefix),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(message string) {
	l.write(config.LogInfoColor, "INFO", message)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(message string) {
	l.write(config.LogWarningColor, "WARN", message)
}

// Error logs a failure.
func (l *Logger) Error(message string) {
	l.write(config.LogErrorColor, "ERROR", message)
}

func (l *Logger) write(color, level, message string) {
	l.logger.Printf("%s[%s]%s %s", color, level, config.LogColorReset, message)
}
