package logging

import (
	"io"
	"os"
	"sync"

	"github.com/pion/logging"
)

var (
	mu            sync.Mutex
	loggerFactory = newLoggerFactory(os.Stderr)
)

func newLoggerFactory(w io.Writer) *logging.DefaultLoggerFactory {
	f := logging.NewDefaultLoggerFactory()
	f.Writer = w
	return f
}

// NewLogger returns a leveled logger for scope. Loggers keep the level and
// writer that were configured when they were created.
func NewLogger(scope string) logging.LeveledLogger {
	mu.Lock()
	defer mu.Unlock()
	return loggerFactory.NewLogger(scope)
}

// SetLevel changes the default level of loggers created afterwards. Scope
// levels set through PION_LOG_* still win.
func SetLevel(level logging.LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	loggerFactory.DefaultLogLevel = level
}

// SetWriter redirects loggers created afterwards to w.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	loggerFactory.Writer = w
}
