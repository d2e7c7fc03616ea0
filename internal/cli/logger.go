// Package cli holds terminal helpers shared by the lifeplan commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	debugLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#6F6E69")).Render("DEBUG")
	infoLabel  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3AA99F")).Render("INFO ")
	warnLabel  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DA702C")).Render("WARN ")
	errorLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D14D41")).Render("ERROR")
)

// ConsoleLogger writes leveled, colored log lines to a terminal stream.
// Debug lines are dropped unless Debug is set. It satisfies
// calculation.Logger.
type ConsoleLogger struct {
	mu    sync.Mutex
	w     io.Writer
	Debug bool
}

// NewConsoleLogger logs to stderr.
func NewConsoleLogger(debug bool) *ConsoleLogger {
	return &ConsoleLogger{w: os.Stderr, Debug: debug}
}

// NewWriterLogger logs to w; used by tests and the server's log file.
func NewWriterLogger(w io.Writer, debug bool) *ConsoleLogger {
	return &ConsoleLogger{w: w, Debug: debug}
}

func (l *ConsoleLogger) Debugf(format string, args ...any) {
	if !l.Debug {
		return
	}
	l.printf(debugLabel, format, args...)
}

func (l *ConsoleLogger) Infof(format string, args ...any)  { l.printf(infoLabel, format, args...) }
func (l *ConsoleLogger) Warnf(format string, args ...any)  { l.printf(warnLabel, format, args...) }
func (l *ConsoleLogger) Errorf(format string, args ...any) { l.printf(errorLabel, format, args...) }

func (l *ConsoleLogger) printf(label, format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s\n", label, msg)
}
