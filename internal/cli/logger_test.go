package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifeplan/planner/internal/calculation"
)

var _ calculation.Logger = (*ConsoleLogger)(nil)

func TestConsoleLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, false)

	l.Debugf("hidden %d", 1)
	l.Infof("scenario %q ready", "Base")
	l.Warnf("careful\n")
	l.Errorf("failed: %v", "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], `scenario "Base" ready`)
	assert.Contains(t, lines[1], "careful")
	assert.Contains(t, lines[2], "failed: boom")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestConsoleLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, true)
	l.Debugf("age %d: children %d -> %d", 30, 0, 1)
	assert.Contains(t, buf.String(), "age 30: children 0 -> 1")
	assert.Contains(t, buf.String(), "DEBUG")
}
