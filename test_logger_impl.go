package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/launchdarkly/http-test-client/framework"
	"github.com/launchdarkly/http-test-client/logging"

	"github.com/fatih/color"
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool

	failed  *color.Color
	skipped *color.Color
	header  *color.Color
}

func NewConsoleTestLogger(out io.Writer, noColor bool) *ConsoleTestLogger {
	c := &ConsoleTestLogger{
		Out:     out,
		failed:  color.New(color.FgRed, color.Bold),
		skipped: color.New(color.FgYellow),
		header:  color.New(color.FgCyan),
	}
	if noColor {
		c.failed.DisableColor()
		c.skipped.DisableColor()
		c.header.DisableColor()
	}
	return c
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	c.header.Fprintf(c.Out, "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput logging.CapturedOutput) {
	if failed {
		c.failed.Fprintf(c.Out, "  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		c.skipped.Fprintf(c.Out, "  SKIPPED: %s\n", id)
	} else {
		c.skipped.Fprintf(c.Out, "  SKIPPED: %s (%s)\n", id, reason)
	}
}
