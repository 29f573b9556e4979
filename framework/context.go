package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/launchdarkly/http-test-client/logging"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents a test or subtest. It implements the same basic functionality as Go's
// testing.T, but outside of the Go test runner, so that a suite of API tests can be run from a
// command line against a live service. It satisfies require.TestingT, so it can be passed to
// the assert and require packages.
type Context struct {
	env         *environment
	id          TestID
	debugLogger logging.CapturingLogger
	deferred    []func()
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run runs the top-level test action and returns the results of it and all of its subtests.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.execute(action)
	return env.results
}

// execute runs action, converting a FailNow, a Skip, or an unexpected panic into this test's
// result, and then runs the deferred functions.
func (c *Context) execute(action func(*Context)) {
	defer c.finish()
	defer func() {
		if r := recover(); r != nil {
			c.recovered(r)
		}
	}()
	action(c)
}

func (c *Context) recovered(r interface{}) {
	if c.skipped {
		return
	}
	c.failed = true
	if _, ok := r.(*Context); ok {
		if len(c.errors) == 0 {
			c.addError(errors.New("test failed with no failure message"))
		}
		return
	}
	c.addError(fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack())))
}

func (c *Context) finish() {
	for i := len(c.deferred) - 1; i >= 0; i-- {
		c.runDeferred(c.deferred[i])
	}
	if c.id.Path == nil {
		return
	}
	result := TestResult{TestID: c.id, Errors: c.errors, Skipped: c.skipped}
	c.env.results.Tests = append(c.env.results.Tests, result)
	if c.failed {
		c.env.results.Failures = append(c.env.results.Failures, result)
	}
}

func (c *Context) runDeferred(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.recovered(r)
		}
	}()
	fn()
}

func (c *Context) addError(err error) {
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest, unless the filter excludes it.
func (c *Context) Run(name string, action func(*Context)) {
	sub := &Context{
		env: c.env,
		id:  TestID{Path: append(append([]string(nil), c.id.Path...), name)},
	}
	logger := c.env.testLogger
	logger.TestStarted(sub.id)
	if c.env.filter != nil && !c.env.filter(sub.id) {
		logger.TestSkipped(sub.id, "excluded by filter parameters")
		return
	}

	sub.execute(action)

	switch {
	case sub.skipped:
		logger.TestSkipped(sub.id, sub.skipReason)
	default:
		c.failed = c.failed || sub.failed
		logger.TestFinished(sub.id, sub.failed, sub.debugLogger.Output())
	}
}

// Defer schedules a function to run when the test finishes, whether or not it failed. Deferred
// functions run in reverse order, after any subtests have finished.
func (c *Context) Defer(fn func()) {
	c.deferred = append(c.deferred, fn)
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	c.addError(reformatError(fmt.Errorf(format, args...)))
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() logging.Logger {
	return &c.debugLogger
}

// reformatError strips the leading blank line and indentation that testify puts in its
// failure messages, which are meant for the Go test runner's output format.
func reformatError(err error) error {
	lines := strings.Split(strings.TrimLeft(err.Error(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "\t")
	}
	return errors.New(strings.Join(lines, "\n"))
}
