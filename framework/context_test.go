package framework

import (
	"errors"
	"testing"

	"github.com/launchdarkly/http-test-client/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	events []string
	output map[string]logging.CapturedOutput
}

func (r *recordingTestLogger) TestStarted(id TestID) {
	r.events = append(r.events, "started "+id.String())
}

func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.events = append(r.events, "error "+id.String()+": "+err.Error())
}

func (r *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput logging.CapturedOutput) {
	status := "passed"
	if failed {
		status = "failed"
	}
	r.events = append(r.events, status+" "+id.String())
	if r.output == nil {
		r.output = make(map[string]logging.CapturedOutput)
	}
	r.output[id.String()] = debugOutput
}

func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, "skipped "+id.String()+": "+reason)
}

func TestRunPassingSubtests(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Run("b", func(c *Context) {
				c.Debug("hello %d", 1)
			})
		})
	})

	assert.True(t, results.OK())
	require.Len(t, results.Tests, 2)
	assert.Equal(t, "a/b", results.Tests[0].TestID.String())
	assert.Equal(t, "a", results.Tests[1].TestID.String())
	assert.Equal(t, []string{"started a", "started a/b", "passed a/b", "passed a"}, logger.events)
	assert.Equal(t, []string{"hello 1"}, logger.output["a/b"].Messages())
}

func TestRunFailureWithAssert(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("fails", func(c *Context) {
			assert.Equal(c, 1, 2)
			c.Debug("still running")
		})
		c.Run("passes", func(c *Context) {})
	})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "fails", results.Failures[0].TestID.String())
	assert.Len(t, results.Failures[0].Errors, 1)
	assert.Equal(t, []string{"still running"}, logger.output["fails"].Messages())
	assert.Contains(t, logger.events, "passed passes")
}

func TestRunFailNowStopsTest(t *testing.T) {
	reached := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("fails", func(c *Context) {
			require.True(c, false)
			reached = true
		})
	})

	assert.False(t, reached)
	require.Len(t, results.Failures, 1)
}

func TestRunFailNowWithoutMessage(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("fails", func(c *Context) {
			c.FailNow()
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Equal(t, "test failed with no failure message", results.Failures[0].Errors[0].Error())
}

func TestRunPanicIsReportedAsFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic(errors.New("boom"))
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: boom")
}

func TestParentFailsWhenChildFails(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("parent", func(c *Context) {
			c.Run("child", func(c *Context) {
				c.Errorf("bad")
			})
			assert.True(t, c.Failed())
		})
	})

	require.Len(t, results.Failures, 2)
	assert.Equal(t, "parent/child", results.Failures[0].TestID.String())
	assert.Equal(t, "parent", results.Failures[1].TestID.String())
}

func TestSkip(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not today")
			c.Errorf("unreachable")
		})
	})

	assert.True(t, results.OK())
	require.Len(t, results.Tests, 1)
	assert.True(t, results.Tests[0].Skipped)
	assert.Equal(t, []string{"started skipped", "skipped skipped: not today"}, logger.events)
}

func TestFilterExcludesTests(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("^b$"))

	ran := map[string]bool{}
	logger := &recordingTestLogger{}
	results := Run(filters.AsFilter, logger, func(c *Context) {
		c.Run("a", func(c *Context) { ran["a"] = true })
		c.Run("b", func(c *Context) { ran["b"] = true })
	})

	assert.Equal(t, map[string]bool{"a": true}, ran)
	assert.Len(t, results.Tests, 1)
	assert.Contains(t, logger.events, "skipped b: excluded by filter parameters")
}

func TestDeferredFunctionsRunInReverseOrder(t *testing.T) {
	var calls []string
	Run(nil, nil, func(c *Context) {
		c.Run("test", func(c *Context) {
			c.Defer(func() { calls = append(calls, "first") })
			c.Defer(func() { calls = append(calls, "second") })
			c.FailNow()
		})
	})

	assert.Equal(t, []string{"second", "first"}, calls)
}

func TestErrorfReformatsTestifyMessages(t *testing.T) {
	logger := &recordingTestLogger{}
	Run(nil, logger, func(c *Context) {
		c.Run("x", func(c *Context) {
			c.Errorf("\n\tError Trace:\tfile.go:1\n\tError:      \tbad\n")
		})
	})

	assert.Contains(t, logger.events, "error x: Error Trace:\tfile.go:1\nError:      \tbad\n")
}

func TestFailNowInDeferredFunction(t *testing.T) {
	ranSecond := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("test", func(c *Context) {
			c.Defer(func() { ranSecond = true })
			c.Defer(func() { require.Fail(c, "cleanup failed") })
		})
	})

	assert.True(t, ranSecond)
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "cleanup failed")
}
