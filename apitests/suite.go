package apitests

import (
	"context"

	"github.com/launchdarkly/http-test-client/client"
	"github.com/launchdarkly/http-test-client/framework"

	"github.com/stretchr/testify/assert"
)

type environment struct {
	ctx       context.Context
	transport client.Transport
	baseURL   string
}

// T is the test scope passed to every test in the suite. It can be used anywhere a testify
// TestingT is expected. Each test gets its own ExampleClient, whose requests go to the test's
// debug output and whose pending cleanups run when the test finishes.
type T struct {
	*framework.Context
	env *environment
	api *ExampleClient
}

// RunTestSuite runs every test in the suite. Requests are sent through transport, with baseURL
// prefixed to every path.
func RunTestSuite(
	ctx context.Context,
	transport client.Transport,
	baseURL string,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env := &environment{ctx: ctx, transport: transport, baseURL: baseURL}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{Context: c, env: env}

		t.Run("users", DoUserTests)
		t.Run("articles", DoArticleTests)
		t.Run("cleanup", DoCleanupTests)
	})
}

// Run runs a subtest with a fresh ExampleClient.
func (t *T) Run(name string, action func(*T)) {
	t.Context.Run(name, func(c *framework.Context) {
		api := NewExampleClient(client.New(t.env.transport, t.env.baseURL, c.DebugLogger()))
		c.Defer(func() {
			assert.NoError(c, api.Cleanup(t.env.ctx), "cleanup after test")
		})
		action(&T{Context: c, env: t.env, api: api})
	})
}

func (t *T) API() *ExampleClient {
	return t.api
}

func (t *T) Ctx() context.Context {
	return t.env.ctx
}
