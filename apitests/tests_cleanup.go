package apitests

import (
	"net/http"

	"github.com/launchdarkly/http-test-client/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoCleanupTests(t *T) {
	t.Run("everything created is deleted", func(t *T) {
		user, err := t.API().Users().Create(t.Ctx(), map[string]interface{}{"name": "Alice"}, nil)
		requireID(t, user, err)
		articles := t.API().Articles()
		article, err := articles.Create(t.Ctx(), map[string]interface{}{"title": "Hello"}, nil)
		id := requireID(t, article, err)
		comment, err := articles.Item(id).Comments().Create(t.Ctx(), map[string]interface{}{"text": "Hi"}, nil)
		requireID(t, comment, err)
		require.Len(t, t.API().PendingCleanups(), 3)

		require.NoError(t, t.API().Cleanup(t.Ctx()))
		assert.Empty(t, t.API().PendingCleanups())
	})

	t.Run("cleanup of an item already deleted succeeds", func(t *T) {
		users := t.API().Users()
		created, err := users.Create(t.Ctx(), map[string]interface{}{"name": "Alice"}, nil)
		url := users.Item(requireID(t, created, err)).URL()

		// bypass Delete, so the cleanup stays registered
		resp, err := t.API().RawRequest(t.Ctx(), url, client.RequestOptions{Method: http.MethodDelete})
		require.NoError(t, err)
		require.NoError(t, resp.CheckStatus(false))
		require.Contains(t, t.API().PendingCleanups(), url)

		assert.NoError(t, t.API().Cleanup(t.Ctx()))
	})
}
