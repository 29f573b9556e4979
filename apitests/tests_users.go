package apitests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoUserTests(t *T) {
	t.Run("list", func(t *T) {
		list, err := t.API().Users().List(t.Ctx(), nil)
		requireArray(t, list, err)
	})

	t.Run("create registers cleanup", func(t *T) {
		users := t.API().Users()
		created, err := users.Create(t.Ctx(), map[string]interface{}{"name": "Alice"}, nil)
		id := requireID(t, created, err)

		assert.Contains(t, t.API().PendingCleanups(), users.Item(id).URL())
	})

	t.Run("get created user", func(t *T) {
		users := t.API().Users()
		created, err := users.Create(t.Ctx(), map[string]interface{}{"name": "Alice"}, nil)
		id := requireID(t, created, err)

		user, err := users.Item(id).Get(t.Ctx(), nil)
		require.NoError(t, err)
		assert.Equal(t, id, user.GetByKey("id").StringValue())
	})

	t.Run("update", func(t *T) {
		users := t.API().Users()
		created, err := users.Create(t.Ctx(), map[string]interface{}{"name": "Alice"}, nil)
		id := requireID(t, created, err)

		user, err := users.Item(id).Update(t.Ctx(), map[string]interface{}{"name": "Bob"}, nil)
		require.NoError(t, err)
		assert.Equal(t, id, user.GetByKey("id").StringValue())
	})

	t.Run("delete removes cleanup", func(t *T) {
		users := t.API().Users()
		created, err := users.Create(t.Ctx(), map[string]interface{}{"name": "Alice"}, nil)
		item := users.Item(requireID(t, created, err))

		require.NoError(t, item.Delete(t.Ctx(), nil))
		assert.NotContains(t, t.API().PendingCleanups(), item.URL())
	})
}
