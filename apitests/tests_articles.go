package apitests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoArticleTests(t *T) {
	t.Run("search", func(t *T) {
		articles := t.API().Articles()
		created, err := articles.Create(t.Ctx(), map[string]interface{}{"title": "Hello"}, nil)
		requireID(t, created, err)

		found, err := articles.Search(t.Ctx(), map[string]interface{}{"title": "Hello"})
		requireArray(t, found, err)
		require.NotEqual(t, 0, found.Count())
		for i := 0; i < found.Count(); i++ {
			assert.Equal(t, "Hello", found.GetByIndex(i).GetByKey("title").StringValue())
		}
	})

	t.Run("publish", func(t *T) {
		articles := t.API().Articles()
		created, err := articles.Create(t.Ctx(), map[string]interface{}{"title": "Hello"}, nil)
		id := requireID(t, created, err)

		published, err := articles.Item(id).Publish(t.Ctx())
		require.NoError(t, err)
		assert.True(t, published.GetByKey("published").BoolValue())
	})

	t.Run("comments", func(t *T) {
		articles := t.API().Articles()
		created, err := articles.Create(t.Ctx(), map[string]interface{}{"title": "Hello"}, nil)
		id := requireID(t, created, err)
		comments := articles.Item(id).Comments()

		comment, err := comments.Create(t.Ctx(), map[string]interface{}{"text": "First!"}, nil)
		commentID := requireID(t, comment, err)
		assert.Equal(t, articles.URL()+"/"+id+"/comments/"+commentID, comments.Item(commentID).URL())
		assert.Contains(t, t.API().PendingCleanups(), comments.Item(commentID).URL())

		list, err := comments.List(t.Ctx(), nil)
		requireArray(t, list, err)
		assert.NotEqual(t, 0, list.Count())
	})
}
