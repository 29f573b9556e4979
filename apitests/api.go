package apitests

import (
	"context"
	"net/http"

	"github.com/launchdarkly/http-test-client/client"
	"github.com/launchdarkly/http-test-client/resources"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

var (
	usersAttachment    = resources.AttachDefault("/users")
	articlesAttachment = resources.Attach[*ArticleResources]("/articles", NewArticleResources)
	commentsAttachment = resources.AttachDefault("/comments")
)

// ExampleClient is a client for the example API. Its cleanup registry is the embedded Client's.
type ExampleClient struct {
	*client.Client
}

func NewExampleClient(c *client.Client) *ExampleClient {
	return &ExampleClient{Client: c}
}

func (e *ExampleClient) Users() *resources.RestResources[*resources.Resource] {
	return usersAttachment.On(e)
}

func (e *ExampleClient) Articles() *ArticleResources {
	return articlesAttachment.On(e)
}

type ArticleResources struct {
	*resources.RestResources[*Article]
}

func NewArticleResources(session client.Session, url string) *ArticleResources {
	return &ArticleResources{resources.NewOf[*Article](session, url, NewArticle)}
}

// Search returns the articles whose properties equal those in criteria.
func (a *ArticleResources) Search(ctx context.Context, criteria map[string]interface{}) (ldvalue.Value, error) {
	return a.Session().Request(ctx, a.URL()+"/search", client.RequestOptions{
		Method: http.MethodPost,
		Data:   criteria,
	})
}

type Article struct {
	*resources.Resource
}

func NewArticle(session client.Session, url string) *Article {
	return &Article{resources.NewResource(session, url)}
}

// Publish marks the article as published and returns its new state.
func (a *Article) Publish(ctx context.Context) (ldvalue.Value, error) {
	return a.Session().Request(ctx, a.URL()+"/publish", client.RequestOptions{Method: http.MethodPost})
}

func (a *Article) Comments() *resources.RestResources[*resources.Resource] {
	return commentsAttachment.On(a)
}
