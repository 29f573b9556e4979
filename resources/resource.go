package resources

import (
	"context"
	"net/http"
	"net/url"

	"github.com/launchdarkly/http-test-client/client"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Resource is a single item at a fully qualified URL, such as "/users/1".
type Resource struct {
	session client.Session
	url     string
}

// NewResource creates a Resource. It is also the default ItemFactory.
func NewResource(session client.Session, url string) *Resource {
	return &Resource{session: session, url: url}
}

func (r *Resource) Session() client.Session {
	return r.session
}

func (r *Resource) URL() string {
	return r.url
}

// Get fetches the item. The result is a null value if the item does not exist.
func (r *Resource) Get(ctx context.Context, params url.Values) (ldvalue.Value, error) {
	result, err := r.session.Request(ctx, r.url, client.RequestOptions{Method: http.MethodGet, Params: params})
	if client.StatusCode(err) == http.StatusNotFound {
		return ldvalue.Null(), nil
	}
	return result, err
}

// Update replaces the item with a PUT request.
func (r *Resource) Update(ctx context.Context, data interface{}, params url.Values) (ldvalue.Value, error) {
	return r.session.Request(ctx, r.url, client.RequestOptions{
		Method: http.MethodPut,
		Data:   data,
		Params: params,
	})
}

// Delete deletes the item. Any cleanup registered for this URL is removed first, whatever the
// outcome of the request. A 404 response counts as success, since the item is already gone.
func (r *Resource) Delete(ctx context.Context, params url.Values) error {
	r.session.RemoveCleanup(r.url)
	resp, err := r.session.RawRequest(ctx, r.url, client.RequestOptions{Method: http.MethodDelete, Params: params})
	if err != nil {
		return err
	}
	return resp.CheckStatus(true)
}
