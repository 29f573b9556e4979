package resources

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/launchdarkly/http-test-client/client"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ItemFactory constructs the item type of a collection for a fully qualified item URL.
type ItemFactory[T any] func(session client.Session, url string) T

// RestResources is a collection of items at a URL. T is the item type returned by Item; for
// plain collections it is *Resource.
type RestResources[T any] struct {
	session client.Session
	url     string
	item    ItemFactory[T]
}

// New creates a collection whose items are plain *Resource values.
func New(session client.Session, url string) *RestResources[*Resource] {
	return NewOf[*Resource](session, url, NewResource)
}

// NewOf creates a collection whose items are built by the specified factory.
func NewOf[T any](session client.Session, url string, item ItemFactory[T]) *RestResources[T] {
	return &RestResources[T]{session: session, url: url, item: item}
}

func (r *RestResources[T]) Session() client.Session {
	return r.session
}

func (r *RestResources[T]) URL() string {
	return r.url
}

// Item returns the item with the specified ID. It does not make any request.
func (r *RestResources[T]) Item(id string) T {
	return r.item(r.session, r.url+"/"+id)
}

// List fetches the collection. params, if not nil, are sent as query parameters.
func (r *RestResources[T]) List(ctx context.Context, params url.Values) (ldvalue.Value, error) {
	return r.session.Request(ctx, r.url, client.RequestOptions{Method: http.MethodGet, Params: params})
}

// Create posts a new item to the collection and returns the decoded response. If the response
// is an object with an "id" property, a cleanup callback that deletes the new item is registered
// with the session.
func (r *RestResources[T]) Create(ctx context.Context, data interface{}, params url.Values) (ldvalue.Value, error) {
	result, err := r.session.Request(ctx, r.url, client.RequestOptions{
		Method: http.MethodPost,
		Data:   data,
		Params: params,
	})
	if err != nil {
		return result, err
	}
	if id, ok := itemID(result); ok {
		itemURL := r.url + "/" + id
		session := r.session
		session.AddCleanup(itemURL, func(ctx context.Context) error {
			return NewResource(session, itemURL).Delete(ctx, nil)
		})
	}
	return result, nil
}

func itemID(result ldvalue.Value) (string, bool) {
	if result.Type() != ldvalue.ObjectType {
		return "", false
	}
	id := result.GetByKey("id")
	switch id.Type() {
	case ldvalue.NullType:
		return "", false
	case ldvalue.StringType:
		return id.StringValue(), true
	case ldvalue.NumberType:
		return strconv.FormatFloat(id.Float64Value(), 'f', -1, 64), true
	default:
		return id.JSONString(), true
	}
}
