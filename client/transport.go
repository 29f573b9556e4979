package client

import (
	"context"
	"net/url"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// TransportRequest is what the Client hands to a Transport. The Client has already applied the
// base URL, the default headers, method inference, and JSON serialization of the body.
type TransportRequest struct {
	URL     string
	Method  string
	Headers map[string]string

	// Data is the request body, already serialized; nil means there is no body.
	Data *string

	// Params are query parameters. They are passed through without inspection; nil means the
	// caller did not specify any.
	Params url.Values
}

// Transport performs the actual network call. Errors from a Transport (connection refused,
// timeouts, etc.) are returned to the caller unchanged.
type Transport interface {
	Request(ctx context.Context, req TransportRequest) (Response, error)
}

// TransportFunc is an adapter to allow the use of an ordinary function as a Transport.
type TransportFunc func(ctx context.Context, req TransportRequest) (Response, error)

func (f TransportFunc) Request(ctx context.Context, req TransportRequest) (Response, error) {
	return f(ctx, req)
}

// RequestOptions are the optional parts of a Client request.
type RequestOptions struct {
	// Method is the HTTP method. If empty, it is POST when Data is non-nil, otherwise GET.
	Method string

	// Headers are merged over the default Content-Type header; on a key collision, the value
	// here wins.
	Headers map[string]string

	// Data is the request body. A string, []byte, or json.RawMessage is sent verbatim as
	// pre-serialized text. Any other non-nil value, including an ldvalue.Value, is encoded
	// with json.Marshal.
	Data interface{}

	// Params are forwarded to the transport as query parameters.
	Params url.Values
}

// CleanupFunc tears down something that was created during a test session.
type CleanupFunc func(ctx context.Context) error

// Session is the subset of Client behavior that the resources layer is built on. It exists so
// that collections and items can be driven by a mock in tests.
type Session interface {
	Request(ctx context.Context, path string, opts RequestOptions) (ldvalue.Value, error)
	RawRequest(ctx context.Context, path string, opts RequestOptions) (Response, error)
	AddCleanup(path string, fn CleanupFunc)
	RemoveCleanup(path string)
}
