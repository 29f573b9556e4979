package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/launchdarkly/http-test-client/client"
)

// HandlerTransport serves every request in-process with an http.Handler, without any network
// activity. The request URL may be a bare path such as "/users".
type HandlerTransport struct {
	Handler http.Handler
}

func (t *HandlerTransport) Request(ctx context.Context, req client.TransportRequest) (client.Response, error) {
	httpReq, err := newHTTPRequest(ctx, req.URL, req)
	if err != nil {
		return client.Response{}, err
	}

	rec := httptest.NewRecorder()
	t.Handler.ServeHTTP(rec, httpReq)
	result := rec.Result()
	defer func() { _ = result.Body.Close() }()
	data, err := io.ReadAll(result.Body)
	if err != nil {
		return client.Response{}, err
	}
	return client.Response{
		StatusCode: result.StatusCode,
		Headers:    flattenHeaders(result.Header),
		Text:       string(data),
	}, nil
}
