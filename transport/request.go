package transport

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/launchdarkly/http-test-client/client"
)

// newHTTPRequest builds the net/http request for req, sent to url. An empty method means GET,
// and query parameters are added to any that are already in url.
func newHTTPRequest(ctx context.Context, url string, req client.TransportRequest) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if req.Data != nil {
		body = strings.NewReader(*req.Data)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if len(req.Params) > 0 {
		q := httpReq.URL.Query()
		for k, vv := range req.Params {
			for _, v := range vv {
				q.Add(k, v)
			}
		}
		httpReq.URL.RawQuery = q.Encode()
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	return httpReq, nil
}

func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
