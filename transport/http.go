package transport

import (
	"context"
	"io"
	"net/http"

	"github.com/launchdarkly/http-test-client/client"
	"github.com/launchdarkly/http-test-client/logging"
)

// HTTPTransport sends requests over the network with net/http.
type HTTPTransport struct {
	// BaseURL is prepended to the URL of every request, e.g. "http://localhost:8888/api".
	BaseURL string

	// HTTPClient is the client used for requests; if nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// Logger receives a curl command line for every request; if nil, nothing is logged.
	Logger logging.Logger
}

// NewHTTPTransport creates an HTTPTransport that uses http.DefaultClient.
func NewHTTPTransport(baseURL string) *HTTPTransport {
	return &HTTPTransport{BaseURL: baseURL}
}

// Request implements client.Transport. The body is sent exactly as given, and query parameters
// are added to any that are already in the URL.
func (t *HTTPTransport) Request(ctx context.Context, req client.TransportRequest) (client.Response, error) {
	httpReq, err := newHTTPRequest(ctx, t.BaseURL+req.URL, req)
	if err != nil {
		return client.Response{}, err
	}

	logging.OrNull(t.Logger).Printf("%s", logging.CurlCommand(httpReq.Method, httpReq.URL.String(), req.Headers, req.Data))

	httpClient := t.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return client.Response{}, err
	}
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return client.Response{}, err
	}
	return client.Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Text:       string(data),
	}, nil
}
