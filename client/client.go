package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/launchdarkly/http-test-client/logging"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const defaultContentType = "application/json"

// Client sends requests to the API under test through a Transport, and keeps track of cleanup
// callbacks for things that were created during the test session.
//
// A Client is normally created once per test session. Calling Cleanup at the end of the session
// tears down everything that was registered and not since deleted.
type Client struct {
	transport Transport
	baseURL   string
	logger    logging.Logger
	cleanups  cleanupRegistry
	lock      sync.Mutex
}

// New creates a Client. Every request path is appended to baseURL by plain concatenation, so
// baseURL can be empty, a path prefix such as "/api", or a full URL if the transport expects one.
// If logger is nil, nothing is logged.
func New(transport Transport, baseURL string, logger logging.Logger) *Client {
	return &Client{
		transport: transport,
		baseURL:   baseURL,
		logger:    logging.OrNull(logger),
	}
}

// BaseURL returns the prefix that is applied to every request path.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the path that attached top-level collections are relative to, which is always
// empty; the base URL is applied later, when the request is made.
func (c *Client) URL() string {
	return ""
}

// Session returns the Client itself as a Session.
func (c *Client) Session() Session {
	return c
}

// RawRequest sends a request and returns the response without interpreting its status code.
//
// If opts.Data is not already text, it is serialized to JSON. The default method is POST if
// there is a body, or GET otherwise. The Content-Type header defaults to application/json.
func (c *Client) RawRequest(ctx context.Context, path string, opts RequestOptions) (Response, error) {
	data, err := encodeData(opts.Data)
	if err != nil {
		return Response{}, fmt.Errorf("cannot serialize request body for %s: %w", path, err)
	}

	method := opts.Method
	if method == "" {
		if data != nil {
			method = http.MethodPost
		} else {
			method = http.MethodGet
		}
	}

	headers := map[string]string{"Content-Type": defaultContentType}
	for k, v := range opts.Headers {
		headers[k] = v
	}

	req := TransportRequest{
		URL:     c.baseURL + path,
		Method:  method,
		Headers: headers,
		Data:    data,
		Params:  opts.Params,
	}
	c.logger.Printf(">> %s %s", req.Method, logging.URLWithParams(req.URL, req.Params))
	resp, err := c.transport.Request(ctx, req)
	if err != nil {
		c.logger.Printf("<< %s %s failed: %s", req.Method, req.URL, err)
		return Response{}, err
	}
	c.logger.Printf("<< %d %s", resp.StatusCode, resp.Text)
	return resp, nil
}

// Request sends a request with the same semantics as RawRequest, and then interprets the
// response.
//
// For a 2xx status, the result is the JSON-decoded body, or a null value if the body is empty.
// A 404 status is not an error: the result is a null value. Any other status produces a
// *ClientError.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (ldvalue.Value, error) {
	resp, err := c.RawRequest(ctx, path, opts)
	if err != nil {
		return ldvalue.Null(), err
	}
	switch {
	case resp.IsSuccess():
		if resp.Text == "" {
			return ldvalue.Null(), nil
		}
		var value ldvalue.Value
		if err := json.Unmarshal([]byte(resp.Text), &value); err != nil {
			return ldvalue.Null(), fmt.Errorf("malformed JSON response from %s: %w", path, err)
		}
		return value, nil
	case resp.IsNotFound():
		return ldvalue.Null(), nil
	default:
		return ldvalue.Null(), NewClientError(resp.StatusCode, resp.Text)
	}
}

func encodeData(data interface{}) (*string, error) {
	var s string
	switch d := data.(type) {
	case nil:
		return nil, nil
	case string:
		s = d
	case []byte:
		s = string(d)
	case json.RawMessage:
		s = string(d)
	default:
		bytes, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		s = string(bytes)
	}
	return &s, nil
}
