package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Response is the raw result of a transport call.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Text       string
}

// IsSuccess returns true if the status code is 2xx.
func (r Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsNotFound returns true if the status code is 404.
func (r Response) IsNotFound() bool {
	return r.StatusCode == http.StatusNotFound
}

// ClientError is returned when the status code of a response is not one that the calling
// operation accepts as success.
type ClientError struct {
	StatusCode int
	Body       string
}

func NewClientError(statusCode int, body string) *ClientError {
	return &ClientError{StatusCode: statusCode, Body: body}
}

func (e *ClientError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected HTTP status %d: %s", e.StatusCode, e.Body)
}

// IsClientError reports whether err is, or wraps, a *ClientError.
func IsClientError(err error) bool {
	var e *ClientError
	return errors.As(err, &e)
}

// StatusCode returns the status code carried by a *ClientError in err's chain, or 0.
func StatusCode(err error) int {
	var e *ClientError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// CheckStatus returns nil if the status code is 2xx, or if it is 404 and allowNotFound is true.
// Otherwise it returns a *ClientError carrying the status code and body.
func (r Response) CheckStatus(allowNotFound bool) error {
	if r.IsSuccess() || (allowNotFound && r.IsNotFound()) {
		return nil
	}
	return NewClientError(r.StatusCode, r.Text)
}
