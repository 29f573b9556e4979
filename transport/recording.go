package transport

import (
	"context"
	"sync"

	"github.com/launchdarkly/http-test-client/client"
)

// RecordingTransport delegates to another transport and remembers every request it was given.
type RecordingTransport struct {
	target   client.Transport
	requests []client.TransportRequest
	lock     sync.Mutex
}

// NewRecordingTransport wraps target.
func NewRecordingTransport(target client.Transport) *RecordingTransport {
	return &RecordingTransport{target: target}
}

func (r *RecordingTransport) Request(ctx context.Context, req client.TransportRequest) (client.Response, error) {
	r.lock.Lock()
	r.requests = append(r.requests, req)
	r.lock.Unlock()
	return r.target.Request(ctx, req)
}

// Requests returns a copy of everything recorded so far.
func (r *RecordingTransport) Requests() []client.TransportRequest {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]client.TransportRequest(nil), r.requests...)
}

// Count returns the number of recorded requests with the specified method and URL.
func (r *RecordingTransport) Count(method, url string) int {
	n := 0
	for _, req := range r.Requests() {
		if req.Method == method && req.URL == url {
			n++
		}
	}
	return n
}

// Reset forgets all recorded requests.
func (r *RecordingTransport) Reset() {
	r.lock.Lock()
	r.requests = nil
	r.lock.Unlock()
}
