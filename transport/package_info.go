// Package transport contains implementations of client.Transport: HTTPTransport for real
// network calls, HandlerTransport for serving requests in-process with an http.Handler,
// DummyTransport for examples that should run without a server, and RecordingTransport for
// asserting on exactly what a client sent.
package transport
