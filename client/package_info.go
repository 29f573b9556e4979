// Package client contains the low-level request contract for testing a REST-style HTTP API:
// a Client that sends requests through a pluggable Transport, decodes JSON responses, reports
// unexpected status codes as *ClientError, and keeps a registry of cleanup callbacks for
// resources created during a test session.
//
// The higher-level resources package builds collection and item operations on top of the
// Session interface that Client implements.
package client
