// Package apitests contains an example API client built on the resources package, and a suite of
// tests that exercise it against a live service, the embedded mock API, or the dummy transport.
//
// The API has users, and articles that can be searched, published, and commented on. Everything
// a test creates is deleted when that test finishes.
package apitests
