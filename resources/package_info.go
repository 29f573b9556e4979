// Package resources maps the URL conventions of a REST-style API onto method calls.
//
// A RestResources value represents a collection at some URL, such as "/users". It can list the
// collection, create a new item in it, and produce a Resource for an individual item by ID,
// such as "/users/1". A Resource can be fetched, updated, and deleted.
//
// Every successful Create registers a cleanup callback with the session, so that calling
// Cleanup on the client at the end of a test deletes everything the test created; deleting the
// item explicitly removes that registration again.
//
// Custom collection and item types are made by embedding *RestResources[T] or *Resource in a
// struct and adding methods that call Session().Request. Nested collections are declared with
// Attach and exposed through an accessor method:
//
//	var articleComments = resources.AttachDefault("/comments")
//
//	type Article struct{ *resources.Resource }
//
//	func (a *Article) Comments() *resources.RestResources[*resources.Resource] {
//		return articleComments.On(a)
//	}
package resources
