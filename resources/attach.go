package resources

import (
	"github.com/launchdarkly/http-test-client/client"
)

// Owner is anything that collections can be attached to: a *client.Client, whose URL is empty,
// or an item, whose URL is the item's own URL.
type Owner interface {
	Session() client.Session
	URL() string
}

// CollectionFactory constructs a collection type for a collection URL.
type CollectionFactory[C any] func(session client.Session, url string) C

// Attachment describes a collection that lives under an owner at a fixed path segment. It holds
// no state of its own; On builds a new collection value every time it is called.
type Attachment[C any] struct {
	segment string
	build   CollectionFactory[C]
}

// Attach declares a collection of type C at the specified path segment, such as "/users".
func Attach[C any](segment string, build CollectionFactory[C]) Attachment[C] {
	return Attachment[C]{segment: segment, build: build}
}

// AttachDefault declares a plain collection at the specified path segment.
func AttachDefault(segment string) Attachment[*RestResources[*Resource]] {
	return Attach[*RestResources[*Resource]](segment, New)
}

func (a Attachment[C]) Segment() string {
	return a.segment
}

// On returns the collection as seen from owner, at owner.URL() + segment.
func (a Attachment[C]) On(owner Owner) C {
	return a.build(owner.Session(), owner.URL()+a.segment)
}
