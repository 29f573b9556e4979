package client

import (
	"context"
	"errors"
	"fmt"
)

// cleanupRegistry maps a resource path to the callbacks that will tear it down. Paths are kept in
// the order they were first registered.
type cleanupRegistry struct {
	paths     []string
	callbacks map[string][]CleanupFunc
}

type pendingCleanup struct {
	path string
	fn   CleanupFunc
}

// AddCleanup registers a callback to be run by Cleanup. Callbacks for the same path accumulate;
// there is no deduplication.
func (c *Client) AddCleanup(path string, fn CleanupFunc) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.cleanups.callbacks == nil {
		c.cleanups.callbacks = make(map[string][]CleanupFunc)
	}
	if _, ok := c.cleanups.callbacks[path]; !ok {
		c.cleanups.paths = append(c.cleanups.paths, path)
	}
	c.cleanups.callbacks[path] = append(c.cleanups.callbacks[path], fn)
}

// RemoveCleanup unregisters every callback for path. It is a no-op if there are none.
func (c *Client) RemoveCleanup(path string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.cleanups.callbacks[path]; !ok {
		return
	}
	delete(c.cleanups.callbacks, path)
	for i, p := range c.cleanups.paths {
		if p == path {
			c.cleanups.paths = append(c.cleanups.paths[:i], c.cleanups.paths[i+1:]...)
			break
		}
	}
}

// PendingCleanups returns the paths that currently have cleanup callbacks, in the order they
// were first registered.
func (c *Client) PendingCleanups() []string {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]string(nil), c.cleanups.paths...)
}

// Cleanup runs every registered callback exactly once and leaves the registry empty.
//
// Callbacks run in the reverse of the order they were registered in, so that a nested resource is
// deleted before the resource that contains it: paths are processed from the most recently first
// registered to the oldest, and callbacks for the same path from the last added to the first. A
// failing callback does not stop the others from running; all of the failures are returned
// together. The registry is cleared before any callback runs, so callbacks are free to call
// RemoveCleanup.
func (c *Client) Cleanup(ctx context.Context) error {
	c.lock.Lock()
	var pending []pendingCleanup
	for i := len(c.cleanups.paths) - 1; i >= 0; i-- {
		path := c.cleanups.paths[i]
		fns := c.cleanups.callbacks[path]
		for j := len(fns) - 1; j >= 0; j-- {
			pending = append(pending, pendingCleanup{path: path, fn: fns[j]})
		}
	}
	c.cleanups = cleanupRegistry{}
	c.lock.Unlock()

	var errs []error
	for _, p := range pending {
		c.logger.Printf("Cleaning up %s", p.path)
		if err := p.fn(ctx); err != nil {
			c.logger.Printf("Cleanup of %s failed: %s", p.path, err)
			errs = append(errs, fmt.Errorf("cleanup of %s: %w", p.path, err))
		}
	}
	return errors.Join(errs...)
}
