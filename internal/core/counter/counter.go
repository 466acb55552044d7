// Package counter provides the process-lifetime request counter.
package counter

import "sync/atomic"

// Counter is a monotonically increasing request counter.
//
// Increments are lock-free and atomic: an increment either happens
// completely or not at all, regardless of what happens to the
// connection that triggered it. The zero value is ready to use.
type Counter struct {
	n atomic.Int64
}

// New creates a counter starting at zero.
func New() *Counter {
	return &Counter{}
}

// Increment adds one to the counter and returns the new value.
func (c *Counter) Increment() int64 {
	return c.n.Add(1)
}

// Value returns the current counter value.
func (c *Counter) Value() int64 {
	return c.n.Load()
}
