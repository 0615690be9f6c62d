package service

import (
	"context"
	"io"
)

// Listener receives synchronous callbacks from a Service. The shape is
// fixed: every listener implements all three callbacks even though most
// concrete listeners only do real work in one of them.
type Listener[V any] interface {
	OnAdd(v V)
	OnRemove(v V)
	OnUpdate(v V)
}

// Service is a keyed store and publish point for one data type. GetData
// never fails: an unknown key yields the zero value, so callers must not
// use absence as a signal.
type Service[V any] interface {
	GetData(key string) V
	OnMessage(v V)
	AddListener(l Listener[V])
	Listeners() []Listener[V]
}

// Connector is the boundary adapter between a Service and an external
// source or sink. Subscribe pulls records in and feeds OnMessage; Publish
// pushes a value out. A connector declares itself subscribe-only or
// publish-only by making the unused method a no-op.
type Connector[V any] interface {
	Subscribe(ctx context.Context, r io.Reader) error
	Publish(v V) error
}

// Cache is the state every concrete service embeds: the authoritative
// key-to-latest-value map plus the ordered listener registry. Fan-out is
// synchronous and runs in registration order; a panicking listener aborts
// the remaining fan-out.
type Cache[V any] struct {
	key       func(V) string
	data      map[string]V
	listeners []Listener[V]
}

// NewCache creates an empty cache whose entries are keyed by key(v).
func NewCache[V any](key func(V) string) *Cache[V] {
	return &Cache[V]{
		key:  key,
		data: make(map[string]V),
	}
}

// GetData returns the current value for a key, or the zero value if the
// key has never been written.
func (c *Cache[V]) GetData(key string) V {
	return c.data[key]
}

// Store writes v under its key and reports whether the key already
// existed.
func (c *Cache[V]) Store(v V) bool {
	k := c.key(v)
	_, existed := c.data[k]
	c.data[k] = v
	return existed
}

// AddListener appends a listener; insertion order is callback order.
func (c *Cache[V]) AddListener(l Listener[V]) {
	c.listeners = append(c.listeners, l)
}

// Listeners returns the registered listeners in registration order.
func (c *Cache[V]) Listeners() []Listener[V] {
	return c.listeners
}

// NotifyAdd invokes OnAdd on every listener in registration order.
func (c *Cache[V]) NotifyAdd(v V) {
	for _, l := range c.listeners {
		l.OnAdd(v)
	}
}

// NotifyUpdate invokes OnUpdate on every listener in registration order.
func (c *Cache[V]) NotifyUpdate(v V) {
	for _, l := range c.listeners {
		l.OnUpdate(v)
	}
}

// NotifyRemove invokes OnRemove on every listener in registration order.
// No service in this pipeline removes keys; the capability exists for
// listeners that need it.
func (c *Cache[V]) NotifyRemove(v V) {
	for _, l := range c.listeners {
		l.OnRemove(v)
	}
}
