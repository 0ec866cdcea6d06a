// Package notify provides a synchronous in-process notification registry.
//
// A Registry keeps an ordered list of subscriber callbacks per topic.
// Publish delivers a payload to every subscriber of a topic, in the order
// they subscribed, and isolates each delivery: a callback that returns an
// error or panics does not stop delivery to the remaining subscribers.
// Failures are reported in aggregate via *DeliveryError after the full
// pass.
//
// The registry is safe for concurrent use. Delivery operates on a
// snapshot of the subscriber list taken when Publish starts, so
// subscribing or unsubscribing during an in-flight publish never changes
// the set of callbacks that publish invokes. Callbacks run outside the
// registry lock and may call back into the registry.
//
// There is no persistence, transport, or retry layer here. It is a local
// primitive - users should build their own adapters for type safety,
// filtering, and business logic.
package notify

import (
	"fmt"
	"runtime/debug"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/erlorenz/go-notify/clone"
)

// Callback is a subscriber entry point. It receives the published payload
// and reports a delivery failure by returning a non-nil error. A panic in
// a Callback is recovered and treated as a failure.
type Callback func(payload any) error

// Handle identifies a single registration. It is returned by Subscribe
// and used only to cancel that registration. Handles are comparable; the
// zero Handle matches nothing.
type Handle struct {
	topic string
	id    uuid.UUID
}

// String returns a short diagnostic form. The value is opaque and not
// meant to be parsed.
func (h Handle) String() string {
	if h.id == uuid.Nil {
		return "notify.Handle(zero)"
	}
	return h.topic + "/" + h.id.String()
}

// subscription pairs a registration id with its callback.
type subscription struct {
	id uuid.UUID
	fn Callback
}

// Registry maintains ordered subscriber lists keyed by topic.
// Construct one with New and share it by reference; the Registry owns no
// goroutines or external resources, so there is nothing to close.
type Registry struct {
	opts Options

	mu     sync.RWMutex
	topics map[string][]subscription
}

// New creates an empty Registry. Pass Options{} for defaults.
func New(options Options) *Registry {
	return &Registry{
		opts:   withDefaults(options),
		topics: make(map[string][]subscription),
	}
}

// Subscribe registers fn under topic and returns the Handle that cancels
// this registration. Subscribers are appended: publish order is
// subscription order. The topic is created implicitly on first subscribe.
//
// The only failure is an empty (or all-whitespace) topic, reported as
// ErrEmptyTopic with no partial state.
func (r *Registry) Subscribe(topic string, fn Callback) (Handle, error) {
	if strings.TrimSpace(topic) == "" {
		return Handle{}, fmt.Errorf("subscribe: %w", ErrEmptyTopic)
	}

	h := Handle{topic: topic, id: uuid.New()}

	r.mu.Lock()
	r.topics[topic] = append(r.topics[topic], subscription{id: h.id, fn: fn})
	r.mu.Unlock()

	r.opts.Logger.Debug("subscribed",
		zap.String("topic", topic),
		zap.Stringer("handle", h))

	return h, nil
}

// Unsubscribe removes the registration identified by h. It is a no-op if
// the handle was already removed, never matched, or is the zero Handle -
// unsubscribing twice during teardown is not an error.
func (r *Registry) Unsubscribe(h Handle) {
	if h.id == uuid.Nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.topics[h.topic]
	for i, sub := range subs {
		if sub.id == h.id {
			r.topics[h.topic] = append(subs[:i], subs[i+1:]...)
			break
		}
	}

	// Drop empty topics so Topics and the table don't accumulate names.
	if len(r.topics[h.topic]) == 0 {
		delete(r.topics, h.topic)
	}
}

// Publish delivers payload synchronously to a snapshot of the topic's
// current subscribers, in insertion order. It returns only after every
// snapshotted subscriber has been invoked.
//
// A failing subscriber does not block the rest: each error or recovered
// panic is collected, and after the full pass Publish returns a
// *DeliveryError listing the failures with their handles. With no
// subscribers (or none failing) it returns nil.
func (r *Registry) Publish(topic string, payload any) error {
	if strings.TrimSpace(topic) == "" {
		return fmt.Errorf("publish: %w", ErrEmptyTopic)
	}

	// Snapshot under the read lock; the copy insulates this pass from
	// concurrent subscribe/unsubscribe. Callbacks run after the lock is
	// released so they may re-enter the registry.
	r.mu.RLock()
	snapshot := slices.Clone(r.topics[topic])
	r.mu.RUnlock()

	if len(snapshot) == 0 {
		return nil
	}

	var failures []Failure
	for _, sub := range snapshot {
		if err := r.deliver(sub, payload); err != nil {
			failures = append(failures, Failure{
				Handle: Handle{topic: topic, id: sub.id},
				Err:    err,
			})
		}
	}

	if len(failures) == 0 {
		return nil
	}

	r.opts.Logger.Warn("publish completed with failures",
		zap.String("topic", topic),
		zap.Int("delivered", len(snapshot)-len(failures)),
		zap.Int("failed", len(failures)))

	return &DeliveryError{Topic: topic, Failures: failures}
}

// deliver invokes one callback, converting a panic into an error.
func (r *Registry) deliver(sub subscription, payload any) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.opts.Logger.Error("panic in subscriber callback",
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("callback panic: %v", rec)
		}
	}()

	return sub.fn(r.copyPayload(payload))
}

// copyPayload applies the configured duplication mode per delivery so a
// subscriber cannot mutate the producer's aggregate.
func (r *Registry) copyPayload(payload any) any {
	switch r.opts.CopyMode {
	case CopyShallow:
		return clone.Shallow(payload)
	case CopyDeep:
		return clone.Deep(payload)
	default:
		return payload
	}
}

// SubscriberCount returns the current number of subscribers for topic,
// 0 if the topic is unknown.
func (r *Registry) SubscriberCount(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.topics[topic])
}

// Topics returns the sorted names of all topics that currently have at
// least one subscriber.
func (r *Registry) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.topics))
	for name := range r.topics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
