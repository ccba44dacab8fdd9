package spsc

import (
	"errors"
	"runtime"
	"sync/atomic"
)

var (
	// ErrFull is returned by TrySend when no slot is free.
	ErrFull = errors.New("spsc: channel full")
	// ErrClosed is returned by Send and TrySend after Close.
	ErrClosed = errors.New("spsc: channel closed")
)

// Chan moves ownership of values from one producer goroutine to one
// consumer goroutine over a preallocated ring. The producer side may
// block (Send spins cooperatively); the consumer side never does:
// TryRecv is the only receive form.
//
// Capacity 0 gives rendezvous semantics: Send does not return until the
// value has been taken on the other side. The rendezvous is a single
// cell guarded by offered/taken counters, so a Send aborted by Close
// can retract the value it offered — ownership is never ambiguous.
type Chan[T any] struct {
	ring       *Ring[T]
	rendezvous bool
	closed     atomic.Bool

	// Rendezvous cell. The producer writes slot and advances offered;
	// whoever wins the CAS on taken owns the value.
	slot    T
	offered atomic.Uint64
	taken   atomic.Uint64
}

// NewChan creates a channel. capacity <= 0 means rendezvous; otherwise
// capacity is rounded up to the next power of two.
func NewChan[T any](capacity int) *Chan[T] {
	if capacity <= 0 {
		return &Chan[T]{rendezvous: true}
	}
	return &Chan[T]{ring: NewRing[T](ceilPow2(uint64(capacity)))}
}

// Send publishes v and blocks the caller until a slot is free — and, on
// a rendezvous channel, until the consumer has taken the value. Returns
// ErrClosed once the channel is closed; in that case v was not
// delivered and the caller still owns it. Never allocates. Producer
// goroutine only; must not be called from the playback callback.
func (c *Chan[T]) Send(v T) error {
	if c.closed.Load() {
		return ErrClosed
	}
	if c.rendezvous {
		return c.offer(v)
	}
	for !c.ring.Enqueue(v) {
		if c.closed.Load() {
			return ErrClosed
		}
		runtime.Gosched()
	}
	return nil
}

// offer runs the rendezvous handoff: publish the value, then wait for
// the consumer to take it. If Close lands first the producer races the
// consumer for the cell; losing the race means the value was delivered.
func (c *Chan[T]) offer(v T) error {
	off := c.offered.Load()
	c.slot = v
	c.offered.Store(off + 1)

	for c.taken.Load() != off+1 {
		if c.closed.Load() {
			// Winning the race means the consumer never saw the value;
			// the slot is not touched here, a concurrent take may still
			// be reading it before its CAS fails.
			if c.taken.CompareAndSwap(off, off+1) {
				return ErrClosed
			}
			return nil
		}
		runtime.Gosched()
	}
	return nil
}

// TrySend publishes v if a slot is free, without blocking. On a
// rendezvous channel it always fails: a handoff cannot complete without
// waiting, and the consumer only ever polls.
func (c *Chan[T]) TrySend(v T) error {
	if c.closed.Load() {
		return ErrClosed
	}
	if c.rendezvous {
		return ErrFull
	}
	if !c.ring.Enqueue(v) {
		return ErrFull
	}
	return nil
}

// TryRecv takes the next value if one is present. Non-blocking and
// allocation-free; this is the only receive form, safe on the playback
// callback. Consumer goroutine only.
func (c *Chan[T]) TryRecv() (T, bool) {
	if c.rendezvous {
		return c.take()
	}
	return c.ring.Dequeue()
}

func (c *Chan[T]) take() (T, bool) {
	var zero T
	t := c.taken.Load()
	if c.offered.Load() == t {
		return zero, false
	}
	v := c.slot
	// A failed CAS means the producer retracted after Close.
	if !c.taken.CompareAndSwap(t, t+1) {
		return zero, false
	}
	return v, true
}

// Close marks the channel closed. Idempotent. Values already in flight
// stay receivable; use Drain to hand leftovers back after the consumer
// has stopped polling.
func (c *Chan[T]) Close() {
	c.closed.Store(true)
}

// Closed reports whether Close has been called.
func (c *Chan[T]) Closed() bool {
	return c.closed.Load()
}

// Drain hands every in-flight value to fn. Call only after Close, from
// the side that owns teardown, once the consumer no longer polls.
func (c *Chan[T]) Drain(fn func(T)) {
	for {
		v, ok := c.TryRecv()
		if !ok {
			return
		}
		fn(v)
	}
}

// Len returns the number of values in flight.
func (c *Chan[T]) Len() int {
	if c.rendezvous {
		return int(c.offered.Load() - c.taken.Load())
	}
	return c.ring.Len()
}

// Cap returns the configured capacity; 0 for a rendezvous channel.
func (c *Chan[T]) Cap() int {
	if c.rendezvous {
		return 0
	}
	return c.ring.Cap()
}

func ceilPow2(v uint64) uint64 {
	n := uint64(1)
	for n < v {
		n <<= 1
	}
	return n
}
