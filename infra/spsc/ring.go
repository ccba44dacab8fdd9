package spsc

import "sync/atomic"

// Ring is a bounded lock-free SPSC ring buffer.
//
// Thread assignment is fixed for the life of the ring: Enqueue from the
// single producer goroutine only, Dequeue from the single consumer
// goroutine only. Both sides are wait-free: one atomic load, one atomic
// store, no CAS. The cached index on each side keeps the common case from
// reading the other side's cache line at all.
type Ring[T any] struct {
	// producer side: tail plus a local copy of the consumer's head
	tail       atomic.Uint64
	cachedHead uint64
	_pad1      [48]byte

	// consumer side: head plus a local copy of the producer's tail
	head       atomic.Uint64
	cachedTail uint64
	_pad2      [48]byte

	buf  []T
	mask uint64
}

// NewRing allocates a ring with the given capacity (power of two).
// All storage is allocated here; the ring never allocates afterwards.
func NewRing[T any](capacity uint64) *Ring[T] {
	if capacity == 0 || capacity&(capacity-1) != 0 {
		panic("spsc: capacity must be a power of two and > 0")
	}
	return &Ring[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// Enqueue publishes v to the consumer. Returns false if the ring is full.
// Producer goroutine only.
func (r *Ring[T]) Enqueue(v T) bool {
	t := r.tail.Load()
	if t-r.cachedHead == uint64(len(r.buf)) {
		r.cachedHead = r.head.Load()
		if t-r.cachedHead == uint64(len(r.buf)) {
			return false
		}
	}
	r.buf[t&r.mask] = v
	r.tail.Store(t + 1)
	return true
}

// Dequeue takes the next value. Returns false if the ring is empty.
// Consumer goroutine only.
func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	h := r.head.Load()
	if h == r.cachedTail {
		r.cachedTail = r.tail.Load()
		if h == r.cachedTail {
			return zero, false
		}
	}
	v := r.buf[h&r.mask]
	r.buf[h&r.mask] = zero // drop the ring's reference
	r.head.Store(h + 1)
	return v, true
}

// Len returns the number of values currently in flight.
func (r *Ring[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns the ring capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}
