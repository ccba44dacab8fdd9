package block

import (
	"sync/atomic"
	"time"
)

// Block is an immutable heap-allocated payload: one wavetable cycle of
// samples plus its publish metadata. It is created once by a producer,
// never mutated after publication, and destroyed exactly once when the
// last Handle referencing it is released.
type Block struct {
	samples []float32
	seq     uint64
	created time.Time

	holders atomic.Int64
	free    func([]float32)
}

// Handle is a shared-ownership reference to a Block. Copying the struct
// value moves the reference; Clone creates an additional reference and
// bumps the holder count. The zero Handle is invalid.
type Handle struct {
	b *Block
}

// New moves ownership of samples into a fresh Block and returns the first
// Handle to it (holder count 1). free is invoked exactly once, with the
// sample storage, by whichever holder performs the release that drops the
// count to zero; it may be nil.
func New(seq uint64, samples []float32, free func([]float32)) Handle {
	b := &Block{
		samples: samples,
		seq:     seq,
		created: time.Now(),
		free:    free,
	}
	b.holders.Store(1)
	return Handle{b: b}
}

// Clone returns an independent Handle aliasing the same Block.
// The caller must itself hold a live reference: cloning is what keeps the
// count from ever being observed too low by a concurrent releaser.
func (h Handle) Clone() Handle {
	if h.b == nil {
		panic("block: clone of released handle")
	}
	h.b.holders.Add(1)
	return Handle{b: h.b}
}

// Release drops this reference. The count decrement is a single atomic
// op; only the holder that reaches zero pays for the free. Releasing an
// already-released Handle panics.
func (h *Handle) Release() {
	if h.b == nil {
		panic("block: release of released handle")
	}
	b := h.b
	h.b = nil

	n := b.holders.Add(-1)
	if n > 0 {
		return
	}
	if n < 0 {
		panic("block: holder count underflow")
	}
	if b.free != nil {
		b.free(b.samples)
	}
	b.samples = nil
}

// Valid reports whether the Handle still references a Block.
func (h Handle) Valid() bool { return h.b != nil }

// Samples returns the payload. Callers must treat it as read-only; the
// slice stays valid for as long as this Handle is live.
func (h Handle) Samples() []float32 { return h.b.samples }

// Seq returns the publish sequence number of the Block.
func (h Handle) Seq() uint64 { return h.b.seq }

// Frames returns the number of samples in the Block.
func (h Handle) Frames() int { return len(h.b.samples) }

// Created returns when the Block was constructed.
func (h Handle) Created() time.Time { return h.b.created }

// Holders returns the current holder count. The value is an instantaneous
// snapshot: it can only be acted on by a caller that can rule out
// concurrent clones, e.g. the reclaimer scanning under its registry lock.
func (h Handle) Holders() int64 { return h.b.holders.Load() }
