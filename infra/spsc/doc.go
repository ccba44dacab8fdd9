// Package spsc provides the bounded, lock-free single-producer
// single-consumer transport the engine moves block handles through.
//
// Ring is the bare wait-free ring buffer; Chan adds the
// producer-may-block / consumer-only-polls contract the playback path
// needs, backed by the ring for buffered capacities and by a single
// counter-guarded cell for zero-capacity rendezvous. All storage is
// allocated at construction; nothing on either path allocates or locks
// afterwards.
package spsc
