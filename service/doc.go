// Package service orchestrates the core components of the engine —
// block pool, sequencer, journal, outbox, transport, reclaimer, and
// player.
//
// It provides the single write entry point for publishing wavetables,
// decoupled from network transports like gRPC, and owns the ordered
// teardown that keeps the final deallocation off the realtime thread.
package service
