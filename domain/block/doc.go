// Package block holds the shared-ownership primitive the whole engine is
// built around: an immutable sample Block and a reference-counted Handle
// to it. Handles may be held concurrently by the producer, the transport
// channel, the playback callback and the reclaimer registry; the payload
// must be treated as read-only by every holder.
//
// Releasing a Handle is a lock-free O(1) decrement. Deallocation happens
// only on the release that reaches zero, which the reclaimer arranges to
// be its own (see the reclaim package).
package block
