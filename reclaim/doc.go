// Package reclaim defers block deallocation off the realtime thread.
//
// Every published block is registered here; the registry's own clone
// keeps it alive no matter when producer or playback copies are
// released. A background goroutine periodically scans the registry and
// frees exactly the blocks whose holder count has fallen to
// RegistryFloor, meaning no holder but the registry remains. The
// realtime thread's only interaction with the scheme is an atomic
// count decrement when it swaps blocks — it never sees the registry,
// its mutex, or a free.
package reclaim
