// Package memory provides pooled storage for block payloads so that
// steady-state publishing reuses buffers instead of growing the heap.
// Reclamation itself lives in the reclaim package; this package only
// owns where freed storage goes.
package memory
