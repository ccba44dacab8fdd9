// Package wal implements the publish journal: an append-only, segmented
// log of every block publish with CRC validation, replay, and
// snapshot-driven truncation. On restart the engine replays the journal
// to restore the sequencer and re-synthesize the last published
// program.
package wal
