// Package capture writes a consistent point-in-time view of the engine
// to disk: which blocks are live, their holder counts, and the running
// counters. Captures are diagnostic artifacts and the trigger for
// journal/outbox truncation; they are encoded canonically so identical
// states produce identical bytes.
package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fxamacker/cbor/v2"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("capture: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// BlockView describes one registered block at capture time.
type BlockView struct {
	Seq     uint64 `cbor:"seq"`
	Holders int64  `cbor:"holders"`
	Frames  int    `cbor:"frames"`
	AgeMS   int64  `cbor:"age_ms"`
}

// Capture is the on-disk document.
type Capture struct {
	TakenAt  time.Time         `cbor:"taken_at"`
	LastSeq  uint64            `cbor:"last_seq"`
	Blocks   []BlockView       `cbor:"blocks"`
	Counters map[string]uint64 `cbor:"counters"`
}

// Write encodes c and atomically replaces path (write to a temp file in
// the same directory, then rename).
func Write(path string, c *Capture) error {
	data, err := cborEncMode.Marshal(c)
	if err != nil {
		return fmt.Errorf("capture: encode: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".capture-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads a capture back. Used by tooling and tests.
func Load(path string) (*Capture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Capture
	if err := cbor.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("capture: unmarshal %s: %w", path, err)
	}
	return &c, nil
}
