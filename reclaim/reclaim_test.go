package reclaim

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dpzmick/sustain/domain/block"
)

func newHandle(seq uint64, freed *atomic.Int64) block.Handle {
	return block.New(seq, make([]float32, 8), func([]float32) {
		if freed != nil {
			freed.Add(1)
		}
	})
}

func TestScanEmptyRegistry(t *testing.T) {
	r := New(Config{})
	if got := r.ScanOnce(); got != 0 {
		t.Fatalf("empty scan freed %d", got)
	}
	if r.Live() != 0 {
		t.Fatalf("registry should stay empty, has %d entries", r.Live())
	}
}

func TestScanFreesOnlyAtFloor(t *testing.T) {
	var freed atomic.Int64
	r := New(Config{})

	held := newHandle(1, &freed)
	if err := r.Register(held); err != nil {
		t.Fatal(err)
	}

	dropped := newHandle(2, &freed)
	if err := r.Register(dropped); err != nil {
		t.Fatal(err)
	}
	dropped.Release() // registry now sole holder of block 2

	if got := r.ScanOnce(); got != 1 {
		t.Fatalf("expected 1 freed, got %d", got)
	}
	if freed.Load() != 1 {
		t.Fatalf("expected 1 payload freed, got %d", freed.Load())
	}
	if r.Live() != 1 {
		t.Fatalf("expected 1 surviving entry, got %d", r.Live())
	}
	held.Release()
}

func TestScanIdempotent(t *testing.T) {
	var freed atomic.Int64
	r := New(Config{})

	h := newHandle(1, &freed)
	if err := r.Register(h); err != nil {
		t.Fatal(err)
	}

	before := r.Live()
	r.ScanOnce()
	if got := r.ScanOnce(); got != 0 {
		t.Fatalf("second scan with no count change freed %d", got)
	}
	if r.Live() != before {
		t.Fatalf("registry size changed across no-op scans: %d -> %d", before, r.Live())
	}
	if freed.Load() != 0 {
		t.Fatal("nothing should have been freed while the handle is held")
	}
	h.Release()
}

// Publish H1..H5; the consumer only ever holds the latest. After scans
// following each replacement, exactly H1..H4 are freed and H5 is live.
func TestLatestOnlyConsumerScenario(t *testing.T) {
	var freed atomic.Int64
	var reclaimed []uint64
	r := New(Config{OnReclaim: func(seq uint64) { reclaimed = append(reclaimed, seq) }})

	var current block.Handle
	for seq := uint64(1); seq <= 5; seq++ {
		h := newHandle(seq, &freed)
		if err := r.Register(h); err != nil {
			t.Fatal(err)
		}
		if current.Valid() {
			current.Release() // consumer swaps to the newer block
		}
		current = h
		r.ScanOnce()
	}

	if freed.Load() != 4 {
		t.Fatalf("expected H1..H4 freed, got %d frees", freed.Load())
	}
	if len(reclaimed) != 4 {
		t.Fatalf("expected 4 reclaim callbacks, got %v", reclaimed)
	}
	for i, seq := range reclaimed {
		if seq != uint64(i+1) {
			t.Fatalf("reclaimed %v, want [1 2 3 4]", reclaimed)
		}
	}
	if r.Live() != 1 {
		t.Fatalf("expected only H5 live, registry has %d", r.Live())
	}
	if !current.Valid() || current.Seq() != 5 {
		t.Fatal("consumer must still hold H5")
	}
	current.Release()
}

// Every block is eventually freed after its last external handle drops,
// and never before.
func TestEventualReclamationUnderLoad(t *testing.T) {
	var freed atomic.Int64
	r := New(Config{Interval: MinInterval, Capacity: 512})
	r.Start()

	const n = 100
	var current block.Handle
	for seq := uint64(1); seq <= n; seq++ {
		h := newHandle(seq, &freed)
		if err := r.Register(h); err != nil {
			t.Fatalf("register %d: %v", seq, err)
		}
		if current.Valid() {
			current.Release()
		}
		current = h
	}
	current.Release() // quiesce: no external holders remain

	deadline := time.Now().Add(2 * time.Second)
	for freed.Load() != n && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if freed.Load() != n {
		t.Fatalf("expected all %d blocks freed after quiescence, got %d", n, freed.Load())
	}
	if r.Live() != 0 {
		t.Fatalf("registry should be empty, has %d", r.Live())
	}
	r.Shutdown()
}

func TestRegisterBoundedByCapacity(t *testing.T) {
	r := New(Config{Capacity: 2})

	h1, h2, h3 := newHandle(1, nil), newHandle(2, nil), newHandle(3, nil)
	if err := r.Register(h1); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(h2); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(h3); !errors.Is(err, ErrRegistryFull) {
		t.Fatalf("expected ErrRegistryFull, got %v", err)
	}

	// Freeing an entry makes room again.
	h1.Release()
	r.ScanOnce()
	if err := r.Register(h3); err != nil {
		t.Fatalf("register after scan: %v", err)
	}
	h2.Release()
	h3.Release()
	r.ScanOnce()
}

func TestShutdownReleasePolicy(t *testing.T) {
	var freed atomic.Int64
	r := New(Config{Policy: PolicyRelease})
	r.Start()

	orphan := newHandle(1, &freed)
	if err := r.Register(orphan); err != nil {
		t.Fatal(err)
	}
	orphan.Release() // registry sole holder

	held := newHandle(2, &freed)
	if err := r.Register(held); err != nil {
		t.Fatal(err)
	}

	r.Shutdown()
	if freed.Load() != 1 {
		t.Fatalf("shutdown should free the orphan only, freed %d", freed.Load())
	}

	// The surviving external holder performs the deferred free.
	held.Release()
	if freed.Load() != 2 {
		t.Fatalf("last holder should free block 2, freed %d", freed.Load())
	}

	if err := r.Register(newHandle(3, nil)); !errors.Is(err, ErrShutdown) {
		t.Fatalf("expected ErrShutdown, got %v", err)
	}
}

func TestShutdownLeakPolicy(t *testing.T) {
	var freed atomic.Int64
	r := New(Config{Policy: PolicyLeak})

	h := newHandle(1, &freed)
	if err := r.Register(h); err != nil {
		t.Fatal(err)
	}
	h.Release()

	r.Shutdown()
	r.Shutdown() // idempotent
	if freed.Load() != 0 {
		t.Fatal("leak policy must never free")
	}
}

func TestSnapshotClonesEntries(t *testing.T) {
	r := New(Config{})
	h := newHandle(7, nil)
	if err := r.Register(h); err != nil {
		t.Fatal(err)
	}

	snap := r.Snapshot()
	if len(snap) != 1 || snap[0].Seq() != 7 {
		t.Fatalf("unexpected snapshot %v", snap)
	}
	// Snapshot holds its own reference: h + registry + snapshot.
	if got := h.Holders(); got != 3 {
		t.Fatalf("expected 3 holders, got %d", got)
	}
	snap[0].Release()
	h.Release()
}

func TestIntervalClamped(t *testing.T) {
	if New(Config{Interval: time.Nanosecond}).cfg.Interval != MinInterval {
		t.Error("interval below the minimum must clamp up")
	}
	if New(Config{Interval: time.Second}).cfg.Interval != MaxInterval {
		t.Error("interval above the maximum must clamp down")
	}
	if New(Config{}).cfg.Interval != DefaultInterval {
		t.Error("zero interval must default")
	}
}
