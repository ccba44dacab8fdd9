package reclaim

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dpzmick/sustain/domain/block"
)

// RegistryFloor is the holder count at which a registered block has no
// holder left except the registry's own clone. A scan frees exactly the
// entries it observes at this floor.
const RegistryFloor = 1

const (
	DefaultInterval = 50 * time.Millisecond
	MinInterval     = 5 * time.Millisecond
	MaxInterval     = 100 * time.Millisecond

	DefaultCapacity = 4096
)

var (
	// ErrRegistryFull is returned by Register once Capacity entries are
	// live. Publishing must slow down until a scan frees some.
	ErrRegistryFull = errors.New("reclaim: registry full")
	// ErrShutdown is returned by Register after Shutdown has run.
	ErrShutdown = errors.New("reclaim: reclaimer is shut down")
)

// Policy selects what Shutdown does with entries still alive.
type Policy int

const (
	// PolicyRelease drops the registry's clones at shutdown. Anything
	// still held externally is freed later by whichever holder releases
	// last — the caller must guarantee the playback side has detached
	// first, or the final free can land on the realtime thread.
	PolicyRelease Policy = iota
	// PolicyLeak abandons surviving entries without releasing them.
	// Their counts can never reach zero again, so no deallocation can
	// land anywhere. Terminal leak, by choice.
	PolicyLeak
)

type Config struct {
	// Interval between scan passes; clamped to [MinInterval, MaxInterval].
	Interval time.Duration
	// Capacity bounds the registry. Register fails once this many
	// entries are live rather than growing without limit.
	Capacity int
	// Policy applied to surviving entries at Shutdown.
	Policy Policy
	// OnReclaim, if set, is called with each freed block's sequence
	// number. Runs on the reclaimer goroutine, outside the registry
	// lock.
	OnReclaim func(seq uint64)
}

// Reclaimer owns the registry of every published block and frees the
// ones nobody else holds anymore. It is an explicit object: whoever
// starts the runtime constructs it, starts it, and shuts it down.
//
// Register runs on producer threads; the scan runs on the reclaimer's
// own goroutine. The realtime thread never touches the registry or its
// mutex — that separation is what keeps the playback path free of
// deallocation.
type Reclaimer struct {
	cfg Config

	mu      sync.Mutex
	entries []block.Handle
	down    bool

	stop    chan struct{}
	done    sync.WaitGroup
	started atomic.Bool

	scanned atomic.Uint64
	freed   atomic.Uint64
}

func New(cfg Config) *Reclaimer {
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Interval < MinInterval {
		cfg.Interval = MinInterval
	}
	if cfg.Interval > MaxInterval {
		cfg.Interval = MaxInterval
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	return &Reclaimer{
		cfg:     cfg,
		entries: make([]block.Handle, 0, cfg.Capacity),
		stop:    make(chan struct{}),
	}
}

// Register takes a clone of h into the registry. Producer threads only;
// never call this from the realtime thread.
func (r *Reclaimer) Register(h block.Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.down {
		return ErrShutdown
	}
	if len(r.entries) >= r.cfg.Capacity {
		return ErrRegistryFull
	}
	r.entries = append(r.entries, h.Clone())
	return nil
}

// Start launches the periodic scan loop. Call once.
func (r *Reclaimer) Start() {
	if !r.started.CompareAndSwap(false, true) {
		return
	}
	r.done.Add(1)
	go r.loop()
}

func (r *Reclaimer) loop() {
	defer r.done.Done()

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.ScanOnce()
		}
	}
}

// ScanOnce runs one retain/compact pass over the registry and returns
// how many blocks it freed. An entry is freed iff its holder count is
// exactly RegistryFloor at the moment of the scan; a clone can only be
// taken from the registry under the same lock, so the floor cannot be
// observed concurrently with a registry-sourced clone.
//
// A second pass with no count changes in between frees nothing and
// leaves the registry as it was.
func (r *Reclaimer) ScanOnce() int {
	var freedSeqs []uint64
	freed := 0

	r.mu.Lock()
	kept := r.entries[:0]
	for i := range r.entries {
		h := r.entries[i]
		if h.Holders() == RegistryFloor {
			if r.cfg.OnReclaim != nil {
				freedSeqs = append(freedSeqs, h.Seq())
			}
			h.Release()
			freed++
			continue
		}
		kept = append(kept, h)
	}
	// Zero the tail so the backing array drops its stale handles.
	tail := r.entries[len(kept):]
	for i := range tail {
		tail[i] = block.Handle{}
	}
	r.entries = kept
	r.mu.Unlock()

	r.scanned.Add(1)
	r.freed.Add(uint64(freed))
	for _, seq := range freedSeqs {
		r.cfg.OnReclaim(seq)
	}
	return freed
}

// Shutdown stops the scan loop, waits for it, then applies the
// configured policy to anything still registered. Idempotent. The
// caller must have detached the playback side first when using
// PolicyRelease.
func (r *Reclaimer) Shutdown() {
	if r.started.Load() {
		select {
		case <-r.stop:
		default:
			close(r.stop)
		}
		r.done.Wait()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return
	}
	r.down = true

	switch r.cfg.Policy {
	case PolicyRelease:
		for i := range r.entries {
			if r.entries[i].Holders() == RegistryFloor {
				r.freed.Add(1)
			}
			r.entries[i].Release()
		}
	case PolicyLeak:
		// Drop the handles without releasing.
	}
	r.entries = nil
}

// Snapshot clones every live entry under the lock. Callers must release
// each returned handle. Not for the realtime thread.
func (r *Reclaimer) Snapshot() []block.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]block.Handle, 0, len(r.entries))
	for i := range r.entries {
		out = append(out, r.entries[i].Clone())
	}
	return out
}

// Live returns the number of entries currently registered.
func (r *Reclaimer) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Freed returns the total number of blocks freed so far.
func (r *Reclaimer) Freed() uint64 { return r.freed.Load() }

// Scans returns the number of completed scan passes.
func (r *Reclaimer) Scans() uint64 { return r.scanned.Load() }
