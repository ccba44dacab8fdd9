package memory

import (
	"sync"
	"sync/atomic"
)

// SamplePool hands out fixed-length sample buffers for new blocks and
// takes storage back when a block is freed. Get runs on producer
// threads, Put on whichever thread performs a block's final release —
// under normal operation the reclaimer. Neither is ever called from the
// playback callback.
type SamplePool struct {
	frames int
	p      sync.Pool

	allocated atomic.Uint64
	recycled  atomic.Uint64
}

// NewSamplePool creates a pool of buffers holding frames samples each.
func NewSamplePool(frames int) *SamplePool {
	if frames <= 0 {
		panic("memory: sample pool frames must be > 0")
	}
	sp := &SamplePool{frames: frames}
	sp.p.New = func() any {
		sp.allocated.Add(1)
		s := make([]float32, frames)
		return &s
	}
	return sp
}

// Get returns a buffer of exactly Frames samples. Contents are
// unspecified; the caller overwrites every sample before publishing.
func (sp *SamplePool) Get() []float32 {
	return *sp.p.Get().(*[]float32)
}

// Put returns storage to the pool. Buffers of the wrong length are
// dropped to the garbage collector instead of poisoning the pool.
func (sp *SamplePool) Put(s []float32) {
	if len(s) != sp.frames {
		return
	}
	sp.recycled.Add(1)
	sp.p.Put(&s)
}

// Frames returns the buffer length this pool hands out.
func (sp *SamplePool) Frames() int { return sp.frames }

// Allocated returns how many buffers were freshly allocated (pool
// misses). Recycled returns how many came back via Put. Both are
// counters for stats and tests, not control inputs.
func (sp *SamplePool) Allocated() uint64 { return sp.allocated.Load() }

func (sp *SamplePool) Recycled() uint64 { return sp.recycled.Load() }
