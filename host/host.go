// Package host stands in for the realtime audio backend. It invokes a
// user callback on a fixed cadence with a fixed-size sample buffer, the
// way PortAudio or JACK would, and measures each callback against its
// deadline budget. A real deployment swaps this for cgo bindings; the
// callback contract is the same.
package host

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tliron/commonlog"

	"github.com/dpzmick/sustain/realtime"
)

var log = commonlog.GetLogger("sustain.host")

// Callback produces the next len(out) samples. It runs on the host's
// stream goroutine — the critical thread — and must return within the
// budget: no allocation, no locks, no blocking.
type Callback func(out []float32) realtime.Status

// XrunFunc observes a missed deadline. It runs on the supervisor side
// of the host, not inside the callback.
type XrunFunc func(at time.Time, elapsed, budget time.Duration, frames int)

type Config struct {
	SampleRate   int // e.g. 44100
	BufferFrames int // e.g. 64
}

// Period returns how often the callback fires; Budget is the deadline
// for each invocation. At 64 frames / 44.1kHz that is ~1.45ms, at 64 /
// 192kHz ~0.33ms.
func (c Config) Period() time.Duration {
	return time.Duration(c.BufferFrames) * time.Second / time.Duration(c.SampleRate)
}

func (c Config) Budget() time.Duration { return c.Period() }

type Host struct {
	cfg    Config
	cb     Callback
	onXrun XrunFunc

	out  []float32
	stop chan struct{}
	done sync.WaitGroup

	started atomic.Bool
	xruns   atomic.Uint64
}

// New creates a host. onXrun may be nil.
func New(cfg Config, cb Callback, onXrun XrunFunc) *Host {
	if cfg.SampleRate <= 0 || cfg.BufferFrames <= 0 {
		panic("host: sample rate and buffer frames must be > 0")
	}
	return &Host{
		cfg:    cfg,
		cb:     cb,
		onXrun: onXrun,
		out:    make([]float32, cfg.BufferFrames),
		stop:   make(chan struct{}),
	}
}

// Start launches the stream goroutine. Call once.
func (h *Host) Start() {
	if !h.started.CompareAndSwap(false, true) {
		return
	}
	log.Infof("[host] stream started rate=%d frames=%d budget=%s",
		h.cfg.SampleRate, h.cfg.BufferFrames, h.cfg.Budget())
	h.done.Add(1)
	go h.stream()
}

func (h *Host) stream() {
	defer h.done.Done()

	budget := h.cfg.Budget()
	ticker := time.NewTicker(h.cfg.Period())
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			start := time.Now()
			st := h.cb(h.out)
			elapsed := time.Since(start)

			if elapsed > budget {
				h.xruns.Add(1)
				if h.onXrun != nil {
					h.onXrun(start, elapsed, budget, h.cfg.BufferFrames)
				}
			}
			if st == realtime.StatusShutdown {
				log.Info("[host] callback requested shutdown")
				return
			}
		}
	}
}

// Stop ends the stream and waits for the goroutine. Idempotent.
func (h *Host) Stop() {
	if !h.started.Load() {
		return
	}
	select {
	case <-h.stop:
	default:
		close(h.stop)
	}
	h.done.Wait()
}

// Xruns returns how many callbacks overran their budget.
func (h *Host) Xruns() uint64 { return h.xruns.Load() }
