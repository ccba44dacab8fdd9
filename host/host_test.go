package host

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/dpzmick/sustain/realtime"
)

func TestPeriodMatchesSampleMath(t *testing.T) {
	got := Config{SampleRate: 44100, BufferFrames: 64}.Period()
	if got < 1400*time.Microsecond || got > 1500*time.Microsecond {
		t.Fatalf("64@44.1kHz period = %s, want ~1.45ms", got)
	}
	got = Config{SampleRate: 192000, BufferFrames: 64}.Period()
	if got < 300*time.Microsecond || got > 360*time.Microsecond {
		t.Fatalf("64@192kHz period = %s, want ~0.33ms", got)
	}
}

func TestCallbackCadenceAndStop(t *testing.T) {
	var calls atomic.Uint64
	h := New(Config{SampleRate: 48000, BufferFrames: 480}, func(out []float32) realtime.Status {
		calls.Add(1)
		if len(out) != 480 {
			t.Errorf("expected 480 frames, got %d", len(out))
		}
		return realtime.StatusContinue
	}, nil)

	h.Start()
	time.Sleep(100 * time.Millisecond)
	h.Stop()
	h.Stop() // idempotent

	// 10ms period → roughly 10 calls in 100ms; allow slack for CI.
	n := calls.Load()
	if n < 3 || n > 20 {
		t.Fatalf("expected ~10 callbacks, got %d", n)
	}
	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	if calls.Load() != after {
		t.Fatal("callbacks kept firing after Stop")
	}
}

func TestOverBudgetCallbackRecordsXrun(t *testing.T) {
	type xrun struct {
		elapsed, budget time.Duration
		frames          int
	}
	got := make(chan xrun, 1)

	cfg := Config{SampleRate: 48000, BufferFrames: 480} // 10ms budget
	h := New(cfg, func(out []float32) realtime.Status {
		time.Sleep(cfg.Budget() + 5*time.Millisecond)
		return realtime.StatusShutdown
	}, func(at time.Time, elapsed, budget time.Duration, frames int) {
		select {
		case got <- xrun{elapsed, budget, frames}:
		default:
		}
	})

	h.Start()
	select {
	case x := <-got:
		if x.elapsed <= x.budget || x.frames != 480 {
			t.Fatalf("bad xrun report: %+v", x)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an xrun report")
	}
	h.Stop()
	if h.Xruns() == 0 {
		t.Fatal("xrun counter not bumped")
	}
}

func TestShutdownStatusEndsStream(t *testing.T) {
	var calls atomic.Uint64
	h := New(Config{SampleRate: 48000, BufferFrames: 48}, func(out []float32) realtime.Status {
		if calls.Add(1) >= 3 {
			return realtime.StatusShutdown
		}
		return realtime.StatusContinue
	}, nil)

	h.Start()
	deadline := time.Now().Add(time.Second)
	for calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(20 * time.Millisecond)
	if n := calls.Load(); n != 3 {
		t.Fatalf("stream should end at the shutdown status, got %d calls", n)
	}
	h.Stop()
}
