package spsc

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestChanFIFODelivery(t *testing.T) {
	const n = 50
	c := NewChan[int](16)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < n; i++ {
			if err := c.Send(i); err != nil {
				t.Errorf("send %d: %v", i, err)
				return
			}
		}
	}()

	for want := 0; want < n; {
		v, ok := c.TryRecv()
		if !ok {
			continue
		}
		if v != want {
			t.Fatalf("expected %d, got %d (send order not preserved)", want, v)
		}
		want++
	}
	<-done
}

func TestChanCapacityRoundsUp(t *testing.T) {
	c := NewChan[int](5)
	if c.Cap() != 8 {
		t.Fatalf("expected capacity 8, got %d", c.Cap())
	}
	if NewChan[int](0).Cap() != 0 {
		t.Fatal("rendezvous channel must report capacity 0")
	}
}

func TestChanTrySend(t *testing.T) {
	c := NewChan[int](1)
	if err := c.TrySend(1); err != nil {
		t.Fatalf("try-send on empty channel: %v", err)
	}
	if err := c.TrySend(2); !errors.Is(err, ErrFull) {
		t.Fatalf("expected ErrFull, got %v", err)
	}
	if _, ok := c.TryRecv(); !ok {
		t.Fatal("expected a value")
	}
	if err := c.TrySend(3); err != nil {
		t.Fatalf("try-send after drain: %v", err)
	}
}

func TestChanTrySendRendezvousAlwaysFull(t *testing.T) {
	c := NewChan[int](0)
	if err := c.TrySend(1); !errors.Is(err, ErrFull) {
		t.Fatalf("expected ErrFull on rendezvous try-send, got %v", err)
	}
}

// A rendezvous send must not return until the receiver took the value.
func TestChanRendezvousHandoff(t *testing.T) {
	c := NewChan[int](0)

	var received atomic.Bool
	sent := make(chan struct{})

	go func() {
		if err := c.Send(42); err != nil {
			t.Errorf("send: %v", err)
		}
		if !received.Load() {
			t.Error("send returned before the value was received")
		}
		close(sent)
	}()

	// Give the sender time to park in the handoff wait.
	time.Sleep(10 * time.Millisecond)
	select {
	case <-sent:
		t.Fatal("send completed without a receive")
	default:
	}

	// Flag first: Send may return the instant the take lands, and it
	// must then observe the flag as already set.
	received.Store(true)
	v, ok := c.TryRecv()
	if !ok || v != 42 {
		t.Fatalf("expected 42, got %v ok=%v", v, ok)
	}
	<-sent
}

func TestChanSendAfterCloseFails(t *testing.T) {
	// Rendezvous: no consumer will ever take the value, Send must not
	// wait for one.
	c := NewChan[int](0)
	c.Close()
	if err := c.Send(1); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on closed rendezvous send, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("rejected send left %d values in flight", c.Len())
	}

	// Buffered with a free slot: the value must be refused, not
	// silently accepted.
	c2 := NewChan[int](4)
	c2.Close()
	if err := c2.Send(1); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on closed buffered send, got %v", err)
	}
	if c2.Len() != 0 {
		t.Fatalf("rejected send left %d values in flight", c2.Len())
	}
}

// Close must unblock a rendezvous Send already waiting for its
// consumer; the retracted value stays with the sender.
func TestChanCloseAbortsPendingRendezvousSend(t *testing.T) {
	c := NewChan[int](0)

	result := make(chan error, 1)
	go func() { result <- c.Send(42) }()

	// Let the sender park in the handoff wait, then close under it.
	time.Sleep(10 * time.Millisecond)
	c.Close()

	select {
	case err := <-result:
		if !errors.Is(err, ErrClosed) {
			t.Fatalf("expected ErrClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("send did not return after close")
	}
	if c.Len() != 0 {
		t.Fatalf("aborted send left %d values in flight", c.Len())
	}
	if _, ok := c.TryRecv(); ok {
		t.Fatal("retracted value must not be receivable")
	}
}

func TestChanClosedSendFails(t *testing.T) {
	c := NewChan[int](1)
	c.Close()
	c.Close() // idempotent
	if !c.Closed() {
		t.Fatal("channel should report closed")
	}
	if err := c.TrySend(1); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}

	// A blocking send on a full closed channel must give up.
	c2 := NewChan[int](1)
	if err := c2.Send(1); err != nil {
		t.Fatal(err)
	}
	c2.Close()
	if err := c2.Send(2); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestChanDrainHandsBackLeftovers(t *testing.T) {
	c := NewChan[int](8)
	for i := 0; i < 3; i++ {
		if err := c.Send(i); err != nil {
			t.Fatal(err)
		}
	}
	c.Close()

	var got []int
	c.Drain(func(v int) { got = append(got, v) })
	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Fatalf("drain returned %v, want [0 1 2]", got)
	}
	if c.Len() != 0 {
		t.Fatal("channel should be empty after drain")
	}
}

// The consumer-side poll must never allocate.
func TestChanTryRecvDoesNotAllocate(t *testing.T) {
	c := NewChan[int](16)
	for i := 0; i < 8; i++ {
		_ = c.Send(i)
	}
	allocs := testing.AllocsPerRun(8, func() {
		c.TryRecv()
	})
	if allocs != 0 {
		t.Fatalf("TryRecv allocated %.1f times per call", allocs)
	}
}
