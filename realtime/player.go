package realtime

import (
	"sync/atomic"

	"github.com/dpzmick/sustain/domain/block"
	"github.com/dpzmick/sustain/infra/spsc"
)

// Status is what Fill tells the host after each callback.
type Status int

const (
	// StatusContinue means keep invoking the callback.
	StatusContinue Status = iota
	// StatusShutdown means the channel is closed and drained; the host
	// should stop the stream.
	StatusShutdown
)

// Player runs on the realtime thread. It polls the transport for new
// blocks, swaps its current handle, and copies the current wavetable
// into the host's output buffer.
//
// Everything here is allocation-free and lock-free: the poll is a
// non-blocking ring read and releasing the previous handle is a single
// atomic decrement. The registry's clone keeps every block alive past
// the swap, so the decrement can never be the one that frees.
type Player struct {
	in      *spsc.Chan[block.Handle]
	current block.Handle
	phase   int

	swaps     atomic.Uint64
	underruns atomic.Uint64
}

// NewPlayer creates a player reading from in. The player is the
// channel's single consumer from then on.
func NewPlayer(in *spsc.Chan[block.Handle]) *Player {
	return &Player{in: in}
}

// Fill produces the next len(out) samples. Called by the host on the
// realtime thread; no other goroutine may call it.
func (p *Player) Fill(out []float32) Status {
	if h, ok := p.in.TryRecv(); ok {
		old := p.current
		p.current = h
		if old.Valid() {
			old.Release()
		}
		if p.phase >= p.current.Frames() {
			p.phase = 0
		}
		p.swaps.Add(1)
	} else if p.in.Closed() && p.in.Len() == 0 {
		return StatusShutdown
	}

	if !p.current.Valid() {
		// Nothing published yet: emit silence.
		p.underruns.Add(1)
		for i := range out {
			out[i] = 0
		}
		return StatusContinue
	}

	table := p.current.Samples()
	for i := range out {
		out[i] = table[p.phase]
		p.phase++
		if p.phase == len(table) {
			p.phase = 0
		}
	}
	return StatusContinue
}

// Detach releases the current handle. Call after the host has stopped;
// never from the callback itself. With the registry still alive the
// release is a plain decrement, deallocation stays deferred.
func (p *Player) Detach() {
	if p.current.Valid() {
		p.current.Release()
	}
}

// Current returns the sequence number of the block being played, or 0.
func (p *Player) Current() uint64 {
	if !p.current.Valid() {
		return 0
	}
	return p.current.Seq()
}

// Swaps returns how many times a new block replaced the current one.
func (p *Player) Swaps() uint64 { return p.swaps.Load() }

// Underruns returns how many callbacks ran with no block to play.
func (p *Player) Underruns() uint64 { return p.underruns.Load() }
