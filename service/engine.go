package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/tliron/commonlog"

	"github.com/dpzmick/sustain/capture"
	"github.com/dpzmick/sustain/domain/block"
	"github.com/dpzmick/sustain/domain/wave"
	"github.com/dpzmick/sustain/infra/memory"
	"github.com/dpzmick/sustain/infra/outbox"
	"github.com/dpzmick/sustain/infra/sequence"
	"github.com/dpzmick/sustain/infra/spsc"
	"github.com/dpzmick/sustain/infra/wal"
	"github.com/dpzmick/sustain/infra/wal/walpb"
	"github.com/dpzmick/sustain/realtime"
	"github.com/dpzmick/sustain/reclaim"
)

var log = commonlog.GetLogger("sustain.engine")

// ErrClosed is returned by publish operations after Close.
var ErrClosed = errors.New("service: engine closed")

/*
Engine is the ONLY write entry point into the system.

All coordination between:
- domain (block, wave)
- infra (memory, spsc, wal, outbox)
- reclaim
- realtime
happens here.
*/
type Engine struct {
	pool       *memory.SamplePool
	seq        *sequence.Sequencer
	journal    *wal.WAL
	ser        wal.Serializer
	outbox     *outbox.Outbox
	transport  *spsc.Chan[block.Handle]
	reclaimer  *reclaim.Reclaimer
	player     *realtime.Player
	sampleRate int
	xruns      func() uint64

	published atomic.Uint64
	closed    atomic.Bool
}

// Deps carries everything the engine coordinates. Outbox and Xruns are
// optional; Serializer defaults to protobuf.
type Deps struct {
	Pool       *memory.SamplePool
	Seq        *sequence.Sequencer
	Journal    *wal.WAL
	Serializer wal.Serializer
	Outbox     *outbox.Outbox
	Transport  *spsc.Chan[block.Handle]
	Reclaimer  *reclaim.Reclaimer
	Player     *realtime.Player
	SampleRate int
	Xruns      func() uint64
}

// NewEngine wires all dependencies.
// No globals. No magic.
func NewEngine(d Deps) *Engine {
	if d.Serializer == nil {
		d.Serializer = wal.ProtoSerializer{}
	}
	return &Engine{
		pool:       d.Pool,
		seq:        d.Seq,
		journal:    d.Journal,
		ser:        d.Serializer,
		outbox:     d.Outbox,
		transport:  d.Transport,
		reclaimer:  d.Reclaimer,
		player:     d.Player,
		sampleRate: d.SampleRate,
		xruns:      d.Xruns,
	}
}

// Player returns the realtime consumer, for wiring into a host.
func (e *Engine) Player() *realtime.Player { return e.player }

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// PublishWave synthesizes one wavetable cycle and publishes it: journal
// append, registry registration, outbox staging, then handoff to the
// realtime side. Returns the assigned sequence number.
//
// A full registry rejects the publish (bounded growth); nothing reaches
// the transport in that case.
func (e *Engine) PublishWave(shape wave.Shape, freqHz float64, volume float32) (uint64, error) {
	if e.closed.Load() {
		return 0, ErrClosed
	}

	// 1. Synthesize into pooled storage
	buf := e.pool.Get()
	cycles := e.cyclesFor(freqHz)
	if err := wave.Fill(buf, shape, cycles, volume); err != nil {
		e.pool.Put(buf)
		return 0, err
	}

	seq := e.seq.Next()

	// 2. Journal the publish before anyone can observe it
	rec := &walpb.PublishRecord{
		Seq:       seq,
		UnixNanos: time.Now().UnixNano(),
		Shape:     shape.String(),
		FreqHz:    freqHz,
		Volume:    volume,
		Frames:    uint32(len(buf)),
	}
	if err := e.journalAppend(rec); err != nil {
		e.pool.Put(buf)
		return 0, fmt.Errorf("service: journal publish %d: %w", seq, err)
	}

	// 3. Construct the handle and hand a clone to the reclaimer
	h := block.New(seq, buf, e.pool.Put)
	if err := e.reclaimer.Register(h); err != nil {
		h.Release()
		return 0, err
	}

	// 4. Stage the broadcast event; delivery is the broadcaster's job
	e.stageEvent(rec)

	// 5. Hand ownership to the realtime side
	if err := e.transport.Send(h); err != nil {
		h.Release()
		return 0, err
	}

	e.published.Add(1)
	return seq, nil
}

// PublishSamples publishes a caller-provided payload unchanged. The
// samples are copied into pooled storage; raw publishes are journaled
// for the sequence history but cannot be re-synthesized on replay.
func (e *Engine) PublishSamples(samples []float32) (uint64, error) {
	if e.closed.Load() {
		return 0, ErrClosed
	}
	if len(samples) != e.pool.Frames() {
		return 0, fmt.Errorf("service: payload must be %d frames, got %d", e.pool.Frames(), len(samples))
	}

	buf := e.pool.Get()
	copy(buf, samples)

	seq := e.seq.Next()
	rec := &walpb.PublishRecord{
		Seq:       seq,
		UnixNanos: time.Now().UnixNano(),
		Shape:     rawShape,
		Frames:    uint32(len(buf)),
	}
	if err := e.journalAppend(rec); err != nil {
		e.pool.Put(buf)
		return 0, fmt.Errorf("service: journal publish %d: %w", seq, err)
	}

	h := block.New(seq, buf, e.pool.Put)
	if err := e.reclaimer.Register(h); err != nil {
		h.Release()
		return 0, err
	}
	e.stageEvent(rec)
	if err := e.transport.Send(h); err != nil {
		h.Release()
		return 0, err
	}

	e.published.Add(1)
	return seq, nil
}

// rawShape marks journal records that carry no synthesis parameters.
const rawShape = "raw"

func (e *Engine) journalAppend(rec *walpb.PublishRecord) error {
	data, err := e.ser.Encode(rec)
	if err != nil {
		return err
	}
	return e.journal.Append(wal.NewRecord(wal.RecordPublish, rec.Seq, data))
}

// stageEvent writes the broadcast body to the outbox. Best-effort: a
// failed stage loses one event, never the publish.
func (e *Engine) stageEvent(rec *walpb.PublishRecord) {
	if e.outbox == nil {
		return
	}
	body, err := json.Marshal(publishEvent{
		V:      1,
		Type:   "publish",
		Seq:    rec.Seq,
		Shape:  rec.Shape,
		FreqHz: rec.FreqHz,
		Volume: rec.Volume,
		Frames: rec.Frames,
		At:     rec.UnixNanos,
	})
	if err != nil {
		return
	}
	if err := e.outbox.PutNew(rec.Seq, body); err != nil {
		log.Errorf("[engine] stage event seq=%d: %s", rec.Seq, err.Error())
	}
}

type publishEvent struct {
	V      int     `json:"v"`
	Type   string  `json:"type"`
	Seq    uint64  `json:"seq"`
	Shape  string  `json:"shape"`
	FreqHz float64 `json:"freq_hz,omitempty"`
	Volume float32 `json:"volume,omitempty"`
	Frames uint32  `json:"frames"`
	At     int64   `json:"at"`
}

// cyclesFor converts a frequency to whole wavetable cycles per block.
// The table is looped by the player, so the playable frequency grid is
// multiples of sampleRate/frames.
func (e *Engine) cyclesFor(freqHz float64) int {
	cycles := int(math.Round(freqHz * float64(e.pool.Frames()) / float64(e.sampleRate)))
	if cycles < 1 {
		cycles = 1
	}
	return cycles
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Stats is a point-in-time counter snapshot.
type Stats struct {
	Published     uint64 `json:"published"`
	Reclaimed     uint64 `json:"reclaimed"`
	Live          int    `json:"live"`
	Swaps         uint64 `json:"swaps"`
	Underruns     uint64 `json:"underruns"`
	Xruns         uint64 `json:"xruns"`
	ChannelDepth  int    `json:"channel_depth"`
	PoolAllocated uint64 `json:"pool_allocated"`
	PoolRecycled  uint64 `json:"pool_recycled"`
}

func (e *Engine) Stats() Stats {
	s := Stats{
		Published:     e.published.Load(),
		Reclaimed:     e.reclaimer.Freed(),
		Live:          e.reclaimer.Live(),
		Swaps:         e.player.Swaps(),
		Underruns:     e.player.Underruns(),
		ChannelDepth:  e.transport.Len(),
		PoolAllocated: e.pool.Allocated(),
		PoolRecycled:  e.pool.Recycled(),
	}
	if e.xruns != nil {
		s.Xruns = e.xruns()
	}
	return s
}

// Blocks returns a view of every block the registry currently keeps
// alive. The holder counts include the registry's own reference.
func (e *Engine) Blocks() []capture.BlockView {
	snap := e.reclaimer.Snapshot()
	now := time.Now()

	out := make([]capture.BlockView, 0, len(snap))
	for i := range snap {
		h := &snap[i]
		out = append(out, capture.BlockView{
			Seq: h.Seq(),
			// Subtract the snapshot's own clone.
			Holders: h.Holders() - 1,
			Frames:  h.Frames(),
			AgeMS:   now.Sub(h.Created()).Milliseconds(),
		})
		h.Release()
	}
	return out
}

//
// ──────────────────────────────────────────────────────────
// Capture
// ──────────────────────────────────────────────────────────
//

// Capture writes a consistent engine view to path and returns the
// sequence number it covers.
func (e *Engine) Capture(path string) (uint64, error) {
	seq := e.seq.Current()
	stats := e.Stats()

	c := &capture.Capture{
		TakenAt: time.Now().UTC(),
		LastSeq: seq,
		Blocks:  e.Blocks(),
		Counters: map[string]uint64{
			"published": stats.Published,
			"reclaimed": stats.Reclaimed,
			"swaps":     stats.Swaps,
			"underruns": stats.Underruns,
			"xruns":     stats.Xruns,
		},
	}
	if err := capture.Write(path, c); err != nil {
		return 0, err
	}
	return seq, nil
}

//
// ──────────────────────────────────────────────────────────
// Shutdown
// ──────────────────────────────────────────────────────────
//

// Close tears the engine down in the order that keeps the final free
// off the realtime thread: stop the host FIRST, then call Close. The
// transport is closed and drained, the player detached, and only then
// does the reclaimer shut down — so every consumer-side release happens
// while the registry still holds its clone.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}
	log.Info("[engine] shutting down")

	e.transport.Close()
	e.transport.Drain(func(h block.Handle) { h.Release() })
	e.player.Detach()
	e.reclaimer.Shutdown()

	var firstErr error
	if err := e.journal.Sync(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := e.journal.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if e.outbox != nil {
		if err := e.outbox.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
