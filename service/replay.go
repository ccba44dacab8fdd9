package service

import (
	"fmt"

	"github.com/dpzmick/sustain/domain/block"
	"github.com/dpzmick/sustain/domain/wave"
	"github.com/dpzmick/sustain/infra/wal"
	"github.com/dpzmick/sustain/infra/wal/walpb"
)

/*
ReplayJournal rebuilds state from the publish journal.

IMPORTANT:
- This MUST run before accepting traffic, with the consumer already
  polling: on a rendezvous transport the replayed block cannot be
  handed off until someone takes it
- The outbox is NOT replayed; the broadcaster drains whatever it holds
*/
func (e *Engine) ReplayJournal(dir string) error {
	var last *walpb.PublishRecord

	lastSeq, err := wal.Replay(dir, func(r *wal.Record) error {
		if r.Type != wal.RecordPublish {
			return nil
		}
		rec, err := e.ser.Decode(r.Data)
		if err != nil {
			return fmt.Errorf("service: decode journal seq %d: %w", r.Seq, err)
		}
		last = rec
		return nil
	})
	if err != nil {
		return err
	}

	// Resume sequencing AFTER replay
	e.seq.Reset(lastSeq)

	if last == nil {
		log.Info("[engine] journal empty, fresh start")
		return nil
	}

	// Re-synthesize the most recent program so playback resumes where
	// it left off. Raw publishes carry no parameters to rebuild from.
	if last.Shape == rawShape {
		log.Infof("[engine] journal replay complete (last seq = %d, raw payload not restored)", lastSeq)
		return nil
	}

	shape, err := wave.ParseShape(last.Shape)
	if err != nil {
		return fmt.Errorf("service: replay seq %d: %w", last.Seq, err)
	}

	buf := e.pool.Get()
	if err := wave.Fill(buf, shape, e.cyclesFor(last.FreqHz), last.Volume); err != nil {
		e.pool.Put(buf)
		return fmt.Errorf("service: replay seq %d: %w", last.Seq, err)
	}

	// Same path as a live publish, minus journal and outbox: the
	// record is already durable and was already broadcast.
	h := block.New(last.Seq, buf, e.pool.Put)
	if err := e.reclaimer.Register(h); err != nil {
		h.Release()
		return err
	}
	if err := e.transport.Send(h); err != nil {
		h.Release()
		return err
	}

	log.Infof("[engine] journal replay complete (last seq = %d)", lastSeq)
	return nil
}
