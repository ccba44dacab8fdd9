package service

import (
	"context"
	"time"
)

// StartCaptureJob periodically writes a capture to path and uses the
// covered sequence number to truncate the journal and garbage-collect
// the outbox. The capture itself is diagnostic; the truncation is what
// keeps disk usage bounded.
func (e *Engine) StartCaptureJob(ctx context.Context, path string, interval time.Duration) {
	if interval <= 0 {
		log.Warningf("[engine] capture job disabled, interval %s", interval)
		return
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				seq, err := e.Capture(path)
				if err != nil {
					log.Errorf("[engine] capture: %s", err.Error())
					continue
				}
				if seq == 0 {
					continue
				}

				// Keep the segment holding the newest record: replay
				// re-synthesizes the last program from it.
				_ = e.journal.TruncateBefore(seq - 1)
				if e.outbox != nil {
					_ = e.outbox.TruncateAckedUpTo(seq)
				}
			}
		}
	}()
}
