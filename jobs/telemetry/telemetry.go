// Package telemetry periodically snapshots engine stats and publishes
// them to a Kafka topic. Purely observational; losing a message loses
// nothing but a data point, so sends are not staged through the outbox.
package telemetry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tliron/commonlog"

	"github.com/dpzmick/sustain/infra/kafka"
)

var log = commonlog.GetLogger("sustain.telemetry")

type Publisher struct {
	producer *kafka.Producer
	snapshot func() any
	interval time.Duration
}

// New creates a publisher. snapshot is called on every tick and its
// result JSON-encoded; it must be safe to call from this goroutine.
func New(producer *kafka.Producer, snapshot func() any, interval time.Duration) *Publisher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Publisher{
		producer: producer,
		snapshot: snapshot,
		interval: interval,
	}
}

type envelope struct {
	At    time.Time `json:"at"`
	Stats any       `json:"stats"`
}

// Start launches the publish loop. It stops when ctx is cancelled.
func (p *Publisher) Start(ctx context.Context) {
	log.Info("[telemetry] started")

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("[telemetry] stopped")
				return
			case <-ticker.C:
				p.publishOnce(ctx)
			}
		}
	}()
}

func (p *Publisher) publishOnce(ctx context.Context) {
	body, err := json.Marshal(envelope{At: time.Now().UTC(), Stats: p.snapshot()})
	if err != nil {
		log.Errorf("[telemetry] encode: %s", err.Error())
		return
	}
	if err := p.producer.Send(ctx, []byte("stats"), body); err != nil {
		log.Errorf("[telemetry] send: %s", err.Error())
	}
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
