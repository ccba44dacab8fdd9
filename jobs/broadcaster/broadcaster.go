// Package broadcaster drains the publish outbox to Kafka. It runs
// entirely off the realtime path: a ticker loop scans staged events,
// sends them, and records delivery state so nothing is lost or sent
// forever.
package broadcaster

import (
	"context"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/tliron/commonlog"

	"github.com/dpzmick/sustain/infra/outbox"
)

const drainInterval = 250 * time.Millisecond

var log = commonlog.GetLogger("sustain.broadcaster")

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
}

func New(ob *outbox.Outbox, brokers []string, topic string) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
	}, nil
}

// Start launches the drain loop. It stops when ctx is cancelled.
func (b *Broadcaster) Start(ctx context.Context) {
	log.Info("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(drainInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("[broadcaster] stopped")
				return
			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

// drainOnce pushes every NEW and previously FAILED event through the
// mark-sent → send → mark-acked sequence. A send error leaves the
// record FAILED for the next pass.
func (b *Broadcaster) drainOnce() {
	deliver := func(rec outbox.Record) error {
		if err := b.outbox.MarkSent(rec.Seq); err != nil {
			return nil
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(strconv.FormatUint(rec.Seq, 10)),
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			log.Errorf("[broadcaster] send seq=%d: %s", rec.Seq, err.Error())
			_ = b.outbox.MarkFailed(rec.Seq)
			return nil
		}

		_ = b.outbox.MarkAcked(rec.Seq)
		return nil
	}

	_ = b.outbox.ScanByState(outbox.StateNew, deliver)
	_ = b.outbox.ScanByState(outbox.StateFailed, deliver)
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
