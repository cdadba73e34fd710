// Package broadcaster implements the durable outbox pattern: it drains
// NEW entries from the exit WAL, publishes them to Kafka via sarama,
// and marks each one ACKED only after the sync producer confirms it, so
// a crash between publish and ack leaves the entry NEW to be published
// again rather than silently dropping a trade.
package broadcaster

import (
	"context"
	"log"
	"time"

	exitwal "limitbook/infra/wal/exit"

	"github.com/IBM/sarama"
)

type Broadcaster struct {
	exitWAL  *exitwal.ExitWAL
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// New dials the given Kafka brokers with a durable sync producer and
// returns a Broadcaster that will poll exitWAL for pending entries.
func New(exitWAL *exitwal.ExitWAL, brokers []string, topic string) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		exitWAL:  exitWAL,
		producer: producer,
		topic:    topic,
		interval: 250 * time.Millisecond,
	}, nil
}

// Run polls the outbox until ctx is cancelled. Intended to be started
// in its own goroutine.
func (b *Broadcaster) Run(ctx context.Context) {
	log.Println("[broadcaster] started")

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.drainOnce()
		}
	}
}

// drainOnce publishes every NEW outbox entry once. A failed publish
// leaves the entry in StateNew, with its retry count bumped, for the
// next tick to retry --
// sarama's own internal retry budget has already been exhausted by
// the time SendMessage returns an error here.
func (b *Broadcaster) drainOnce() {
	_ = b.exitWAL.ScanPending(func(orderID uint64, rec exitwal.ExitRecord) error {
		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(rec.Payload),
		}

		if _, _, err := b.producer.SendMessage(msg); err != nil {
			_ = b.exitWAL.UpdateState(orderID, exitwal.StateNew, rec.Retries+1)
			return nil
		}

		if err := b.exitWAL.UpdateState(orderID, exitwal.StateAcked, rec.Retries); err != nil {
			return err
		}
		return nil
	})
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
