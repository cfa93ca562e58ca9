package source

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/utakatalp/football-statistics/internal/errs"
)

type KafkaConfig struct {
	Brokers   []string `mapstructure:"brokers"`
	Topic     string   `mapstructure:"topic"`
	Partition int32    `mapstructure:"partition"`
	// oldest replays the partition from the start, newest only sees new messages.
	Offset string `mapstructure:"offset"`
	// Stop once no message arrived for this long. Zero waits until cancelled.
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

// Kafka reads messages from a single topic partition. Partition order is the
// message order, so only one partition is consumed.
type Kafka struct {
	consumer  sarama.Consumer
	topic     string
	partition int32
	offset    int64
	idle      time.Duration
}

// ParseOffset maps the configured offset name to a sarama offset.
func ParseOffset(name string) (int64, error) {
	switch strings.ToLower(name) {
	case "", "oldest":
		return sarama.OffsetOldest, nil
	case "newest":
		return sarama.OffsetNewest, nil
	default:
		return 0, fmt.Errorf("%w: kafka offset %q", errs.ErrInvalidConfig, name)
	}
}

// NewKafka wraps an existing consumer.
func NewKafka(consumer sarama.Consumer, conf KafkaConfig) (*Kafka, error) {
	if conf.Topic == "" {
		return nil, fmt.Errorf("%w: kafka topic is required", errs.ErrInvalidConfig)
	}

	offset, err := ParseOffset(conf.Offset)
	if err != nil {
		return nil, err
	}

	return &Kafka{
		consumer:  consumer,
		topic:     conf.Topic,
		partition: conf.Partition,
		offset:    offset,
		idle:      conf.IdleTimeout,
	}, nil
}

// DialKafka connects to the configured brokers.
func DialKafka(conf KafkaConfig) (*Kafka, error) {
	if len(conf.Brokers) == 0 {
		return nil, fmt.Errorf("%w: kafka brokers are required", errs.ErrInvalidConfig)
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = "footstats"
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Net.DialTimeout = 30 * time.Second

	consumer, err := sarama.NewConsumer(conf.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	kafka, err := NewKafka(consumer, conf)
	if err != nil {
		_ = consumer.Close()

		return nil, err
	}

	return kafka, nil
}

func (k *Kafka) Read(ctx context.Context, handle func(raw string) error) error {
	partitionConsumer, err := k.consumer.ConsumePartition(k.topic, k.partition, k.offset)
	if err != nil {
		return fmt.Errorf("consuming %s/%d: %w", k.topic, k.partition, err)
	}

	defer func() {
		if errClose := partitionConsumer.Close(); errClose != nil {
			slog.Warn("Error closing partition consumer", slog.String("error", errClose.Error()))
		}
	}()

	var (
		idle  <-chan time.Time
		touch = func() {}
	)
	if k.idle > 0 {
		timer := time.NewTimer(k.idle)
		defer timer.Stop()

		idle = timer.C
		touch = func() { timer.Reset(k.idle) }
	}

	messages, consumerErrors := partitionConsumer.Messages(), partitionConsumer.Errors()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-idle:
			slog.Debug("Kafka partition idle, stopping", slog.String("topic", k.topic))

			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			touch()

			line := strings.TrimSpace(string(msg.Value))
			if line == "" {
				continue
			}

			if errHandle := handle(line); errHandle != nil {
				return errHandle
			}
		case errConsumer, ok := <-consumerErrors:
			if !ok {
				consumerErrors = nil

				continue
			}
			slog.Warn("Consumer error", slog.String("error", errConsumer.Error()))
		}
	}
}

func (k *Kafka) Close() error {
	return k.consumer.Close()
}
