package kafka

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"laundry/internal/pkg/config"
	"laundry/pkg/logger"
	retrierconfig "laundry/pkg/retrier"
	"laundry/pkg/retrier/backoff_adapter"
)

const producerMaxRetries = 3

func NewSaramaConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// SyncProducer требует Return.Successes
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = producerMaxRetries
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	return cfg, nil
}

func Brokers(cfg *config.Kafka) []string {
	var brokers []string
	for _, broker := range strings.Split(cfg.Brokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

// NewSyncProducer дожидается доступности брокеров и создает producer.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := NewSaramaConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := Brokers(cfg)
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	kafkaLog.Info("Kafka producer started")
	return producer, nil
}

func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retryCfg := retrierconfig.StartupConfig()
	retryCfg.OnRetry = func(attempt uint64, err error, next time.Duration) {
		log.With(
			logger.NewField("attempt", attempt),
			logger.NewField("retry_in", next),
			logger.NewField("error", err),
		).Warn("Kafka is not ready")
	}

	err := backoff_adapter.New(retryCfg).ExecuteWithContext(ctx, func(ctx context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			if err := client.Close(); err != nil {
				log.With(logger.NewField("error", err)).Error("failed to close Kafka connection")
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.With(logger.NewField("error", err)).Error("Kafka connection failed after retries")
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.Info("Kafka connection established")
	return nil
}
