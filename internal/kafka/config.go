package kafka

import (
	"time"

	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/IBM/sarama"
)

// Топики событий жизненного цикла клиента
const (
	TopicCustomerCreated = "customer.created"
	TopicCustomerUpdated = "customer.updated"
	TopicCustomerDeleted = "customer.deleted"
)

// CustomerTopics возвращает все топики, в которые пишет сервис
func CustomerTopics() []string {
	return []string{TopicCustomerCreated, TopicCustomerUpdated, TopicCustomerDeleted}
}

// Config конфигурация для Kafka
type Config struct {
	Brokers  []string
	ClientID string
	Producer ProducerConfig
}

// ProducerConfig конфигурация для продюсера
type ProducerConfig struct {
	MaxMessageBytes  int
	Compression      sarama.CompressionCodec
	RequiredAcks     sarama.RequiredAcks
	FlushMaxMessages int
	RetryMax         int
	Timeout          time.Duration
}

// NewConfig создает новую конфигурацию Kafka
func NewConfig(brokers []string, clientID string) *Config {
	if clientID == "" {
		clientID = "customer-service"
	}
	return &Config{
		Brokers:  brokers,
		ClientID: clientID,
		Producer: ProducerConfig{
			MaxMessageBytes:  1000000,
			Compression:      sarama.CompressionSnappy,
			RequiredAcks:     sarama.WaitForAll,
			FlushMaxMessages: 100,
			RetryMax:         3,
			Timeout:          10 * time.Second,
		},
	}
}

// NewSaramaConfig создает новую конфигурацию Sarama
func NewSaramaConfig(cfg *Config, log *logger.Logger) *sarama.Config {
	saramaConfig := sarama.NewConfig()

	// Версия Kafka
	saramaConfig.Version = sarama.V3_3_0_0
	saramaConfig.ClientID = cfg.ClientID

	// Настройки продюсера; SyncProducer требует Return.Successes
	saramaConfig.Producer.MaxMessageBytes = cfg.Producer.MaxMessageBytes
	saramaConfig.Producer.Compression = cfg.Producer.Compression
	saramaConfig.Producer.RequiredAcks = cfg.Producer.RequiredAcks
	saramaConfig.Producer.Flush.MaxMessages = cfg.Producer.FlushMaxMessages
	saramaConfig.Producer.Retry.Max = cfg.Producer.RetryMax
	saramaConfig.Producer.Timeout = cfg.Producer.Timeout
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true

	log.Debug("Sarama producer config: client=%s acks=%d retries=%d", cfg.ClientID, cfg.Producer.RequiredAcks, cfg.Producer.RetryMax)

	return saramaConfig
}
