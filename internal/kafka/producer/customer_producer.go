package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/kafka"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// CustomerEvent представляет событие клиента для Kafka
type CustomerEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	CustomerID int64     `json:"customer_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Deleted    bool      `json:"deleted"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CustomerProducer интерфейс для отправки событий клиентов
type CustomerProducer interface {
	PublishCustomerCreated(ctx context.Context, customer domain.Customer) error
	PublishCustomerUpdated(ctx context.Context, customer domain.Customer) error
	PublishCustomerDeleted(ctx context.Context, customer domain.Customer) error
	Close() error
}

type kafkaCustomerProducer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
	now      func() time.Time
}

// NewKafkaCustomerProducer создает новый продюсер событий клиентов
func NewKafkaCustomerProducer(producer sarama.SyncProducer, log *logger.Logger) CustomerProducer {
	return &kafkaCustomerProducer{
		producer: producer,
		log:      log,
		now:      time.Now,
	}
}

// PublishCustomerCreated публикует событие о создании клиента
func (p *kafkaCustomerProducer) PublishCustomerCreated(ctx context.Context, customer domain.Customer) error {
	return p.publishEvent(ctx, kafka.TopicCustomerCreated, customer)
}

// PublishCustomerUpdated публикует событие об обновлении клиента
func (p *kafkaCustomerProducer) PublishCustomerUpdated(ctx context.Context, customer domain.Customer) error {
	return p.publishEvent(ctx, kafka.TopicCustomerUpdated, customer)
}

// PublishCustomerDeleted публикует событие об удалении клиента
func (p *kafkaCustomerProducer) PublishCustomerDeleted(ctx context.Context, customer domain.Customer) error {
	return p.publishEvent(ctx, kafka.TopicCustomerDeleted, customer)
}

// NewCustomerEvent строит событие из состояния клиента
func NewCustomerEvent(topic string, customer domain.Customer, occurredAt time.Time) CustomerEvent {
	return CustomerEvent{
		EventID:    uuid.NewString(),
		EventType:  topic,
		CustomerID: customer.ID,
		FullName:   customer.FullName,
		Email:      customer.Email,
		Phone:      customer.Phone,
		Deleted:    customer.Deleted,
		OccurredAt: occurredAt,
	}
}

// publishEvent публикует событие клиента в Kafka. Ключ сообщения - ID клиента,
// поэтому все события одного клиента попадают в одну партицию.
func (p *kafkaCustomerProducer) publishEvent(ctx context.Context, topic string, customer domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("customer event not published: %w", err)
	}

	now := p.now()
	event := NewCustomerEvent(topic, customer, now)

	messageValue, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal customer event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(customer.ID, 10)),
		Value: sarama.ByteEncoder(messageValue),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event_type"),
				Value: []byte(topic),
			},
			{
				Key:   []byte("event_id"),
				Value: []byte(event.EventID),
			},
		},
		Timestamp: now,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish customer event: %w", err)
	}

	p.log.Info("Published customer event to topic %s: customer=%d partition=%d offset=%d",
		topic, customer.ID, partition, offset)

	return nil
}

// Close закрывает продюсер
func (p *kafkaCustomerProducer) Close() error {
	return p.producer.Close()
}

type noopCustomerProducer struct {
	log *logger.Logger
}

// NewNoopCustomerProducer возвращает продюсер, который только пишет в лог.
// Используется, когда Kafka отключена в конфигурации.
func NewNoopCustomerProducer(log *logger.Logger) CustomerProducer {
	return &noopCustomerProducer{log: log}
}

func (p *noopCustomerProducer) PublishCustomerCreated(_ context.Context, customer domain.Customer) error {
	p.log.Debug("Kafka disabled, skipping %s for customer %d", kafka.TopicCustomerCreated, customer.ID)
	return nil
}

func (p *noopCustomerProducer) PublishCustomerUpdated(_ context.Context, customer domain.Customer) error {
	p.log.Debug("Kafka disabled, skipping %s for customer %d", kafka.TopicCustomerUpdated, customer.ID)
	return nil
}

func (p *noopCustomerProducer) PublishCustomerDeleted(_ context.Context, customer domain.Customer) error {
	p.log.Debug("Kafka disabled, skipping %s for customer %d", kafka.TopicCustomerDeleted, customer.ID)
	return nil
}

func (p *noopCustomerProducer) Close() error {
	return nil
}
