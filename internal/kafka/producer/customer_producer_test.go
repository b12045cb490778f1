package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/kafka"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer() domain.Customer {
	return domain.Customer{
		ID:       12,
		FullName: "Ivan Ivanov",
		Email:    "ivanov@gmail.com",
		Phone:    "+380976544547",
		Created:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestProducer(t *testing.T) (*mocks.SyncProducer, CustomerProducer) {
	t.Helper()

	sp := mocks.NewSyncProducer(t, nil)
	p := NewKafkaCustomerProducer(sp, logger.NewNop())
	p.(*kafkaCustomerProducer).now = func() time.Time {
		return time.Date(2024, 5, 5, 5, 5, 5, 0, time.UTC)
	}
	return sp, p
}

func TestPublishCustomerCreatedPayload(t *testing.T) {
	sp, p := newTestProducer(t)

	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event CustomerEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.EventType != kafka.TopicCustomerCreated || event.CustomerID != 12 || event.Email != "ivanov@gmail.com" {
			return errors.New("unexpected event payload")
		}
		if event.EventID == "" {
			return errors.New("event id is empty")
		}
		return nil
	})

	require.NoError(t, p.PublishCustomerCreated(context.Background(), testCustomer()))
	require.NoError(t, sp.Close())
}

func TestPublishCustomerDeletedFlag(t *testing.T) {
	sp, p := newTestProducer(t)

	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event CustomerEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if !event.Deleted || event.EventType != kafka.TopicCustomerDeleted {
			return errors.New("expected deleted event")
		}
		return nil
	})

	c := testCustomer()
	c.MarkDeleted(time.Now())
	require.NoError(t, p.PublishCustomerDeleted(context.Background(), c))
	require.NoError(t, sp.Close())
}

func TestPublishFailure(t *testing.T) {
	sp, p := newTestProducer(t)

	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := p.PublishCustomerUpdated(context.Background(), testCustomer())
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, sp.Close())
}

func TestPublishCancelledContext(t *testing.T) {
	sp, p := newTestProducer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.PublishCustomerCreated(ctx, testCustomer())
	assert.ErrorIs(t, err, context.Canceled)
	require.NoError(t, sp.Close())
}

func TestNewCustomerEvent(t *testing.T) {
	at := time.Date(2024, 5, 5, 5, 5, 5, 0, time.UTC)
	event := NewCustomerEvent(kafka.TopicCustomerUpdated, testCustomer(), at)

	assert.Equal(t, kafka.TopicCustomerUpdated, event.EventType)
	assert.Equal(t, int64(12), event.CustomerID)
	assert.Equal(t, at, event.OccurredAt)
	assert.Len(t, event.EventID, 36)
}

func TestNoopProducer(t *testing.T) {
	p := NewNoopCustomerProducer(logger.NewNop())
	ctx := context.Background()

	assert.NoError(t, p.PublishCustomerCreated(ctx, testCustomer()))
	assert.NoError(t, p.PublishCustomerUpdated(ctx, testCustomer()))
	assert.NoError(t, p.PublishCustomerDeleted(ctx, testCustomer()))
	assert.NoError(t, p.Close())
}
