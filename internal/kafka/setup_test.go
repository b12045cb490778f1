package kafka

import (
	"testing"

	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
)

func TestRequiredTopicsDefaults(t *testing.T) {
	topics := RequiredTopics(TopicSpec{})

	assert.Len(t, topics, 3)
	for _, tc := range topics {
		assert.Equal(t, 3, tc.NumPartitions)
		assert.Equal(t, 1, tc.ReplicationFactor)
	}
	assert.Equal(t, CustomerTopics(), getTopicNamesFromConfig(topics))
}

func TestMissingTopics(t *testing.T) {
	required := RequiredTopics(TopicSpec{Partitions: 1, ReplicationFactor: 1})

	missing := MissingTopics(required, map[string]bool{TopicCustomerCreated: true, "other": true})

	assert.Equal(t, []string{TopicCustomerUpdated, TopicCustomerDeleted}, getTopicNamesFromConfig(missing))
	assert.Empty(t, MissingTopics(required, map[string]bool{
		TopicCustomerCreated: true,
		TopicCustomerUpdated: true,
		TopicCustomerDeleted: true,
	}))
}

func TestValidateBrokerAddress(t *testing.T) {
	assert.NoError(t, ValidateBrokerAddress("kafka:9092"))
	assert.NoError(t, ValidateBrokerAddress(" localhost:29092 "))
	assert.Error(t, ValidateBrokerAddress(""))
	assert.Error(t, ValidateBrokerAddress("kafka"))
	assert.Error(t, ValidateBrokerAddress("kafka:port"))
}

func TestNewSaramaConfig(t *testing.T) {
	cfg := NewConfig([]string{"kafka:9092"}, "")
	sc := NewSaramaConfig(cfg, logger.NewNop())

	assert.Equal(t, "customer-service", sc.ClientID)
	assert.True(t, sc.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, sc.Producer.RequiredAcks)
	assert.NoError(t, sc.Validate())
}
