package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"github.com/Dhoini/Tims-microservice/pkg/logger"
)

// Topics for entity change events
const (
	TopicCustomerCreated = "customer.created"
	TopicCustomerUpdated = "customer.updated"
	TopicCustomerDeleted = "customer.deleted"
	TopicOrderCreated    = "order.created"
	TopicOrderUpdated    = "order.updated"
	TopicOrderDeleted    = "order.deleted"
)

// RecordEvent is the payload published for every entity mutation
type RecordEvent struct {
	Entity    string    `json:"entity"`
	RecordID  int       `json:"record_id"`
	Record    any       `json:"record,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RecordProducer publishes entity change events. Publishing is
// best-effort; callers log failures and never fail the request over
// them.
type RecordProducer interface {
	Publish(ctx context.Context, topic, entity string, recordID int, record any) error
	Close() error
}

type kafkaRecordProducer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
}

// NewKafkaRecordProducer wraps a sarama sync producer
func NewKafkaRecordProducer(producer sarama.SyncProducer, log *logger.Logger) RecordProducer {
	return &kafkaRecordProducer{
		producer: producer,
		log:      log,
	}
}

// Publish sends one entity change event to the given topic. The record
// id keys the message so all events for one record land on the same
// partition.
func (p *kafkaRecordProducer) Publish(ctx context.Context, topic, entity string, recordID int, record any) error {
	event := RecordEvent{
		Entity:    entity,
		RecordID:  recordID,
		Record:    record,
		Timestamp: time.Now(),
	}

	messageValue, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal record event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(strconv.Itoa(recordID)),
		Value: sarama.ByteEncoder(messageValue),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event_type"),
				Value: []byte(topic),
			},
		},
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish record event: %w", err)
	}

	p.log.Debug("Published record event to topic %s: partition=%d offset=%d",
		topic, partition, offset)

	return nil
}

// Close closes the underlying producer
func (p *kafkaRecordProducer) Close() error {
	return p.producer.Close()
}

// noopRecordProducer drops every event. Used when no brokers are
// configured so the service runs standalone.
type noopRecordProducer struct{}

// NewNoopRecordProducer creates a producer that discards events
func NewNoopRecordProducer() RecordProducer {
	return noopRecordProducer{}
}

func (noopRecordProducer) Publish(ctx context.Context, topic, entity string, recordID int, record any) error {
	return nil
}

func (noopRecordProducer) Close() error { return nil }
