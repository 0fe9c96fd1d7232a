package lib

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"rsud/src/config"
	"rsud/src/types"
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

var (
	producer   *kafka.Producer
	producerMu sync.Mutex
)

func getKafkaProducer() (*kafka.Producer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()
	if producer != nil {
		return producer, nil
	}
	broker := config.KafkaBroker()
	if broker == "" {
		return nil, errors.New("KAFKA_BROKER is not set")
	}
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": broker,
		"client.id":         "rsud-api",
		"acks":              "all",
	})
	if err != nil {
		log.Printf("Error on producer: %s\n", err.Error())
		return nil, err
	}
	go func() {
		for e := range p.Events() {
			if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
				log.Printf("[kafka] Delivery failed for %s: %s\n", *m.TopicPartition.Topic, m.TopicPartition.Error.Error())
			}
		}
	}()
	producer = p
	return p, nil
}

// KafkaProduceMessage publishes payload as JSON to topic. key selects the
// partition; registrations use the booking code so events for one patient
// visit stay ordered.
func KafkaProduceMessage(topic string, key string, payload any) error {
	p, err := getKafkaProducer()
	if err != nil {
		return err
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          value,
	}
	if key != "" {
		msg.Key = []byte(key)
	}
	if err := p.Produce(msg, nil); err != nil {
		log.Printf("[kafka] Error producing to %s: %s\n", topic, err.Error())
		return err
	}
	return nil
}

func KafkaClose() {
	producerMu.Lock()
	defer producerMu.Unlock()
	if producer == nil {
		return
	}
	producer.Flush(5000)
	producer.Close()
	producer = nil
}

// KafkaConsumer polls topics until ctx is cancelled and hands every message
// value to handler.
func KafkaConsumer(ctx context.Context, groupId string, topics []string, handler types.Handler) error {
	log.Println("Initializing kafka Consumer...")
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": config.KafkaBroker(),
		"group.id":          groupId,
		"auto.offset.reset": "smallest",
		"retry.backoff.ms":  100,
	})
	if err != nil {
		log.Printf("Error on consumer: %s\n", err.Error())
		return err
	}
	if err := c.SubscribeTopics(topics, nil); err != nil {
		log.Printf("Error on consumer: %s\n", err.Error())
		c.Close()
		return err
	}
	go func() {
		defer c.Close()
		log.Printf("[kafka] %s waiting for messages on %v...\n", groupId, topics)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			ev := c.Poll(100)
			switch e := ev.(type) {
			case *kafka.Message:
				handler(string(e.Value))
			case kafka.Error:
				log.Printf("[kafka] Error: %v\n", e)
				if e.IsFatal() {
					return
				}
			}
		}
	}()
	return nil
}
