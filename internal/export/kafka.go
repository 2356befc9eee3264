package export

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/msarvaro/gastro-sub000/internal/models"
)

// KafkaSink publishes snapshot records to a Kafka topic, one message per row.
// When the config names a fixed topic, every record goes there and the
// snapshot topic travels in a header instead.
type KafkaSink struct {
	producer   sarama.SyncProducer
	fixedTopic string
}

func NewKafkaSink(cfg models.KafkaConfig) (*KafkaSink, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.BrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("Kafka producer created with brokers %v", brokerList)
	return &KafkaSink{producer: producer, fixedTopic: cfg.Topic}, nil
}

func (k *KafkaSink) WriteSnapshot(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("Kafka producer is closed")
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	}
	if k.fixedTopic != "" {
		message.Topic = k.fixedTopic
		message.Headers = []sarama.RecordHeader{
			{Key: []byte("snapshot"), Value: []byte(topic)},
		}
	}

	_, _, err := k.producer.SendMessage(message)
	if err != nil {
		log.Printf("Failed to send message to topic %s: %v", message.Topic, err)
		return err
	}
	return nil
}

func (k *KafkaSink) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
