package eventbus

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Publish(ctx context.Context, key string, event interface{}) error
	Close() error
}

var Instance Provider

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type impl struct {
	writer writer
}

// Connect leaves Instance nil when no brokers are configured
func Connect(brokers, topic, username, password string, tlsEnabled bool) {
	addrs := splitBrokers(brokers)
	if len(addrs) == 0 {
		log.Info("kafka brokers not configured, event bus disabled")
		return
	}
	transport := &kafka.Transport{}
	if username != "" {
		transport.SASL = plain.Mechanism{
			Username: username,
			Password: password,
		}
	}
	if tlsEnabled {
		transport.TLS = &tls.Config{}
	}
	Instance = newProducer(&kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireAll,
		Async:                  false,
		Transport:              transport,
		WriteTimeout:           10 * time.Second,
		AllowAutoTopicCreation: true,
	})
	log.WithField("topic", topic).Info("kafka producer initialized")
}

func newProducer(w writer) Provider {
	return &impl{writer: w}
}

func (i *impl) Publish(ctx context.Context, key string, event interface{}) error {
	if i == nil || i.writer == nil {
		return nil
	}
	value, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode event")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = i.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish event")
	}
	return nil
}

func (i *impl) Close() error {
	if i == nil || i.writer == nil {
		return nil
	}
	return i.writer.Close()
}

func splitBrokers(brokers string) []string {
	result := []string{}
	for _, item := range strings.Split(brokers, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
