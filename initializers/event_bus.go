package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"tpo-portal-backend/config"
	eventbus "tpo-portal-backend/lib/event-bus"
)

func InitEventBus(ctx context.Context) {
	eventbus.Connect(config.Conf.Kafka.Brokers, config.Conf.Kafka.Topic,
		config.Conf.Kafka.Username, config.Conf.Kafka.Password, *config.Conf.Kafka.TLS)
	if eventbus.Instance == nil {
		return
	}
	go func() {
		<-ctx.Done()
		if err := eventbus.Instance.Close(); err != nil {
			log.WithError(err).Error("failed to close kafka producer")
		}
	}()
}
