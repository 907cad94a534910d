package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"

	"assetgate/internal/domain/dto"
	"assetgate/internal/infrastructure/broker"
)

// HandleEvents follows the registration stream through the configured
// consumer group and logs each event.
func HandleEvents(args []string) {
	cfg := loadConfig(args)

	if !cfg.BrokerEnabled() {
		ExitOnError(errors.New("BROKER_URI is not set"))
	}

	client, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hostname, _ := os.Hostname()
	consumer := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	messages, err := broker.NewReceiver(client).Messages(ctx, consumer)
	if err != nil {
		ExitOnError(err)
	}

	logger.Info("following registration events", "stream", cfg.BrokerConfig.StreamName, "consumer", consumer)

	for msg := range messages {
		var event dto.RegisteredEvent
		if err := json.Unmarshal([]byte(msg.Body()), &event); err != nil {
			logger.Error("undecodable registration event", "err", err)
			_ = msg.Nack()

			continue
		}

		logger.Info("asset registered",
			"id", event.ID,
			"default_variant", event.DefaultVariant,
			"variants", event.Variants,
			"registered_at", time.Unix(event.RegisteredAt, 0).UTC())

		if err := msg.Ack(); err != nil {
			logger.Error("failed to ack registration event", "id", event.ID, "err", err)
		}
	}
}
