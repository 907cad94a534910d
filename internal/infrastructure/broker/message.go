package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const ackTimeout = 5 * time.Second

// RedisMessage is one stream entry read through a consumer group.
type RedisMessage struct {
	stream      string
	group       string
	consumer    string
	id          string
	body        string
	redisClient *redis.Client
}

func (m *RedisMessage) Body() string {
	return m.body
}

func (m *RedisMessage) Ack() error {
	ctx, cancel := context.WithTimeout(context.Background(), ackTimeout)
	defer cancel()

	return m.redisClient.XAck(ctx, m.stream, m.group, m.id).Err()
}

// Nack leaves the entry in the pending list of the consumer.
func (m *RedisMessage) Nack() error {
	return nil
}
