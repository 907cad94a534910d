// Package kvstore keeps asset records in redis as JSON strings.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"assetgate/internal/domain/model"
	"assetgate/internal/domain/repository/database"
)

type Store struct {
	redis        *redis.Client
	prefix       string
	queryTimeout time.Duration
}

func Connect(cfg Config) (*Store, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	timeout := time.Duration(cfg.QueryTimeout) * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, err
	}

	return &Store{
		redis:        rdb,
		prefix:       cfg.KeyPrefix,
		queryTimeout: timeout,
	}, nil
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) GetByID(ctx context.Context, id string) (*model.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	raw, err := s.redis.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, database.ErrNotFound
		}

		return nil, err
	}

	var rec model.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrCorruptRecord, err)
	}

	return &rec, nil
}

// Write replaces the value of id; SET has last-write-wins semantics.
func (s *Store) Write(ctx context.Context, id string, record *model.Record) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return s.redis.Set(ctx, s.key(id), raw, 0).Err()
}

func (s *Store) Stop() error {
	return s.redis.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}
