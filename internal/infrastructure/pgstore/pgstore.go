// Package pgstore keeps asset records in a postgres jsonb column.
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"assetgate/internal/domain/model"
	"assetgate/internal/domain/repository/database"
)

const DefaultTable = "asset_record"

var tableName = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

type Store struct {
	pool         *pgxpool.Pool
	table        string
	queryTimeout time.Duration
}

func Connect(ctx context.Context, cfg Config) (*Store, error) {
	table := cfg.Table
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parse database URI: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	s := &Store{
		pool:         pool,
		table:        table,
		queryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := s.init(ctx); err != nil {
		pool.Close()

		return nil, err
	}

	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	_, err := s.pool.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id         TEXT PRIMARY KEY,
	record     JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, s.table))
	if err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}

	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*model.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var raw []byte
	err := s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT record FROM %s WHERE id = $1`, s.table), id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

// Write upserts the row of id so that the last write wins.
func (s *Store) Write(ctx context.Context, id string, record *model.Record) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (id, record, updated_at) VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at`, s.table),
		id, raw)

	return err
}

func (s *Store) Stop() {
	s.pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
