// Package redis contains a Redis implementation of the snapshot store.
// It suits boards whose "local" store is a Redis instance on the same host.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/example/housekeeping/internal/adapters/snapshot"
	"github.com/example/housekeeping/internal/ports/secondary"
)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a Redis client from opts.
func NewClient(opts Options) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
}

// Ping checks that the Redis server answers.
func Ping(ctx context.Context, client *goredis.Client) error {
	return client.Ping(ctx).Err()
}

// SnapshotStore implements secondary.SnapshotStore with GET/SET on one key.
type SnapshotStore struct {
	client *goredis.Client
	key    string
	logger *zap.Logger
}

// NewSnapshotStore creates a new Redis snapshot store writing under key.
func NewSnapshotStore(client *goredis.Client, key string, logger *zap.Logger) *SnapshotStore {
	if key == "" {
		key = snapshot.DefaultKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotStore{client: client, key: key, logger: logger}
}

// Load reads the snapshot stored under the store's key.
func (s *SnapshotStore) Load(ctx context.Context) ([]*secondary.RoomRecord, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return []*secondary.RoomRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", s.key, err)
	}

	rooms, err := snapshot.Decode(data)
	if err != nil {
		s.logger.Warn("ignoring unreadable snapshot", zap.String("key", s.key), zap.Error(err))
		return []*secondary.RoomRecord{}, nil
	}
	return rooms, nil
}

// Save overwrites the snapshot stored under the store's key. No TTL is set.
func (s *SnapshotStore) Save(ctx context.Context, rooms []*secondary.RoomRecord) error {
	data, err := snapshot.Encode(rooms)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", s.key, err)
	}
	return nil
}

// Ensure SnapshotStore implements the interface.
var _ secondary.SnapshotStore = (*SnapshotStore)(nil)
