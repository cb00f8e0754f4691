// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/housekeeping/internal/adapters/snapshot"
	"github.com/example/housekeeping/internal/ports/secondary"
)

// SnapshotStore implements secondary.SnapshotStore on the kv table.
type SnapshotStore struct {
	db     *sql.DB
	key    string
	logger *zap.Logger
}

// NewSnapshotStore creates a new SQLite snapshot store writing under key.
func NewSnapshotStore(db *sql.DB, key string, logger *zap.Logger) *SnapshotStore {
	if key == "" {
		key = snapshot.DefaultKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotStore{db: db, key: key, logger: logger}
}

// Load reads the snapshot stored under the store's key.
func (s *SnapshotStore) Load(ctx context.Context) ([]*secondary.RoomRecord, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM kv WHERE key = ?",
		s.key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return []*secondary.RoomRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	rooms, err := snapshot.Decode([]byte(value))
	if err != nil {
		s.logger.Warn("ignoring unreadable snapshot", zap.String("key", s.key), zap.Error(err))
		return []*secondary.RoomRecord{}, nil
	}
	return rooms, nil
}

// Save overwrites the snapshot stored under the store's key.
func (s *SnapshotStore) Save(ctx context.Context, rooms []*secondary.RoomRecord) error {
	data, err := snapshot.Encode(rooms)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// Ensure SnapshotStore implements the interface.
var _ secondary.SnapshotStore = (*SnapshotStore)(nil)
