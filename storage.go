package backdrop

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coverkit/backdrop/internal/kv"
)

// Storage is the persistent key-value collaborator. Implementations must
// tolerate being called on every committed mutation; the store treats a
// failed Set as a logged no-op, never a hard error.
type Storage interface {
	// Get returns the value for key, or ok=false when the key is absent
	// or the backend is unavailable.
	Get(key string) (value string, ok bool)
	// Set stores value under key.
	Set(key, value string) error
}

// MemoryStorage is a map-backed Storage, used as the default backend and
// in tests. It is not safe for concurrent use; neither is the store that
// owns it.
type MemoryStorage map[string]string

func (m MemoryStorage) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MemoryStorage) Set(key, value string) error {
	m[key] = value
	return nil
}

// sqliteStorage adapts the context-based internal/kv store to the
// Storage interface. Lookup errors degrade to a miss; the caller falls
// back to defaults.
type sqliteStorage struct {
	ctx context.Context
	kv  *kv.Store
}

// OpenSQLiteStorage opens (creating if needed) a sqlite-backed Storage at
// path. ctx bounds every subsequent Get/Set issued through the returned
// Storage.
func OpenSQLiteStorage(ctx context.Context, path string) (Storage, error) {
	st, err := kv.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return &sqliteStorage{ctx: ctx, kv: st}, nil
}

func (s *sqliteStorage) Get(key string) (string, bool) {
	v, err := s.kv.Get(s.ctx, key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *sqliteStorage) Set(key, value string) error {
	return s.kv.Set(s.ctx, key, value)
}

// encodeState serializes a state for persistence.
func encodeState(s BackgroundState) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode state: %w", err)
	}
	return string(b), nil
}

// decodeState deserializes a persisted state. The result still has to
// pass Validate before adoption.
func decodeState(raw string) (BackgroundState, error) {
	var s BackgroundState
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return BackgroundState{}, fmt.Errorf("decode state: %w", err)
	}
	return s, nil
}
