package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jwebster45206/albert/pkg/state"
)

// MemoryStorage keeps game plans in process. It is used when no Redis URL is
// configured, and as a test double.
type MemoryStorage struct {
	mu        sync.RWMutex
	gameplans map[uuid.UUID][]byte
	pingError error
}

// Ensure MemoryStorage implements Storage interface
var _ Storage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		gameplans: make(map[uuid.UUID][]byte),
	}
}

// SetPingError configures Ping to fail with err. Nil restores success.
func (m *MemoryStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MemoryStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MemoryStorage) Close() error {
	return nil
}

// SaveGamePlan stores a serialized copy, so later changes to gp are not saved.
func (m *MemoryStorage) SaveGamePlan(ctx context.Context, id uuid.UUID, gp *state.GamePlan) error {
	if gp == nil {
		return ErrNilGamePlan
	}
	data, err := json.Marshal(gp)
	if err != nil {
		return fmt.Errorf("failed to marshal gameplan: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gameplans[id] = data
	return nil
}

func (m *MemoryStorage) LoadGamePlan(ctx context.Context, id uuid.UUID) (*state.GamePlan, error) {
	m.mu.RLock()
	data, exists := m.gameplans[id]
	m.mu.RUnlock()
	if !exists {
		return nil, nil // Return nil for not found
	}

	var gp state.GamePlan
	if err := json.Unmarshal(data, &gp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gameplan: %w", err)
	}
	return &gp, nil
}

func (m *MemoryStorage) DeleteGamePlan(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.gameplans, id)
	return nil
}
