package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jwebster45206/albert/pkg/state"
)

var ErrNilGamePlan = errors.New("gameplan cannot be nil")

// Storage persists game sessions between runs.
// Load returns nil, nil when no game is stored under the id.
type Storage interface {
	Ping(ctx context.Context) error
	Close() error

	SaveGamePlan(ctx context.Context, id uuid.UUID, gp *state.GamePlan) error
	LoadGamePlan(ctx context.Context, id uuid.UUID) (*state.GamePlan, error)
	DeleteGamePlan(ctx context.Context, id uuid.UUID) error
}

func gamePlanKey(id uuid.UUID) string {
	return "gameplan:" + id.String()
}
