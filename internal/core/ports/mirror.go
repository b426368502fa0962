package ports

import (
	"context"
	"errors"

	"github.com/autofixpro/workshop-system/internal/core/domain"
)

// ErrNoSnapshot is returned by Mirror.Load when no snapshot has ever been
// saved (or the mirror was cleared).
var ErrNoSnapshot = errors.New("no mirror snapshot")

// Mirror is the local fallback copy of the entity snapshot, stored whole
// under one fixed key: read once at startup, rewritten wholesale after every
// mutation, never patched incrementally.
type Mirror interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap domain.Snapshot) error
	Clear(ctx context.Context) error
}
