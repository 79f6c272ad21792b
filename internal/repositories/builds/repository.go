package builds

//go:generate mockgen -destination=mock/mock_repository.go -package=mockbuilds -source=repository.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
)

// Repository defines build persistence
type Repository interface {
	// Create stores a new build, assigning an ID when it has none
	Create(ctx context.Context, b *build.Build) error

	// Get retrieves a build by ID
	Get(ctx context.Context, id string) (*build.Build, error)

	// ListByOwner retrieves every build of an owner
	ListByOwner(ctx context.Context, ownerID string) ([]*build.Build, error)

	// Update replaces an existing build
	Update(ctx context.Context, b *build.Build) error

	// Delete removes a build
	Delete(ctx context.Context, id string) error
}

// TimeProvider supplies timestamps for created/updated fields
type TimeProvider interface {
	Now() time.Time
}

type utcClock struct{}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock returns a TimeProvider backed by the wall clock
func SystemClock() TimeProvider {
	return utcClock{}
}
