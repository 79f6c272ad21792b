package builds

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	plerr "github.com/KirkDiggler/loadout-planner/internal/errors"
	"github.com/KirkDiggler/loadout-planner/internal/uuid"
)

// InMemoryRepository keeps builds in a map. Useful for tests and for
// running without Redis.
type InMemoryRepository struct {
	mu            sync.RWMutex
	builds        map[string]*build.Build
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		builds:        make(map[string]*build.Build),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		timeProvider:  SystemClock(),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, b *build.Build) error {
	if b == nil {
		return plerr.InvalidArgument("build cannot be nil")
	}
	if b.OwnerID == "" {
		return plerr.InvalidArgument("build owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		b.ID = r.uuidGenerator.New()
	}
	if _, exists := r.builds[b.ID]; exists {
		return plerr.AlreadyExistsf("build with ID '%s' already exists", b.ID).
			WithMeta("build_id", b.ID)
	}

	now := r.timeProvider.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	stored, err := cloneBuild(b)
	if err != nil {
		return err
	}
	r.builds[b.ID] = stored
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*build.Build, error) {
	if id == "" {
		return nil, plerr.InvalidArgument("build ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.builds[id]
	if !exists {
		return nil, plerr.NotFoundf("build with ID '%s' not found", id).
			WithMeta("build_id", id)
	}
	return cloneBuild(b)
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*build.Build, error) {
	if ownerID == "" {
		return nil, plerr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*build.Build
	for _, b := range r.builds {
		if b.OwnerID != ownerID {
			continue
		}
		c, err := cloneBuild(b)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, b *build.Build) error {
	if b == nil {
		return plerr.InvalidArgument("build cannot be nil")
	}
	if b.ID == "" {
		return plerr.InvalidArgument("build ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.builds[b.ID]
	if !exists {
		return plerr.NotFoundf("build with ID '%s' not found", b.ID).
			WithMeta("build_id", b.ID)
	}

	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = r.timeProvider.Now()

	stored, err := cloneBuild(b)
	if err != nil {
		return err
	}
	r.builds[b.ID] = stored
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return plerr.InvalidArgument("build ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builds[id]; !exists {
		return plerr.NotFoundf("build with ID '%s' not found", id).
			WithMeta("build_id", id)
	}
	delete(r.builds, id)
	return nil
}

// cloneBuild deep-copies a build so callers never share slot slices with
// the store
func cloneBuild(b *build.Build) (*build.Build, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, plerr.Wrap(err, "failed to copy build")
	}
	var out build.Build
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, plerr.Wrap(err, "failed to copy build")
	}
	return &out, nil
}
