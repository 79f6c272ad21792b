package planner

//go:generate mockgen -destination=mock/mock_service.go -package=mockplanner -source=service.go

import (
	"context"

	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/compatibility"
	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/setbonus"
	plerr "github.com/KirkDiggler/loadout-planner/internal/errors"
	"github.com/KirkDiggler/loadout-planner/internal/repositories/builds"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service defines the build planner interface
type Service interface {
	// CreateBuild stores a new build
	CreateBuild(ctx context.Context, b *build.Build) (*build.Build, error)

	// GetBuild fetches a build by ID
	GetBuild(ctx context.Context, id string) (*build.Build, error)

	// ListBuilds returns every build of an owner
	ListBuilds(ctx context.Context, ownerID string) ([]*build.Build, error)

	// Evaluate loads a build and computes its set bonuses
	Evaluate(ctx context.Context, id string) (*Evaluation, error)

	// EvaluateBuild computes the set bonuses of an in-memory build
	EvaluateBuild(b *build.Build) *Evaluation

	// EvaluateAll evaluates several stored builds concurrently
	EvaluateAll(ctx context.Context, ids []string) ([]*Evaluation, error)

	// SlotEnhancement places slot at index of the named power, or clears
	// it when slot is nil, and returns the new evaluation
	SlotEnhancement(ctx context.Context, id, powerName string, index int, slot *build.Slot) (*Evaluation, error)

	// AddSlot appends an empty slot to the named power
	AddSlot(ctx context.Context, id, powerName string) (*Evaluation, error)

	// CompatibleSets lists the sets of a category the named power can slot
	CompatibleSets(ctx context.Context, id, powerName string, category catalog.SetCategory) ([]compatibility.SetMatch, error)
}

// Evaluation is the result of one recompute pass over a build
type Evaluation struct {
	BuildID     string                           `json:"build_id"`
	Totals      map[string]float64               `json:"totals"`
	Breakdown   map[string][]setbonus.BucketView `json:"breakdown"`
	Active      []setbonus.ActiveBonus           `json:"active"`
	Diagnostics []setbonus.Diagnostic            `json:"diagnostics,omitempty"`
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository builds.Repository // Required
	Catalog    *catalog.Catalog  // Required
	Logger     *zap.Logger
}

type service struct {
	repository builds.Repository
	catalog    *catalog.Catalog
	collector  *setbonus.Collector
	filter     *compatibility.Filter
	logger     *zap.Logger
}

// NewService creates a new planner service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		repository: cfg.Repository,
		catalog:    cfg.Catalog,
		collector: setbonus.NewCollector(&setbonus.CollectorConfig{
			Sets:   cfg.Catalog,
			Logger: logger.Named("collector"),
		}),
		filter: compatibility.NewFilter(&compatibility.FilterConfig{
			Catalog: cfg.Catalog,
			Logger:  logger.Named("compatibility"),
		}),
		logger: logger,
	}
}

func (s *service) CreateBuild(ctx context.Context, b *build.Build) (*build.Build, error) {
	if b == nil {
		return nil, plerr.InvalidArgument("build is required")
	}
	if b.Name == "" {
		return nil, plerr.InvalidArgument("build name is required")
	}

	if err := s.repository.Create(ctx, b); err != nil {
		return nil, plerr.Wrap(err, "failed to create build")
	}

	s.logger.Info("build created",
		zap.String("build_id", b.ID),
		zap.String("owner_id", b.OwnerID))
	return b, nil
}

func (s *service) GetBuild(ctx context.Context, id string) (*build.Build, error) {
	if id == "" {
		return nil, plerr.InvalidArgument("build ID is required")
	}
	return s.repository.Get(ctx, id)
}

func (s *service) ListBuilds(ctx context.Context, ownerID string) ([]*build.Build, error) {
	if ownerID == "" {
		return nil, plerr.InvalidArgument("owner ID is required")
	}
	return s.repository.ListByOwner(ctx, ownerID)
}

func (s *service) Evaluate(ctx context.Context, id string) (*Evaluation, error) {
	b, err := s.GetBuild(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.EvaluateBuild(b), nil
}

// EvaluateBuild collects and aggregates on a tracker owned by this call
func (s *service) EvaluateBuild(b *build.Build) *Evaluation {
	bonuses, diagnostics := s.collector.CollectAllSetBonuses(b)

	tracker := setbonus.NewTracker()
	totals := tracker.Aggregate(bonuses)

	eval := &Evaluation{
		Totals:      totals,
		Breakdown:   tracker.Breakdowns(),
		Active:      tracker.ActiveBonuses(),
		Diagnostics: diagnostics,
	}
	if b != nil {
		eval.BuildID = b.ID
	}

	if len(diagnostics) > 0 {
		s.logger.Warn("build has unresolved set bonuses",
			zap.String("build_id", eval.BuildID),
			zap.Int("diagnostics", len(diagnostics)))
	}
	return eval
}

func (s *service) EvaluateAll(ctx context.Context, ids []string) ([]*Evaluation, error) {
	results := make([]*Evaluation, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			eval, err := s.Evaluate(gctx, id)
			if err != nil {
				return err
			}
			results[i] = eval
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *service) SlotEnhancement(ctx context.Context, id, powerName string, index int, slot *build.Slot) (*Evaluation, error) {
	return s.mutatePower(ctx, id, powerName, func(power *build.Power, group *build.PowerGroup) error {
		if slot.IsSetItem() {
			if err := s.checkSlottable(power, group, slot.SetID); err != nil {
				return err
			}
		}
		return power.SetSlot(index, slot)
	})
}

func (s *service) AddSlot(ctx context.Context, id, powerName string) (*Evaluation, error) {
	return s.mutatePower(ctx, id, powerName, func(power *build.Power, _ *build.PowerGroup) error {
		return power.AddSlot()
	})
}

func (s *service) CompatibleSets(ctx context.Context, id, powerName string, category catalog.SetCategory) ([]compatibility.SetMatch, error) {
	b, err := s.GetBuild(ctx, id)
	if err != nil {
		return nil, err
	}

	power, group, err := b.FindPower(powerName)
	if err != nil {
		return nil, err
	}

	return s.filter.CompatibleSets(power, group.PowersetID, category), nil
}

// mutatePower loads the build, applies fn to the named power, stores the
// result and recomputes
func (s *service) mutatePower(ctx context.Context, id, powerName string, fn func(*build.Power, *build.PowerGroup) error) (*Evaluation, error) {
	b, err := s.GetBuild(ctx, id)
	if err != nil {
		return nil, err
	}

	power, group, err := b.FindPower(powerName)
	if err != nil {
		return nil, err
	}

	if err := fn(power, group); err != nil {
		return nil, err
	}

	if err := s.repository.Update(ctx, b); err != nil {
		return nil, plerr.Wrap(err, "failed to save build")
	}

	return s.EvaluateBuild(b), nil
}

func (s *service) checkSlottable(power *build.Power, group *build.PowerGroup, setID string) error {
	set, ok := s.catalog.Set(setID)
	if !ok {
		return plerr.NotFoundf("item set '%s' not found", setID).
			WithMeta("set_id", setID)
	}

	pc := s.filter.ContextFor(power, group.PowersetID)
	if !compatibility.CanSlot(set, power.AllowedEnhancements, pc) {
		return plerr.InvalidArgumentf("%s cannot slot %s (%s)", power.Name, set.Name, set.Type).
			WithMeta("set_id", setID).
			WithMeta("power", power.Name)
	}
	return nil
}
