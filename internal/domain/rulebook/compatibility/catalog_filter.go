package compatibility

import (
	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"go.uber.org/zap"
)

// FilterConfig holds the filter's dependencies
type FilterConfig struct {
	Catalog *catalog.Catalog // Required
	Logger  *zap.Logger
}

// Filter applies the compatibility rules to a catalog
type Filter struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewFilter creates a catalog filter
func NewFilter(cfg *FilterConfig) *Filter {
	if cfg == nil || cfg.Catalog == nil {
		panic("catalog is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Filter{
		catalog: cfg.Catalog,
		logger:  logger,
	}
}

// ContextFor builds the power context, looking up the owning powerset.
// An unknown powerset still yields a context; role inference then relies
// on the power alone.
func (f *Filter) ContextFor(power *build.Power, powersetID string) *PowerContext {
	powerset, ok := f.catalog.Powerset(powersetID)
	if !ok {
		f.logger.Debug("powerset not in catalog",
			zap.String("powerset_id", powersetID),
			zap.String("power", power.Name))
		powerset = nil
	}
	return &PowerContext{Power: power, Powerset: powerset}
}

// CompatibleSets lists the sets of a category the power can slot, with
// damage types refined by the power's role
func (f *Filter) CompatibleSets(power *build.Power, powersetID string, category catalog.SetCategory) []SetMatch {
	return f.match(power.AllowedEnhancements, f.ContextFor(power, powersetID), category)
}

// BrowseSets lists the sets of a category matching the allowed
// categories only, without role refinement
func (f *Filter) BrowseSets(allowed []string, category catalog.SetCategory) []SetMatch {
	return f.match(allowed, nil, category)
}

// CompatibleSetTypes counts the compatible sets of a category per type
func (f *Filter) CompatibleSetTypes(power *build.Power, powersetID string, category catalog.SetCategory) []TypeCount {
	return CountByType(f.CompatibleSets(power, powersetID, category))
}

func (f *Filter) match(allowed []string, pc *PowerContext, category catalog.SetCategory) []SetMatch {
	if allowed == nil {
		return nil
	}

	legal := LegalSetTypes(allowed, pc)

	var matches []SetMatch
	for _, set := range f.catalog.SetsInCategory(category) {
		if legal.Has(set.Type) {
			matches = append(matches, SetMatch{SetID: set.ID, Set: set})
		}
	}

	f.logger.Debug("filtered compatible sets",
		zap.String("category", string(category)),
		zap.Int("legal_types", len(legal)),
		zap.Int("matches", len(matches)))
	return matches
}
