package services

import (
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"github.com/KirkDiggler/loadout-planner/internal/repositories/builds"
	"github.com/KirkDiggler/loadout-planner/internal/services/planner"
	"go.uber.org/zap"
)

// Provider holds all service instances
type Provider struct {
	PlannerService planner.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog         *catalog.Catalog // Required
	BuildRepository builds.Repository
	Logger          *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	buildRepo := cfg.BuildRepository
	if buildRepo == nil {
		buildRepo = builds.NewInMemoryRepository()
	}

	plannerService := planner.NewService(&planner.ServiceConfig{
		Repository: buildRepo,
		Catalog:    cfg.Catalog,
		Logger:     cfg.Logger,
	})

	return &Provider{
		PlannerService: plannerService,
	}
}
