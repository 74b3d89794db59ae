package services

import (
	"github.com/lunebudget/true_cost_app/internal/classifier"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
	"github.com/lunebudget/true_cost_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	expenseClassifier := classifier.NewClassifierFromConfig(cfg)

	container.Recording = NewRecordingService(repos.TransactionRepo, repos.AssetRepo, expenseClassifier)
	container.Depreciation = NewDepreciationService(repos.AssetRepo, repos.DepreciationRepo)
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.AssetRepo, repos.DepreciationRepo, container.Depreciation)
	container.Asset = NewAssetService(repos.AssetRepo)

	return container
}
