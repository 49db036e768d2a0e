package services

import (
	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
	"github.com/SscSPs/fruit_shop_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher and renderer may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portssvc.EventPublisher, renderer portssvc.ReportRenderer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Analytics first: every transaction mutation must flush its cache.
	// A SQL store can be written by other processes (fruitshopctl), whose mutations
	// never reach this cache, so results are only memoised for the memory driver.
	cacheTTL := cfg.AnalyticsCacheTTL
	if cfg.StorageDriver != config.StorageMemory {
		cacheTTL = 0
	}
	container.Analytics = NewAnalyticsService(
		repos.TransactionRepo,
		WithAnalyticsCacheTTL(cacheTTL),
	)

	txnOptions := []TransactionServiceOption{
		WithMutationHook(container.Analytics.Invalidate),
	}
	if publisher != nil {
		txnOptions = append(txnOptions, WithEventPublisher(publisher))
	}
	container.Transaction = NewTransactionService(repos.TransactionRepo, txnOptions...)

	container.Export = NewExportService(
		repos.TransactionRepo,
		renderer,
		WithReportTitle(cfg.ReportTitle),
	)

	return container
}
