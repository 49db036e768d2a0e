package repositories

import "context"

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade

	// Close releases the underlying storage handle. Nil for stores that hold no resources.
	Close func()
}

// HealthChecker is implemented by stores that can report backend reachability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
