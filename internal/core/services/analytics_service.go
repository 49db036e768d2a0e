package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/core/analytics"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
	"github.com/patrickmn/go-cache"
)

// DefaultAnalyticsCacheTTL bounds how long a memoised result may be served.
const DefaultAnalyticsCacheTTL = 5 * time.Minute

// analyticsService implements the AnalyticsSvc interface
type analyticsService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	cache           *cache.Cache

	// generation is bumped by Invalidate; a result computed under an older
	// generation is returned to its caller but never cached.
	mu         sync.Mutex
	generation uint64
}

// AnalyticsServiceOption is a functional option for configuring the analytics service
type AnalyticsServiceOption func(*analyticsService)

// WithAnalyticsCacheTTL sets how long results are memoised. Zero or negative disables caching.
func WithAnalyticsCacheTTL(ttl time.Duration) AnalyticsServiceOption {
	return func(s *analyticsService) {
		if ttl <= 0 {
			s.cache = nil
			return
		}
		s.cache = cache.New(ttl, 2*ttl)
	}
}

// NewAnalyticsService creates a new analytics service with the provided options
func NewAnalyticsService(repo portsrepo.TransactionReader, options ...AnalyticsServiceOption) portssvc.AnalyticsSvc {
	svc := &analyticsService{
		transactionRepo: repo,
		cache:           cache.New(DefaultAnalyticsCacheTTL, 2*DefaultAnalyticsCacheTTL),
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.AnalyticsSvc = (*analyticsService)(nil)

// GetAnalytics aggregates the transactions inside r, serving memoised results when present.
func (s *analyticsService) GetAnalytics(ctx context.Context, r domain.DateRange) (*domain.AnalyticsResult, error) {
	key := r.Key()
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			res := cached.(domain.AnalyticsResult)
			s.LogDebug(ctx, "Analytics served from cache", slog.String("range", key))
			return copyResult(res), nil
		}
	}

	gen := s.currentGeneration()
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for analytics", slog.String("range", key))
		return nil, fmt.Errorf("failed to compute analytics: %w", err)
	}

	res := analytics.Aggregate(txns, r)
	s.store(key, gen, res)

	s.LogDebug(ctx, "Analytics computed",
		slog.String("range", key),
		slog.Int("transaction_count", res.TransactionCount),
		slog.Int("total_days", res.TotalDays))
	return copyResult(res), nil
}

// Invalidate drops every memoised result.
func (s *analyticsService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if s.cache != nil {
		s.cache.Flush()
	}
}

func (s *analyticsService) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *analyticsService) store(key string, gen uint64, res domain.AnalyticsResult) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.generation {
		s.cache.SetDefault(key, res)
	}
}

// copyResult keeps callers from mutating the cached trend slice.
func copyResult(res domain.AnalyticsResult) *domain.AnalyticsResult {
	res.DailyTrend = append(make([]domain.DailyTrendPoint, 0, len(res.DailyTrend)), res.DailyTrend...)
	return &res
}
