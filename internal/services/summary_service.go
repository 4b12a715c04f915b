package services

import (
	"context"
	"time"

	"asx-vms/rosterd/internal/common"
	"asx-vms/rosterd/internal/db/repositories"
	"asx-vms/rosterd/internal/metrics"
	"asx-vms/rosterd/internal/models/entities"
	"asx-vms/rosterd/internal/roster"
)

const summaryCacheKey = "roster_summary"

// SummaryService serves the dashboard active/suspended counters, cached
// briefly so every page load does not hit the database. Staleness up to
// the TTL is acceptable: the roster snapshot a caller holds carries no
// freshness token anyway.
type SummaryService struct {
	stats      *repositories.RosterStatsRepository
	cache      *common.CacheService
	metricsReg *metrics.MetricsRegistry
	ttl        time.Duration
}

func NewSummaryService(stats *repositories.RosterStatsRepository, cache *common.CacheService, metricsReg *metrics.MetricsRegistry) *SummaryService {
	return &SummaryService{
		stats:      stats,
		cache:      cache,
		metricsReg: metricsReg,
		ttl:        30 * time.Second,
	}
}

// GetSummary returns the current count partition, refreshing the roster
// gauges whenever the store is actually queried.
func (svc *SummaryService) GetSummary(ctx context.Context) (*entities.RosterSummary, error) {
	val, err := svc.cache.GetOrSet(summaryCacheKey, svc.ttl, func() (any, error) {
		summary, err := svc.stats.Summary(ctx)
		if err != nil {
			return nil, err
		}
		svc.metricsReg.PilotsActive.Set(float64(summary.ActiveCount))
		svc.metricsReg.PilotsSuspended.Set(float64(summary.SuspendedCount))
		return summary, nil
	})
	if err != nil {
		return nil, err
	}

	summary, ok := val.(*entities.RosterSummary)
	if !ok {
		return nil, roster.NewTransportError("unexpected cache entry for roster summary", nil)
	}
	return summary, nil
}

// Invalidate drops the cached summary after a mutation so the dashboard
// reflects it on the next read.
func (svc *SummaryService) Invalidate() {
	svc.cache.Delete(summaryCacheKey)
}
