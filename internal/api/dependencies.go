package api

import (
	"os"

	"asx-vms/rosterd/internal/common"
	"asx-vms/rosterd/internal/db"
	"asx-vms/rosterd/internal/db/repositories"
	"asx-vms/rosterd/internal/logging"
	"asx-vms/rosterd/internal/metrics"
	"asx-vms/rosterd/internal/notify"
	"asx-vms/rosterd/internal/services"
)

type Repositories struct {
	Pilot *repositories.PilotRepository
	Stats *repositories.RosterStatsRepository
}

type Services struct {
	Roster  *services.RosterService
	Summary *services.SummaryService
	Cache   *common.CacheService
	Queue   *common.RedisQueueService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services off the shared DB
// handles. Without REDIS_HOST, lifecycle events fall back to the logging
// dispatcher and the notification worker stays off.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Pilot: repositories.NewPilotRepository(db.PgDB),
		Stats: repositories.NewRosterStatsRepository(db.DB),
	}

	cacheSvc := common.NewCacheService(60, 600)

	var dispatcher notify.Dispatcher = notify.NoopDispatcher{}
	var queueSvc *common.RedisQueueService
	if os.Getenv("REDIS_HOST") != "" {
		queueSvc = common.NewRedisQueueService(common.NewRedisClient())
		dispatcher = notify.NewQueueDispatcher(queueSvc, metricsReg)
	} else {
		logging.Warn("REDIS_HOST not set, lifecycle events will only be logged")
	}

	svcs := &Services{
		Roster:  services.NewRosterService(repos.Pilot, dispatcher, metricsReg),
		Summary: services.NewSummaryService(repos.Stats, cacheSvc, metricsReg),
		Cache:   cacheSvc,
		Queue:   queueSvc,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
