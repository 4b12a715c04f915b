package repositories

import (
	"context"

	"asx-vms/rosterd/internal/models/entities"
	"asx-vms/rosterd/internal/roster"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

const countPilotsByStatus = `
	SELECT COUNT(*) FROM pilots WHERE suspended = $1
	`

// RosterStatsRepository serves the dashboard counters over the raw sqlx
// pool instead of going through GORM.
type RosterStatsRepository struct {
	db *sqlx.DB
}

func NewRosterStatsRepository(db *sqlx.DB) *RosterStatsRepository {
	return &RosterStatsRepository{db}
}

// CountByStatus returns how many pilots hold the given suspended flag.
func (r *RosterStatsRepository) CountByStatus(ctx context.Context, suspended bool) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, countPilotsByStatus, suspended); err != nil {
		return 0, roster.NewTransportError("failed to count pilots", err)
	}
	return count, nil
}

// Summary runs both bucket counts concurrently and assembles the
// dashboard partition.
func (r *RosterStatsRepository) Summary(ctx context.Context) (*entities.RosterSummary, error) {
	var summary entities.RosterSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := r.CountByStatus(gctx, false)
		summary.ActiveCount = n
		return err
	})
	g.Go(func() error {
		n, err := r.CountByStatus(gctx, true)
		summary.SuspendedCount = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}
