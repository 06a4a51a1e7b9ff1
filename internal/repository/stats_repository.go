package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	PublishedSermons        int
	PublishedEvents         int
	UpcomingEvents          int
	UnreadMessages          int
	ActiveSubscribers       int
	PendingMinistryRequests int
	MinistryMembers         int
}

// MinistryStats aggregates the ministry overview counters.
type MinistryStats struct {
	TotalRequests     int
	PendingRequests   int
	ApprovedRequests  int
	TotalMembers      int
	MembersByMinistry map[string]int
}

// StatsRepository serves the aggregate count queries backing the admin
// dashboard and the ministry overview.
type StatsRepository interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	Ministry(ctx context.Context) (*MinistryStats, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository returns a Postgres-backed implementation.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}

func (r *statsRepository) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var (
		stats DashboardStats
		err   error
	)

	if stats.PublishedSermons, err = r.count(ctx, `SELECT COUNT(*) FROM sermons WHERE published`); err != nil {
		return nil, err
	}
	if stats.PublishedEvents, err = r.count(ctx, `SELECT COUNT(*) FROM events WHERE published`); err != nil {
		return nil, err
	}
	if stats.UpcomingEvents, err = r.count(ctx,
		`SELECT COUNT(*) FROM events WHERE published AND start_date >= $1`, time.Now()); err != nil {
		return nil, err
	}
	if stats.UnreadMessages, err = r.count(ctx,
		`SELECT COUNT(*) FROM messages WHERE status=$1`, domain.MessageStatusUnread); err != nil {
		return nil, err
	}
	if stats.ActiveSubscribers, err = r.count(ctx,
		`SELECT COUNT(*) FROM subscribers WHERE status=$1`, domain.SubscriberStatusActive); err != nil {
		return nil, err
	}
	if stats.PendingMinistryRequests, err = r.count(ctx,
		`SELECT COUNT(*) FROM ministry_requests WHERE status=$1`, domain.MinistryRequestPending); err != nil {
		return nil, err
	}
	if stats.MinistryMembers, err = r.count(ctx, `SELECT COUNT(*) FROM ministry_members`); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) Ministry(ctx context.Context) (*MinistryStats, error) {
	stats := &MinistryStats{MembersByMinistry: map[string]int{}}
	var err error

	if stats.TotalRequests, err = r.count(ctx, `SELECT COUNT(*) FROM ministry_requests`); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = r.count(ctx,
		`SELECT COUNT(*) FROM ministry_requests WHERE status=$1`, domain.MinistryRequestPending); err != nil {
		return nil, err
	}
	if stats.ApprovedRequests, err = r.count(ctx,
		`SELECT COUNT(*) FROM ministry_requests WHERE status=$1`, domain.MinistryRequestApproved); err != nil {
		return nil, err
	}
	if stats.TotalMembers, err = r.count(ctx, `SELECT COUNT(*) FROM ministry_members`); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT ministry, COUNT(*) FROM ministry_members GROUP BY ministry`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ministry string
		var n int
		if err := rows.Scan(&ministry, &n); err != nil {
			return nil, err
		}
		stats.MembersByMinistry[ministry] = n
	}
	return stats, rows.Err()
}
