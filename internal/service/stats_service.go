package service

import (
	"context"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
)

// StatsService assembles the aggregate overviews for the admin panel.
type StatsService struct {
	stats   repository.StatsRepository
	sermons repository.SermonRepository
	events  repository.EventRepository
}

// NewStatsService builds the service.
func NewStatsService(stats repository.StatsRepository, sermons repository.SermonRepository, events repository.EventRepository) *StatsService {
	return &StatsService{stats: stats, sermons: sermons, events: events}
}

// DashboardReport is the admin landing-page payload: counters plus the
// latest published content.
type DashboardReport struct {
	Stats         repository.DashboardStats
	RecentSermons []domain.Sermon
	RecentEvents  []domain.Event
}

// Dashboard collects the dashboard counters and recent published content.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardReport, error) {
	stats, err := s.stats.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	sermons, _, err := s.sermons.List(ctx, repository.SermonFilter{PublishedOnly: true, Limit: 5})
	if err != nil {
		return nil, err
	}
	events, _, err := s.events.List(ctx, repository.EventFilter{PublishedOnly: true, Limit: 5})
	if err != nil {
		return nil, err
	}

	return &DashboardReport{
		Stats:         *stats,
		RecentSermons: sermons,
		RecentEvents:  events,
	}, nil
}

// MinistryStatistics returns the ministry overview counters.
func (s *StatsService) MinistryStatistics(ctx context.Context) (*repository.MinistryStats, error) {
	return s.stats.Ministry(ctx)
}
