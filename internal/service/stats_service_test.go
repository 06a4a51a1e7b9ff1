package service

import (
	"context"
	"testing"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
)

type fakeStatsRepo struct {
	dashboard repository.DashboardStats
	ministry  repository.MinistryStats
}

func (r *fakeStatsRepo) Dashboard(_ context.Context) (*repository.DashboardStats, error) {
	copied := r.dashboard
	return &copied, nil
}

func (r *fakeStatsRepo) Ministry(_ context.Context) (*repository.MinistryStats, error) {
	copied := r.ministry
	return &copied, nil
}

type fakeSermonRepo struct {
	sermons    []domain.Sermon
	lastFilter repository.SermonFilter
}

func (r *fakeSermonRepo) Create(_ context.Context, _ *domain.Sermon) error { return nil }
func (r *fakeSermonRepo) Update(_ context.Context, _ *domain.Sermon) error { return nil }
func (r *fakeSermonRepo) Delete(_ context.Context, _ string) error         { return nil }
func (r *fakeSermonRepo) GetByID(_ context.Context, _ string) (*domain.Sermon, error) {
	return nil, nil
}
func (r *fakeSermonRepo) IncrementViews(_ context.Context, _ string) error     { return nil }
func (r *fakeSermonRepo) IncrementDownloads(_ context.Context, _ string) error { return nil }
func (r *fakeSermonRepo) List(_ context.Context, filter repository.SermonFilter) ([]domain.Sermon, int, error) {
	r.lastFilter = filter
	return r.sermons, len(r.sermons), nil
}

type fakeEventRepo struct {
	events     []domain.Event
	lastFilter repository.EventFilter
}

func (r *fakeEventRepo) Create(_ context.Context, _ *domain.Event) error { return nil }
func (r *fakeEventRepo) Update(_ context.Context, _ *domain.Event) error { return nil }
func (r *fakeEventRepo) Delete(_ context.Context, _ string) error        { return nil }
func (r *fakeEventRepo) GetByID(_ context.Context, _ string) (*domain.Event, error) {
	return nil, nil
}
func (r *fakeEventRepo) List(_ context.Context, filter repository.EventFilter) ([]domain.Event, int, error) {
	r.lastFilter = filter
	return r.events, len(r.events), nil
}

func TestDashboardReport(t *testing.T) {
	stats := &fakeStatsRepo{
		dashboard: repository.DashboardStats{
			PublishedSermons: 12,
			UnreadMessages:   3,
		},
	}
	sermons := &fakeSermonRepo{sermons: []domain.Sermon{{ID: "s1", Title: "Hope"}}}
	events := &fakeEventRepo{events: []domain.Event{{ID: "e1", Title: "Revival Night"}}}
	svc := NewStatsService(stats, sermons, events)

	report, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if report.Stats.PublishedSermons != 12 || report.Stats.UnreadMessages != 3 {
		t.Errorf("Stats = %+v", report.Stats)
	}
	if len(report.RecentSermons) != 1 || report.RecentSermons[0].ID != "s1" {
		t.Errorf("RecentSermons = %+v", report.RecentSermons)
	}
	if len(report.RecentEvents) != 1 || report.RecentEvents[0].ID != "e1" {
		t.Errorf("RecentEvents = %+v", report.RecentEvents)
	}

	// Recent content on the dashboard is limited to published entries.
	if !sermons.lastFilter.PublishedOnly || sermons.lastFilter.Limit != 5 {
		t.Errorf("sermon filter = %+v, want published-only limit 5", sermons.lastFilter)
	}
	if !events.lastFilter.PublishedOnly || events.lastFilter.Limit != 5 {
		t.Errorf("event filter = %+v, want published-only limit 5", events.lastFilter)
	}
}

func TestMinistryStatistics(t *testing.T) {
	stats := &fakeStatsRepo{
		ministry: repository.MinistryStats{
			TotalRequests:     8,
			PendingRequests:   2,
			ApprovedRequests:  5,
			TotalMembers:      5,
			MembersByMinistry: map[string]int{"choir": 3, "ushering": 2},
		},
	}
	svc := NewStatsService(stats, &fakeSermonRepo{}, &fakeEventRepo{})

	out, err := svc.MinistryStatistics(context.Background())
	if err != nil {
		t.Fatalf("MinistryStatistics() error = %v", err)
	}
	if out.TotalRequests != 8 || out.PendingRequests != 2 || out.ApprovedRequests != 5 {
		t.Errorf("counters = %+v", out)
	}
	if out.MembersByMinistry["choir"] != 3 {
		t.Errorf("MembersByMinistry = %+v", out.MembersByMinistry)
	}
}
