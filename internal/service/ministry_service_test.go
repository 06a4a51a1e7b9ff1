package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
)

type memMinistryRequestRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.MinistryRequest
	seq  int
}

func newMemMinistryRequestRepo() *memMinistryRequestRepo {
	return &memMinistryRequestRepo{byID: map[string]*domain.MinistryRequest{}}
}

func (r *memMinistryRequestRepo) Create(_ context.Context, req *domain.MinistryRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	req.ID = fmt.Sprintf("req-%d", r.seq)
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	copied := *req
	r.byID[req.ID] = &copied
	return nil
}

func (r *memMinistryRequestRepo) Update(_ context.Context, req *domain.MinistryRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[req.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *req
	r.byID[req.ID] = &copied
	return nil
}

func (r *memMinistryRequestRepo) GetByID(_ context.Context, id string) (*domain.MinistryRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *req
	return &copied, nil
}

func (r *memMinistryRequestRepo) List(_ context.Context, filter repository.MinistryRequestFilter) ([]domain.MinistryRequest, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.MinistryRequest
	for _, req := range r.byID {
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		out = append(out, *req)
	}
	return out, len(out), nil
}

type memMinistryMemberRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.MinistryMember
	seq  int
}

func newMemMinistryMemberRepo() *memMinistryMemberRepo {
	return &memMinistryMemberRepo{byID: map[string]*domain.MinistryMember{}}
}

func (r *memMinistryMemberRepo) Create(_ context.Context, member *domain.MinistryMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	member.ID = fmt.Sprintf("member-%d", r.seq)
	member.CreatedAt = time.Now()
	member.UpdatedAt = member.CreatedAt
	copied := *member
	r.byID[member.ID] = &copied
	return nil
}

func (r *memMinistryMemberRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *memMinistryMemberRepo) List(_ context.Context, ministry string, limit, offset int) ([]domain.MinistryMember, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.MinistryMember
	for _, member := range r.byID {
		if ministry != "" && member.Ministry != ministry {
			continue
		}
		out = append(out, *member)
	}
	return out, len(out), nil
}

func newTestMinistryService(requests *memMinistryRequestRepo, members *memMinistryMemberRepo) *MinistryService {
	return NewMinistryService(requests, members, &fakeTransport{}, zap.NewNop(), config.MailConfig{TimeoutSeconds: 1})
}

func TestApproveCreatesMember(t *testing.T) {
	requests := newMemMinistryRequestRepo()
	members := newMemMinistryMemberRepo()
	svc := newTestMinistryService(requests, members)
	ctx := context.Background()

	req, err := svc.SubmitRequest(ctx, RequestInput{
		FirstName: "Grace", LastName: "Adeyemi", Email: "grace@example.com",
		Ministry: "choir", MinistryLabel: "Choir",
	})
	if err != nil {
		t.Fatalf("SubmitRequest() error = %v", err)
	}

	approved, member, err := svc.Approve(ctx, req.ID, "admin-1")
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if approved.Status != domain.MinistryRequestApproved {
		t.Errorf("Status = %q, want %q", approved.Status, domain.MinistryRequestApproved)
	}
	if member.RequestID != req.ID || member.ApprovedBy != "admin-1" {
		t.Errorf("member = (%q, %q), want linked to request and approver", member.RequestID, member.ApprovedBy)
	}

	// A reviewed request cannot be approved twice.
	if _, _, err := svc.Approve(ctx, req.ID, "admin-1"); err == nil {
		t.Error("Approve() on reviewed request expected error")
	}
}

func TestRemoveMember(t *testing.T) {
	requests := newMemMinistryRequestRepo()
	members := newMemMinistryMemberRepo()
	svc := newTestMinistryService(requests, members)
	ctx := context.Background()

	req, err := svc.SubmitRequest(ctx, RequestInput{
		FirstName: "Grace", LastName: "Adeyemi", Email: "grace@example.com",
		Ministry: "choir", MinistryLabel: "Choir",
	})
	if err != nil {
		t.Fatalf("SubmitRequest() error = %v", err)
	}
	_, member, err := svc.Approve(ctx, req.ID, "admin-1")
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}

	if err := svc.RemoveMember(ctx, member.ID); err != nil {
		t.Fatalf("RemoveMember() error = %v", err)
	}

	roster, total, err := svc.ListMembers(ctx, "", 20, 0)
	if err != nil {
		t.Fatalf("ListMembers() error = %v", err)
	}
	if total != 0 || len(roster) != 0 {
		t.Errorf("roster after removal = %d members, want 0", total)
	}

	// The join request record survives the removal.
	if _, err := requests.GetByID(ctx, req.ID); err != nil {
		t.Errorf("request record missing after member removal: %v", err)
	}

	if err := svc.RemoveMember(ctx, member.ID); err == nil {
		t.Error("RemoveMember() on removed member expected error")
	}
}
