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

type memMessageRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Message
	seq  int
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{byID: map[string]*domain.Message{}}
}

func (r *memMessageRepo) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	msg.ID = fmt.Sprintf("msg-%d", r.seq)
	msg.CreatedAt = time.Now()
	msg.UpdatedAt = msg.CreatedAt
	copied := *msg
	r.byID[msg.ID] = &copied
	return nil
}

func (r *memMessageRepo) UpdateStatus(_ context.Context, id string, status domain.MessageStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	msg.Status = status
	return nil
}

func (r *memMessageRepo) SaveReply(_ context.Context, id, replyBody, repliedBy string, repliedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	msg.ReplyBody = replyBody
	msg.RepliedBy = &repliedBy
	msg.RepliedAt = &repliedAt
	msg.Status = domain.MessageStatusReplied
	return nil
}

func (r *memMessageRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *memMessageRepo) GetByID(_ context.Context, id string) (*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *msg
	return &copied, nil
}

func (r *memMessageRepo) List(_ context.Context, filter repository.MessageFilter) ([]domain.Message, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Message
	for _, msg := range r.byID {
		if filter.Status != "" && msg.Status != filter.Status {
			continue
		}
		out = append(out, *msg)
	}
	return out, len(out), nil
}

func newTestMessageService(repo *memMessageRepo, transport *fakeTransport) *MessageService {
	return NewMessageService(repo, transport, zap.NewNop(), config.MailConfig{
		AdminEmail:     "office@church.test",
		TimeoutSeconds: 1,
	})
}

// waitForSend polls the transport until the address shows up or the
// deadline passes. Reply mail is detached, so delivery is asynchronous.
func waitForSend(t *testing.T, transport *fakeTransport, to string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		transport.mu.Lock()
		for _, addr := range transport.sent {
			if addr == to {
				transport.mu.Unlock()
				return
			}
		}
		transport.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Errorf("no mail sent to %q", to)
}

func TestMessageReply(t *testing.T) {
	repo := newMemMessageRepo()
	transport := &fakeTransport{}
	svc := newTestMessageService(repo, transport)
	ctx := context.Background()

	seed := &domain.Message{
		Name:    "Tunde",
		Email:   "tunde@example.com",
		Subject: "Service times",
		Body:    "When does the second service start?",
		Status:  domain.MessageStatusRead,
	}
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("seed message: %v", err)
	}

	msg, err := svc.Reply(ctx, seed.ID, "admin-1", "The second service starts at 11am.")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}

	if msg.Status != domain.MessageStatusReplied {
		t.Errorf("Status = %q, want %q", msg.Status, domain.MessageStatusReplied)
	}
	if msg.ReplyBody != "The second service starts at 11am." {
		t.Errorf("ReplyBody = %q", msg.ReplyBody)
	}
	if msg.RepliedBy == nil || *msg.RepliedBy != "admin-1" {
		t.Errorf("RepliedBy = %v, want admin-1", msg.RepliedBy)
	}
	if msg.RepliedAt == nil {
		t.Error("RepliedAt not set")
	}

	stored, err := repo.GetByID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.Status != domain.MessageStatusReplied || stored.ReplyBody == "" {
		t.Errorf("stored message = (%q, %q), want replied with body", stored.Status, stored.ReplyBody)
	}

	waitForSend(t, transport, "tunde@example.com")
}

func TestMessageReplyValidation(t *testing.T) {
	repo := newMemMessageRepo()
	svc := newTestMessageService(repo, &fakeTransport{})
	ctx := context.Background()

	seed := &domain.Message{Name: "Tunde", Email: "tunde@example.com", Body: "Hello", Status: domain.MessageStatusUnread}
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("seed message: %v", err)
	}

	if _, err := svc.Reply(ctx, seed.ID, "admin-1", ""); err == nil {
		t.Fatal("Reply() with empty body expected error")
	}

	stored, _ := repo.GetByID(ctx, seed.ID)
	if stored.Status != domain.MessageStatusUnread {
		t.Errorf("Status changed to %q on rejected reply", stored.Status)
	}
}

func TestMessageReplyUnknownID(t *testing.T) {
	svc := newTestMessageService(newMemMessageRepo(), &fakeTransport{})

	if _, err := svc.Reply(context.Background(), "missing", "admin-1", "hello"); err == nil {
		t.Fatal("Reply() for unknown message expected error")
	}
}

func TestMessageGetMarksRead(t *testing.T) {
	repo := newMemMessageRepo()
	svc := newTestMessageService(repo, &fakeTransport{})
	ctx := context.Background()

	seed := &domain.Message{Name: "Tunde", Email: "tunde@example.com", Body: "Hello", Status: domain.MessageStatusUnread}
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("seed message: %v", err)
	}

	msg, err := svc.Get(ctx, seed.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if msg.Status != domain.MessageStatusRead {
		t.Errorf("Status = %q, want %q", msg.Status, domain.MessageStatusRead)
	}
}
