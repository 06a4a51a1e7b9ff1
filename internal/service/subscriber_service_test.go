package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/domain"
)

func newTestSubscriberService(repo *memSubscriberRepo) *SubscriberService {
	return NewSubscriberService(
		repo,
		&fakeTransport{},
		zap.NewNop(),
		config.AppConfig{FrontendURL: "http://localhost:3000"},
		config.MailConfig{TimeoutSeconds: 1},
	)
}

func TestSubscribeNew(t *testing.T) {
	repo := newMemSubscriberRepo()
	svc := newTestSubscriberService(repo)

	sub, reactivated, err := svc.Subscribe(context.Background(), "new@example.com")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if reactivated {
		t.Error("Subscribe() reported reactivation for a new address")
	}
	if sub.Status != domain.SubscriberStatusActive {
		t.Errorf("Status = %q, want active", sub.Status)
	}
	if sub.Source != domain.SubscriberSourceWebsite {
		t.Errorf("Source = %q, want website", sub.Source)
	}
}

func TestSubscribeAlreadyActive(t *testing.T) {
	repo := newMemSubscriberRepo("dup@example.com")
	svc := newTestSubscriberService(repo)

	if _, _, err := svc.Subscribe(context.Background(), "dup@example.com"); err == nil {
		t.Fatal("Subscribe() on active address expected error")
	}
}

func TestSubscribeReactivates(t *testing.T) {
	repo := newMemSubscriberRepo("back@example.com")
	svc := newTestSubscriberService(repo)
	ctx := context.Background()

	if err := svc.Unsubscribe(ctx, "back@example.com", "too many emails"); err != nil {
		t.Fatalf("Unsubscribe() error = %v", err)
	}

	sub, reactivated, err := svc.Subscribe(ctx, "back@example.com")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if !reactivated {
		t.Error("Subscribe() did not report reactivation")
	}
	if sub.Status != domain.SubscriberStatusActive {
		t.Errorf("Status = %q, want active", sub.Status)
	}
	if sub.UnsubscribedAt != nil || sub.UnsubscribeReason != "" {
		t.Error("reactivation did not clear unsubscribe fields")
	}
}

func TestUnsubscribe(t *testing.T) {
	repo := newMemSubscriberRepo("leaving@example.com")
	svc := newTestSubscriberService(repo)
	ctx := context.Background()

	if err := svc.Unsubscribe(ctx, "leaving@example.com", "moving away"); err != nil {
		t.Fatalf("Unsubscribe() error = %v", err)
	}

	sub, err := repo.GetByEmail(ctx, "leaving@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if sub.Status != domain.SubscriberStatusUnsubscribed {
		t.Errorf("Status = %q, want unsubscribed", sub.Status)
	}
	if sub.UnsubscribedAt == nil {
		t.Error("UnsubscribedAt not set")
	}
	if sub.UnsubscribeReason != "moving away" {
		t.Errorf("UnsubscribeReason = %q", sub.UnsubscribeReason)
	}
}

func TestUnsubscribeUnknown(t *testing.T) {
	svc := newTestSubscriberService(newMemSubscriberRepo())

	if err := svc.Unsubscribe(context.Background(), "ghost@example.com", ""); err == nil {
		t.Fatal("Unsubscribe() on unknown address expected error")
	}
}
