package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/mail"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// SubscriberService manages the newsletter mailing list.
type SubscriberService struct {
	subscribers repository.SubscriberRepository
	transport   mail.Transport
	logger      *zap.Logger
	frontendURL string
	sendTimeout time.Duration
}

// NewSubscriberService builds the service.
func NewSubscriberService(subscribers repository.SubscriberRepository, transport mail.Transport, logger *zap.Logger, appCfg config.AppConfig, mailCfg config.MailConfig) *SubscriberService {
	return &SubscriberService{
		subscribers: subscribers,
		transport:   transport,
		logger:      logger,
		frontendURL: appCfg.FrontendURL,
		sendTimeout: mailCfg.Timeout(),
	}
}

// Subscribe adds an address to the list, reactivating it if previously
// unsubscribed. The welcome mail is detached and never blocks the caller.
// The bool result reports whether this was a reactivation.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (*domain.Subscriber, bool, error) {
	if email == "" {
		return nil, false, apperrors.NewValidationError("email is required")
	}

	existing, err := s.subscribers.GetByEmail(ctx, email)
	if err == nil {
		if existing.Status == domain.SubscriberStatusActive {
			return nil, false, apperrors.NewValidationError("email is already subscribed")
		}
		existing.Status = domain.SubscriberStatusActive
		existing.UnsubscribedAt = nil
		existing.UnsubscribeReason = ""
		if err := s.subscribers.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	sub := &domain.Subscriber{
		Email:  email,
		Status: domain.SubscriberStatusActive,
		Source: domain.SubscriberSourceWebsite,
	}
	if err := s.subscribers.Create(ctx, sub); err != nil {
		return nil, false, err
	}

	mail.SendDetached(s.transport, s.logger, s.sendTimeout, mail.Message{
		To:      sub.Email,
		Subject: "Welcome to our Newsletter",
		HTML:    mail.SubscriberWelcome(sub.Email, s.frontendURL),
	})
	return sub, false, nil
}

// Unsubscribe deactivates an address with an optional reason.
func (s *SubscriberService) Unsubscribe(ctx context.Context, email, reason string) error {
	sub, err := s.subscribers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("subscriber")
		}
		return err
	}

	now := time.Now()
	sub.Status = domain.SubscriberStatusUnsubscribed
	sub.UnsubscribedAt = &now
	sub.UnsubscribeReason = reason
	return s.subscribers.Update(ctx, sub)
}

// List returns subscribers with an optional status filter.
func (s *SubscriberService) List(ctx context.Context, status domain.SubscriberStatus, limit, offset int) ([]domain.Subscriber, int, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.subscribers.List(ctx, status, limit, offset)
}

// Delete removes a subscriber outright.
func (s *SubscriberService) Delete(ctx context.Context, id string) error {
	if err := s.subscribers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("subscriber")
		}
		return err
	}
	return nil
}
