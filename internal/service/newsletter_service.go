package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/mail"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// NewsletterService is the bulk dispatcher: it fans individual sends out
// across the active subscriber list and writes every outcome through the
// delivery ledger before finalizing the campaign record.
type NewsletterService struct {
	newsletters repository.NewsletterRepository
	subscribers repository.SubscriberRepository
	transport   mail.Transport
	logger      *zap.Logger
	frontendURL string
	sendTimeout time.Duration
	concurrency int
}

// NewNewsletterService builds the service.
func NewNewsletterService(
	newsletters repository.NewsletterRepository,
	subscribers repository.SubscriberRepository,
	transport mail.Transport,
	logger *zap.Logger,
	appCfg config.AppConfig,
	mailCfg config.MailConfig,
	cfg config.NewsletterConfig,
) *NewsletterService {
	concurrency := cfg.MaxConcurrentSends
	if concurrency <= 0 {
		concurrency = 8
	}
	return &NewsletterService{
		newsletters: newsletters,
		subscribers: subscribers,
		transport:   transport,
		logger:      logger,
		frontendURL: appCfg.FrontendURL,
		sendTimeout: mailCfg.Timeout(),
		concurrency: concurrency,
	}
}

// Send dispatches a newsletter to every active subscriber. The campaign
// record is persisted with status sending before the first delivery, so
// partial progress survives a crash. A single recipient's failure never
// aborts the batch; only ledger write failures propagate.
func (s *NewsletterService) Send(ctx context.Context, subject, body, sentBy string) (*domain.Newsletter, error) {
	if subject == "" || body == "" {
		return nil, apperrors.NewValidationError("subject and message are required")
	}

	recipients, err := s.subscribers.ListActiveEmails(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, apperrors.NewNoRecipients()
	}

	newsletter := &domain.Newsletter{
		ID:             uuid.NewString(),
		Subject:        subject,
		Body:           body,
		SentBy:         sentBy,
		RecipientCount: len(recipients),
		Status:         domain.NewsletterStatusSending,
	}
	if err := s.newsletters.Create(ctx, newsletter); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	s.logger.Info("newsletter dispatch started",
		zap.String("newsletter_id", newsletter.ID),
		zap.Int("recipients", len(recipients)))

	outcomes := s.fanOut(ctx, newsletter.ID, subject, body, recipients)

	var successCount, failureCount int
	var appendErr error
	for _, rec := range outcomes {
		if rec.Status == domain.RecipientStatusSent {
			successCount++
		} else {
			failureCount++
		}
		if err := s.newsletters.AppendRecipient(ctx, newsletter.ID, rec); err != nil && appendErr == nil {
			appendErr = err
		}
	}
	if appendErr != nil {
		return nil, apperrors.NewPersistenceError(appendErr)
	}

	completedAt := time.Now()
	if err := s.newsletters.Finalize(ctx, newsletter.ID, successCount, failureCount, completedAt); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	newsletter.Recipients = outcomes
	newsletter.SuccessCount = successCount
	newsletter.FailureCount = failureCount
	newsletter.Status = domain.NewsletterStatusCompleted
	newsletter.CompletedAt = &completedAt

	s.logger.Info("newsletter dispatch completed",
		zap.String("newsletter_id", newsletter.ID),
		zap.Int("sent", successCount),
		zap.Int("failed", failureCount))
	return newsletter, nil
}

// fanOut issues one send per recipient with bounded concurrency and joins
// before returning. Exactly one outcome is produced per recipient; outcome
// order is not guaranteed to match input order.
func (s *NewsletterService) fanOut(ctx context.Context, newsletterID, subject, body string, recipients []string) []domain.NewsletterRecipient {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		outcomes = make([]domain.NewsletterRecipient, 0, len(recipients))
	)
	sem := make(chan struct{}, s.concurrency)

	for _, email := range recipients {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			outcome := s.sendOne(ctx, subject, body, email)

			mu.Lock()
			outcomes = append(outcomes, outcome)
			mu.Unlock()
		}(email)
	}
	wg.Wait()

	return outcomes
}

func (s *NewsletterService) sendOne(ctx context.Context, subject, body, email string) domain.NewsletterRecipient {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	html := mail.NewsletterHTML(subject, body, email, s.frontendURL)
	if _, err := s.transport.Send(sendCtx, mail.Message{To: email, Subject: subject, HTML: html}); err != nil {
		s.logger.Warn("newsletter recipient failed",
			zap.String("email", email),
			zap.Error(err))
		return domain.NewsletterRecipient{
			Email:  email,
			Status: domain.RecipientStatusFailed,
			Error:  err.Error(),
		}
	}

	now := time.Now()
	return domain.NewsletterRecipient{
		Email:  email,
		Status: domain.RecipientStatusSent,
		SentAt: &now,
	}
}

// History lists past campaigns, newest first, without recipient rows.
func (s *NewsletterService) History(ctx context.Context, limit, offset int) ([]domain.Newsletter, int, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.newsletters.List(ctx, limit, offset)
}

// Get returns one campaign with its full delivery ledger.
func (s *NewsletterService) Get(ctx context.Context, id string) (*domain.Newsletter, error) {
	n, err := s.newsletters.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return n, nil
}
