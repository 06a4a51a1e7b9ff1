package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/mail"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// MessageService handles visitor contact messages.
type MessageService struct {
	messages    repository.MessageRepository
	transport   mail.Transport
	logger      *zap.Logger
	adminEmail  string
	sendTimeout time.Duration
}

// NewMessageService builds the service.
func NewMessageService(messages repository.MessageRepository, transport mail.Transport, logger *zap.Logger, mailCfg config.MailConfig) *MessageService {
	return &MessageService{
		messages:    messages,
		transport:   transport,
		logger:      logger,
		adminEmail:  mailCfg.AdminEmail,
		sendTimeout: mailCfg.Timeout(),
	}
}

// SubmitInput carries a contact-form submission.
type SubmitInput struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	Category string
	Body     string
}

// Submit stores the message and fires detached confirmation and admin
// notification mails whose outcome never affects the response.
func (s *MessageService) Submit(ctx context.Context, input SubmitInput) (*domain.Message, error) {
	if input.Name == "" || input.Email == "" || input.Body == "" {
		return nil, apperrors.NewValidationError("name, email and message are required")
	}

	msg := &domain.Message{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Subject:  input.Subject,
		Category: input.Category,
		Body:     input.Body,
		Status:   domain.MessageStatusUnread,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	mail.SendDetached(s.transport, s.logger, s.sendTimeout, mail.Message{
		To:      msg.Email,
		Subject: "Message Received",
		HTML:    mail.ContactConfirmation(msg.Name, msg.Body),
	})
	if s.adminEmail != "" {
		mail.SendDetached(s.transport, s.logger, s.sendTimeout, mail.Message{
			To:      s.adminEmail,
			Subject: fmt.Sprintf("New Contact Message: %s", msg.Subject),
			HTML:    mail.ContactAdminNotification(msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Body),
			ReplyTo: msg.Email,
		})
	}

	return msg, nil
}

// Get returns one message, marking it read on first access.
func (s *MessageService) Get(ctx context.Context, id string) (*domain.Message, error) {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("message")
		}
		return nil, err
	}

	if msg.Status == domain.MessageStatusUnread {
		if err := s.messages.UpdateStatus(ctx, id, domain.MessageStatusRead); err != nil {
			return nil, err
		}
		msg.Status = domain.MessageStatusRead
	}
	return msg, nil
}

// List returns messages filtered by status and category.
func (s *MessageService) List(ctx context.Context, filter repository.MessageFilter) ([]domain.Message, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.messages.List(ctx, filter)
}

// Reply stores an admin's response, marks the message replied and emails
// the sender. The mail is detached; the stored reply is the source of truth.
func (s *MessageService) Reply(ctx context.Context, id, repliedBy, replyBody string) (*domain.Message, error) {
	if replyBody == "" {
		return nil, apperrors.NewValidationError("reply message is required")
	}

	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("message")
		}
		return nil, err
	}

	now := time.Now()
	if err := s.messages.SaveReply(ctx, id, replyBody, repliedBy, now); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("message")
		}
		return nil, err
	}
	msg.ReplyBody = replyBody
	msg.RepliedBy = &repliedBy
	msg.RepliedAt = &now
	msg.Status = domain.MessageStatusReplied

	mail.SendDetached(s.transport, s.logger, s.sendTimeout, mail.Message{
		To:      msg.Email,
		Subject: fmt.Sprintf("Re: %s", msg.Subject),
		HTML:    mail.MessageReply(msg.Name, replyBody, msg.Body),
	})
	return msg, nil
}

// UpdateStatus sets the handling state of a message.
func (s *MessageService) UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) error {
	switch status {
	case domain.MessageStatusUnread, domain.MessageStatusRead, domain.MessageStatusReplied, domain.MessageStatusArchived:
	default:
		return apperrors.NewValidationError("invalid message status")
	}
	if err := s.messages.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("message")
		}
		return err
	}
	return nil
}

// Delete removes a message.
func (s *MessageService) Delete(ctx context.Context, id string) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("message")
		}
		return err
	}
	return nil
}
