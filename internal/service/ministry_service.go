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

// MinistryService handles join requests and the member roster.
type MinistryService struct {
	requests    repository.MinistryRequestRepository
	members     repository.MinistryMemberRepository
	transport   mail.Transport
	logger      *zap.Logger
	sendTimeout time.Duration
}

// NewMinistryService builds the service.
func NewMinistryService(requests repository.MinistryRequestRepository, members repository.MinistryMemberRepository, transport mail.Transport, logger *zap.Logger, mailCfg config.MailConfig) *MinistryService {
	return &MinistryService{
		requests:    requests,
		members:     members,
		transport:   transport,
		logger:      logger,
		sendTimeout: mailCfg.Timeout(),
	}
}

// RequestInput carries a ministry join application.
type RequestInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	Ministry      string
	MinistryLabel string
	Availability  string
	Skills        string
}

// SubmitRequest stores a join request and fires a detached confirmation.
func (s *MinistryService) SubmitRequest(ctx context.Context, input RequestInput) (*domain.MinistryRequest, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Ministry == "" {
		return nil, apperrors.NewValidationError("first name, last name, email and ministry are required")
	}

	req := &domain.MinistryRequest{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Ministry:      input.Ministry,
		MinistryLabel: input.MinistryLabel,
		Availability:  input.Availability,
		Skills:        input.Skills,
		Status:        domain.MinistryRequestPending,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	mail.SendDetached(s.transport, s.logger, s.sendTimeout, mail.Message{
		To:      req.Email,
		Subject: "Ministry Application Received",
		HTML:    mail.MinistryApplicationConfirmation(req.FirstName, req.LastName, req.MinistryLabel),
	})
	return req, nil
}

// ListRequests returns join requests with optional filters.
func (s *MinistryService) ListRequests(ctx context.Context, filter repository.MinistryRequestFilter) ([]domain.MinistryRequest, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.requests.List(ctx, filter)
}

// Approve marks a request approved, creates the ministry member record and
// fires a detached approval mail.
func (s *MinistryService) Approve(ctx context.Context, requestID, reviewedBy string) (*domain.MinistryRequest, *domain.MinistryMember, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("request")
		}
		return nil, nil, err
	}
	if req.Status != domain.MinistryRequestPending {
		return nil, nil, apperrors.NewValidationError("request has already been reviewed")
	}

	now := time.Now()
	req.Status = domain.MinistryRequestApproved
	req.ReviewedBy = &reviewedBy
	req.ReviewedAt = &now
	if err := s.requests.Update(ctx, req); err != nil {
		return nil, nil, err
	}

	member := &domain.MinistryMember{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Ministry:      req.Ministry,
		MinistryLabel: req.MinistryLabel,
		Availability:  req.Availability,
		Skills:        req.Skills,
		ApprovedBy:    reviewedBy,
		RequestID:     req.ID,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, nil, err
	}

	mail.SendDetached(s.transport, s.logger, s.sendTimeout, mail.Message{
		To:      req.Email,
		Subject: "Ministry Application Approved!",
		HTML:    mail.MinistryApplicationApproval(req.FirstName, req.LastName, req.MinistryLabel),
	})
	return req, member, nil
}

// Decline marks a request declined and fires a detached notification.
func (s *MinistryService) Decline(ctx context.Context, requestID, reviewedBy, reason string) (*domain.MinistryRequest, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("request")
		}
		return nil, err
	}
	if req.Status != domain.MinistryRequestPending {
		return nil, apperrors.NewValidationError("request has already been reviewed")
	}

	now := time.Now()
	req.Status = domain.MinistryRequestDeclined
	req.DeclineReason = reason
	req.ReviewedBy = &reviewedBy
	req.ReviewedAt = &now
	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}

	mail.SendDetached(s.transport, s.logger, s.sendTimeout, mail.Message{
		To:      req.Email,
		Subject: "Ministry Application Update",
		HTML:    mail.MinistryApplicationDecline(req.FirstName, req.LastName, req.MinistryLabel, reason),
	})
	return req, nil
}

// ListMembers returns the approved roster.
func (s *MinistryService) ListMembers(ctx context.Context, ministry string, limit, offset int) ([]domain.MinistryMember, int, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.members.List(ctx, ministry, limit, offset)
}

// RemoveMember takes a member off the roster. Their original join request
// record is kept.
func (s *MinistryService) RemoveMember(ctx context.Context, id string) error {
	if err := s.members.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("member")
		}
		return err
	}
	return nil
}
