package dto

import (
	"time"

	"github.com/spec-kit/church-cms/internal/domain"
)

// SubscribeRequest payload for joining the mailing list.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// UnsubscribeRequest payload for leaving the mailing list.
type UnsubscribeRequest struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// SendNewsletterRequest payload for a bulk send.
type SendNewsletterRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubscriberResponse is the subscriber projection returned to clients.
type SubscriberResponse struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	Source         string     `json:"source"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// FromSubscriber maps a domain subscriber to its response projection.
func FromSubscriber(sub *domain.Subscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:             sub.ID,
		Email:          sub.Email,
		Status:         string(sub.Status),
		Source:         string(sub.Source),
		UnsubscribedAt: sub.UnsubscribedAt,
		CreatedAt:      sub.CreatedAt,
	}
}

// RecipientResponse is one delivery outcome in a campaign response.
type RecipientResponse struct {
	Email  string     `json:"email"`
	Status string     `json:"status"`
	SentAt *time.Time `json:"sent_at,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// NewsletterResponse is the campaign projection returned to clients.
type NewsletterResponse struct {
	ID             string              `json:"id"`
	Subject        string              `json:"subject"`
	SentBy         string              `json:"sent_by"`
	RecipientCount int                 `json:"recipient_count"`
	SuccessCount   int                 `json:"success_count"`
	FailureCount   int                 `json:"failure_count"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	Recipients     []RecipientResponse `json:"recipients,omitempty"`
}

// FromNewsletter maps a domain newsletter to its response projection.
func FromNewsletter(n *domain.Newsletter, includeRecipients bool) NewsletterResponse {
	resp := NewsletterResponse{
		ID:             n.ID,
		Subject:        n.Subject,
		SentBy:         n.SentBy,
		RecipientCount: n.RecipientCount,
		SuccessCount:   n.SuccessCount,
		FailureCount:   n.FailureCount,
		Status:         string(n.Status),
		CreatedAt:      n.CreatedAt,
		CompletedAt:    n.CompletedAt,
	}
	if includeRecipients {
		for _, rec := range n.Recipients {
			resp.Recipients = append(resp.Recipients, RecipientResponse{
				Email:  rec.Email,
				Status: string(rec.Status),
				SentAt: rec.SentAt,
				Error:  rec.Error,
			})
		}
	}
	return resp
}
