package domain

import "time"

// NewsletterStatus tracks a bulk-send campaign lifecycle.
type NewsletterStatus string

const (
	NewsletterStatusPending   NewsletterStatus = "pending"
	NewsletterStatusSending   NewsletterStatus = "sending"
	NewsletterStatusCompleted NewsletterStatus = "completed"
)

// RecipientStatus tracks a single recipient's delivery outcome.
type RecipientStatus string

const (
	RecipientStatusPending RecipientStatus = "pending"
	RecipientStatusSent    RecipientStatus = "sent"
	RecipientStatusFailed  RecipientStatus = "failed"
)

// NewsletterRecipient is one delivery outcome within a campaign.
type NewsletterRecipient struct {
	Email  string
	Status RecipientStatus
	SentAt *time.Time
	Error  string
}

// Newsletter is one bulk send event and its per-recipient delivery ledger.
// Once Status is completed the record is immutable and
// SuccessCount+FailureCount equals RecipientCount.
type Newsletter struct {
	ID             string
	Subject        string
	Body           string
	SentBy         string
	RecipientCount int
	SuccessCount   int
	FailureCount   int
	Status         NewsletterStatus
	CreatedAt      time.Time
	CompletedAt    *time.Time
	Recipients     []NewsletterRecipient
}
