package domain

import "time"

// SubscriberStatus represents newsletter subscription states.
type SubscriberStatus string

const (
	SubscriberStatusActive       SubscriberStatus = "active"
	SubscriberStatusUnsubscribed SubscriberStatus = "unsubscribed"
)

// SubscriberSource records how an address entered the list.
type SubscriberSource string

const (
	SubscriberSourceWebsite SubscriberSource = "website"
	SubscriberSourceManual  SubscriberSource = "manual"
	SubscriberSourceImport  SubscriberSource = "import"
)

// Subscriber is a newsletter mailing-list entry.
type Subscriber struct {
	ID                string
	Email             string
	Status            SubscriberStatus
	Source            SubscriberSource
	UnsubscribedAt    *time.Time
	UnsubscribeReason string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
