package domain

import "time"

// MessageStatus tracks admin handling of a contact message.
type MessageStatus string

const (
	MessageStatusUnread   MessageStatus = "unread"
	MessageStatusRead     MessageStatus = "read"
	MessageStatusReplied  MessageStatus = "replied"
	MessageStatusArchived MessageStatus = "archived"
)

// Message is a contact-form submission from a visitor. A reply, once sent,
// is stored alongside the original and moves the status to replied.
type Message struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Subject   string
	Category  string
	Body      string
	Status    MessageStatus
	ReplyBody string
	RepliedBy *string
	RepliedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
