package dto

// SubmitMessageRequest payload for a contact-form submission.
type SubmitMessageRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// UpdateMessageStatusRequest payload for status changes.
type UpdateMessageStatusRequest struct {
	Status string `json:"status"`
}

// ReplyMessageRequest payload for answering a contact message.
type ReplyMessageRequest struct {
	ReplyMessage string `json:"reply_message"`
}
