package domain

import "time"

// MinistryRequestStatus tracks review of a join request.
type MinistryRequestStatus string

const (
	MinistryRequestPending  MinistryRequestStatus = "pending"
	MinistryRequestApproved MinistryRequestStatus = "approved"
	MinistryRequestDeclined MinistryRequestStatus = "declined"
)

// MinistryRequest is a visitor's application to join a ministry.
type MinistryRequest struct {
	ID            string
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
	Status        MinistryRequestStatus
	DeclineReason string
	ReviewedBy    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MinistryMember is an approved ministry participant.
type MinistryMember struct {
	ID            string
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
	ApprovedBy    string
	RequestID     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
