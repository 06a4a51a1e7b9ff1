package domain

import "time"

// Event is a scheduled church gathering.
type Event struct {
	ID                   string
	Title                string
	Description          string
	StartDate            time.Time
	EndDate              *time.Time
	StartTime            string
	EndTime              string
	Location             string
	Address              string
	Category             string
	ImageURL             string
	RegistrationRequired bool
	RegistrationLink     string
	MaxAttendees         *int
	CurrentAttendees     int
	Published            bool
	Featured             bool
	CreatedBy            string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
