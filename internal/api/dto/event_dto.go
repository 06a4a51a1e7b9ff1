package dto

import "time"

// EventRequest payload for event create and update.
type EventRequest struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	StartTime            string     `json:"start_time"`
	EndTime              string     `json:"end_time"`
	Location             string     `json:"location"`
	Address              string     `json:"address"`
	Category             string     `json:"category"`
	ImageURL             string     `json:"image_url"`
	RegistrationRequired bool       `json:"registration_required"`
	RegistrationLink     string     `json:"registration_link"`
	MaxAttendees         *int       `json:"max_attendees"`
	Published            bool       `json:"published"`
	Featured             bool       `json:"featured"`
}
