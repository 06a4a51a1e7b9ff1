package dto

// MinistryRequestPayload is a ministry join application.
type MinistryRequestPayload struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Ministry      string `json:"ministry"`
	MinistryLabel string `json:"ministry_label"`
	Availability  string `json:"availability"`
	Skills        string `json:"skills"`
}

// DeclineRequestPayload carries the decline reason.
type DeclineRequestPayload struct {
	DeclineReason string `json:"decline_reason"`
}
