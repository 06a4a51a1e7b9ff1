package domain

import "time"

// Sermon is a published teaching with media links.
type Sermon struct {
	ID           string
	Title        string
	Preacher     string
	Date         time.Time
	Description  string
	Scripture    string
	Category     string
	SermonType   string
	VideoURL     string
	YoutubeURL   string
	AudioURL     string
	ThumbnailURL string
	Duration     string
	Views        int
	Downloads    int
	Published    bool
	Featured     bool
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
