package dto

import "time"

// SermonRequest payload for sermon create and update.
type SermonRequest struct {
	Title        string    `json:"title"`
	Preacher     string    `json:"preacher"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Scripture    string    `json:"scripture"`
	Category     string    `json:"category"`
	SermonType   string    `json:"sermon_type"`
	VideoURL     string    `json:"video_url"`
	YoutubeURL   string    `json:"youtube_url"`
	AudioURL     string    `json:"audio_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     string    `json:"duration"`
	Published    bool      `json:"published"`
	Featured     bool      `json:"featured"`
}
