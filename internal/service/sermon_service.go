package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// SermonService manages the sermon library.
type SermonService struct {
	sermons repository.SermonRepository
}

// NewSermonService builds the service.
func NewSermonService(sermons repository.SermonRepository) *SermonService {
	return &SermonService{sermons: sermons}
}

// SermonInput carries sermon fields for create and update.
type SermonInput struct {
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
	Published    bool
	Featured     bool
}

// Create stores a new sermon.
func (s *SermonService) Create(ctx context.Context, input SermonInput, createdBy string) (*domain.Sermon, error) {
	if input.Title == "" || input.Preacher == "" {
		return nil, apperrors.NewValidationError("title and preacher are required")
	}
	if input.Category == "" {
		input.Category = "Other"
	}
	if input.SermonType == "" {
		input.SermonType = "Regular"
	}

	sermon := &domain.Sermon{
		Title:        input.Title,
		Preacher:     input.Preacher,
		Date:         input.Date,
		Description:  input.Description,
		Scripture:    input.Scripture,
		Category:     input.Category,
		SermonType:   input.SermonType,
		VideoURL:     input.VideoURL,
		YoutubeURL:   input.YoutubeURL,
		AudioURL:     input.AudioURL,
		ThumbnailURL: input.ThumbnailURL,
		Duration:     input.Duration,
		Published:    input.Published,
		Featured:     input.Featured,
		CreatedBy:    createdBy,
	}
	if err := s.sermons.Create(ctx, sermon); err != nil {
		return nil, err
	}
	return sermon, nil
}

// Get returns one sermon and counts the view.
func (s *SermonService) Get(ctx context.Context, id string) (*domain.Sermon, error) {
	sermon, err := s.sermons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("sermon")
		}
		return nil, err
	}
	if err := s.sermons.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	sermon.Views++
	return sermon, nil
}

// List returns sermons matching the filter.
func (s *SermonService) List(ctx context.Context, filter repository.SermonFilter) ([]domain.Sermon, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.sermons.List(ctx, filter)
}

// Update applies sermon changes.
func (s *SermonService) Update(ctx context.Context, id string, input SermonInput) (*domain.Sermon, error) {
	sermon, err := s.sermons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("sermon")
		}
		return nil, err
	}

	sermon.Title = input.Title
	sermon.Preacher = input.Preacher
	sermon.Date = input.Date
	sermon.Description = input.Description
	sermon.Scripture = input.Scripture
	sermon.Category = input.Category
	sermon.SermonType = input.SermonType
	sermon.VideoURL = input.VideoURL
	sermon.YoutubeURL = input.YoutubeURL
	sermon.AudioURL = input.AudioURL
	sermon.ThumbnailURL = input.ThumbnailURL
	sermon.Duration = input.Duration
	sermon.Published = input.Published
	sermon.Featured = input.Featured

	if err := s.sermons.Update(ctx, sermon); err != nil {
		return nil, err
	}
	return sermon, nil
}

// Delete removes a sermon.
func (s *SermonService) Delete(ctx context.Context, id string) error {
	if err := s.sermons.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("sermon")
		}
		return err
	}
	return nil
}

// RecordDownload counts a media download.
func (s *SermonService) RecordDownload(ctx context.Context, id string) error {
	return s.sermons.IncrementDownloads(ctx, id)
}
