package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/dto"
	"github.com/spec-kit/church-cms/internal/auth"
	"github.com/spec-kit/church-cms/internal/repository"
	"github.com/spec-kit/church-cms/internal/service"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// SermonsHandler exposes the sermon library endpoints.
type SermonsHandler struct {
	sermons *service.SermonService
}

// NewSermonsHandler constructs handler.
func NewSermonsHandler(sermons *service.SermonService) *SermonsHandler {
	return &SermonsHandler{sermons: sermons}
}

func sermonInput(req dto.SermonRequest) service.SermonInput {
	return service.SermonInput{
		Title:        req.Title,
		Preacher:     req.Preacher,
		Date:         req.Date,
		Description:  req.Description,
		Scripture:    req.Scripture,
		Category:     req.Category,
		SermonType:   req.SermonType,
		VideoURL:     req.VideoURL,
		YoutubeURL:   req.YoutubeURL,
		AudioURL:     req.AudioURL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		Published:    req.Published,
		Featured:     req.Featured,
	}
}

// List handles GET /api/sermons.
func (h *SermonsHandler) List(c *fiber.Ctx) error {
	page, limit, offset := pagination(c, 20)

	_, authenticated := auth.AdminFromContext(c)
	sermons, total, err := h.sermons.List(c.Context(), repository.SermonFilter{
		Category:      c.Query("category"),
		PublishedOnly: !authenticated,
		FeaturedOnly:  c.QueryBool("featured"),
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "", fiber.Map{
		"sermons":      sermons,
		"total":        total,
		"current_page": page,
		"total_pages":  totalPages(total, limit),
	})
}

// Get handles GET /api/sermons/:id.
func (h *SermonsHandler) Get(c *fiber.Ctx) error {
	sermon, err := h.sermons.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "", fiber.Map{"sermon": sermon})
}

// Create handles POST /api/sermons.
func (h *SermonsHandler) Create(c *fiber.Ctx) error {
	admin, ok := auth.AdminFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authorized, please login to access this resource")
	}

	var req dto.SermonRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	sermon, err := h.sermons.Create(c.Context(), sermonInput(req), admin.ID)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "Sermon created successfully", fiber.Map{"sermon": sermon})
}

// Update handles PUT /api/sermons/:id.
func (h *SermonsHandler) Update(c *fiber.Ctx) error {
	var req dto.SermonRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	sermon, err := h.sermons.Update(c.Context(), c.Params("id"), sermonInput(req))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Sermon updated successfully", fiber.Map{"sermon": sermon})
}

// Delete handles DELETE /api/sermons/:id.
func (h *SermonsHandler) Delete(c *fiber.Ctx) error {
	if err := h.sermons.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Sermon deleted successfully", nil)
}

// RecordDownload handles POST /api/sermons/:id/download.
func (h *SermonsHandler) RecordDownload(c *fiber.Ctx) error {
	if err := h.sermons.RecordDownload(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "", nil)
}
