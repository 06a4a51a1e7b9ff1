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

// EventsHandler exposes church event endpoints.
type EventsHandler struct {
	events *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(events *service.EventService) *EventsHandler {
	return &EventsHandler{events: events}
}

func eventInput(req dto.EventRequest) service.EventInput {
	return service.EventInput{
		Title:                req.Title,
		Description:          req.Description,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Location:             req.Location,
		Address:              req.Address,
		Category:             req.Category,
		ImageURL:             req.ImageURL,
		RegistrationRequired: req.RegistrationRequired,
		RegistrationLink:     req.RegistrationLink,
		MaxAttendees:         req.MaxAttendees,
		Published:            req.Published,
		Featured:             req.Featured,
	}
}

// List handles GET /api/events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	page, limit, offset := pagination(c, 20)

	_, authenticated := auth.AdminFromContext(c)
	events, total, err := h.events.List(c.Context(), repository.EventFilter{
		Category:      c.Query("category"),
		PublishedOnly: !authenticated,
		UpcomingOnly:  c.QueryBool("upcoming"),
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "", fiber.Map{
		"events":       events,
		"total":        total,
		"current_page": page,
		"total_pages":  totalPages(total, limit),
	})
}

// Get handles GET /api/events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	event, err := h.events.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "", fiber.Map{"event": event})
}

// Create handles POST /api/events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	admin, ok := auth.AdminFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authorized, please login to access this resource")
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	event, err := h.events.Create(c.Context(), eventInput(req), admin.ID)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "Event created successfully", fiber.Map{"event": event})
}

// Update handles PUT /api/events/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	event, err := h.events.Update(c.Context(), c.Params("id"), eventInput(req))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Event updated successfully", fiber.Map{"event": event})
}

// Delete handles DELETE /api/events/:id.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	if err := h.events.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Event deleted successfully", nil)
}
