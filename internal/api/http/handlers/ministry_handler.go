package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/dto"
	"github.com/spec-kit/church-cms/internal/auth"
	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
	"github.com/spec-kit/church-cms/internal/service"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// MinistryHandler exposes ministry request and member endpoints.
type MinistryHandler struct {
	ministry *service.MinistryService
	stats    *service.StatsService
}

// NewMinistryHandler constructs handler.
func NewMinistryHandler(ministry *service.MinistryService, stats *service.StatsService) *MinistryHandler {
	return &MinistryHandler{ministry: ministry, stats: stats}
}

// SubmitRequest handles POST /api/ministry/requests.
func (h *MinistryHandler) SubmitRequest(c *fiber.Ctx) error {
	var req dto.MinistryRequestPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	request, err := h.ministry.SubmitRequest(c.Context(), service.RequestInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Ministry:      req.Ministry,
		MinistryLabel: req.MinistryLabel,
		Availability:  req.Availability,
		Skills:        req.Skills,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "Ministry request submitted successfully", fiber.Map{"request": request})
}

// ListRequests handles GET /api/ministry/requests.
func (h *MinistryHandler) ListRequests(c *fiber.Ctx) error {
	page, limit, offset := pagination(c, 20)

	requests, total, err := h.ministry.ListRequests(c.Context(), repository.MinistryRequestFilter{
		Status:   domain.MinistryRequestStatus(c.Query("status")),
		Ministry: c.Query("ministry"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "", fiber.Map{
		"requests":     requests,
		"total":        total,
		"current_page": page,
		"total_pages":  totalPages(total, limit),
	})
}

// ApproveRequest handles POST /api/ministry/requests/:id/approve.
func (h *MinistryHandler) ApproveRequest(c *fiber.Ctx) error {
	admin, ok := auth.AdminFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authorized, please login to access this resource")
	}

	request, member, err := h.ministry.Approve(c.Context(), c.Params("id"), admin.ID)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Request approved successfully", fiber.Map{
		"request": request,
		"member":  member,
	})
}

// DeclineRequest handles POST /api/ministry/requests/:id/decline.
func (h *MinistryHandler) DeclineRequest(c *fiber.Ctx) error {
	admin, ok := auth.AdminFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authorized, please login to access this resource")
	}

	var req dto.DeclineRequestPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	request, err := h.ministry.Decline(c.Context(), c.Params("id"), admin.ID, req.DeclineReason)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Request declined successfully", fiber.Map{"request": request})
}

// ListMembers handles GET /api/ministry/members.
func (h *MinistryHandler) ListMembers(c *fiber.Ctx) error {
	page, limit, offset := pagination(c, 20)

	members, total, err := h.ministry.ListMembers(c.Context(), c.Query("ministry"), limit, offset)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "", fiber.Map{
		"members":      members,
		"total":        total,
		"current_page": page,
		"total_pages":  totalPages(total, limit),
	})
}

// DeleteMember handles DELETE /api/ministry/members/:id.
func (h *MinistryHandler) DeleteMember(c *fiber.Ctx) error {
	if err := h.ministry.RemoveMember(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Member removed successfully", nil)
}

// Statistics handles GET /api/ministry/statistics.
func (h *MinistryHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.stats.MinistryStatistics(c.Context())
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "", fiber.Map{
		"total_requests":      stats.TotalRequests,
		"pending_requests":    stats.PendingRequests,
		"approved_requests":   stats.ApprovedRequests,
		"total_members":       stats.TotalMembers,
		"members_by_ministry": stats.MembersByMinistry,
	})
}
