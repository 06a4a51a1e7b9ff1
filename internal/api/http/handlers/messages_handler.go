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

// MessagesHandler exposes contact-message endpoints.
type MessagesHandler struct {
	messages *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(messages *service.MessageService) *MessagesHandler {
	return &MessagesHandler{messages: messages}
}

// Submit handles POST /api/messages.
func (h *MessagesHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	msg, err := h.messages.Submit(c.Context(), service.SubmitInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Category: req.Category,
		Body:     req.Message,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "Message sent successfully", fiber.Map{"message": msg.ID})
}

// List handles GET /api/messages.
func (h *MessagesHandler) List(c *fiber.Ctx) error {
	page, limit, offset := pagination(c, 20)

	messages, total, err := h.messages.List(c.Context(), repository.MessageFilter{
		Status:   domain.MessageStatus(c.Query("status")),
		Category: c.Query("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "", fiber.Map{
		"messages":     messages,
		"total":        total,
		"current_page": page,
		"total_pages":  totalPages(total, limit),
	})
}

// Get handles GET /api/messages/:id.
func (h *MessagesHandler) Get(c *fiber.Ctx) error {
	msg, err := h.messages.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "", fiber.Map{"message": msg})
}

// Reply handles POST /api/messages/:id/reply.
func (h *MessagesHandler) Reply(c *fiber.Ctx) error {
	admin, ok := auth.AdminFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authorized, please login to access this resource")
	}

	var req dto.ReplyMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	msg, err := h.messages.Reply(c.Context(), c.Params("id"), admin.ID, req.ReplyMessage)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Reply sent successfully", fiber.Map{"message": msg})
}

// UpdateStatus handles PATCH /api/messages/:id/status.
func (h *MessagesHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateMessageStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	if err := h.messages.UpdateStatus(c.Context(), c.Params("id"), domain.MessageStatus(req.Status)); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Message updated successfully", nil)
}

// Delete handles DELETE /api/messages/:id.
func (h *MessagesHandler) Delete(c *fiber.Ctx) error {
	if err := h.messages.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Message deleted successfully", nil)
}
