package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/dto"
	"github.com/spec-kit/church-cms/internal/auth"
	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/service"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// SubscribersHandler exposes mailing-list and newsletter endpoints.
type SubscribersHandler struct {
	subscribers *service.SubscriberService
	newsletters *service.NewsletterService
}

// NewSubscribersHandler constructs handler.
func NewSubscribersHandler(subscribers *service.SubscriberService, newsletters *service.NewsletterService) *SubscribersHandler {
	return &SubscribersHandler{subscribers: subscribers, newsletters: newsletters}
}

// Subscribe handles POST /api/subscribers/subscribe.
func (h *SubscribersHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	sub, reactivated, err := h.subscribers.Subscribe(c.Context(), req.Email)
	if err != nil {
		return err
	}
	if reactivated {
		return success(c, http.StatusOK, "Subscription reactivated successfully", nil)
	}
	return success(c, http.StatusCreated, "Subscribed successfully", fiber.Map{
		"subscriber": dto.FromSubscriber(sub),
	})
}

// Unsubscribe handles POST /api/subscribers/unsubscribe.
func (h *SubscribersHandler) Unsubscribe(c *fiber.Ctx) error {
	var req dto.UnsubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	if err := h.subscribers.Unsubscribe(c.Context(), req.Email, req.Reason); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Unsubscribed successfully", nil)
}

// List handles GET /api/subscribers.
func (h *SubscribersHandler) List(c *fiber.Ctx) error {
	page, limit, offset := pagination(c, 50)
	status := domain.SubscriberStatus(c.Query("status"))

	subs, total, err := h.subscribers.List(c.Context(), status, limit, offset)
	if err != nil {
		return err
	}

	items := make([]dto.SubscriberResponse, 0, len(subs))
	for i := range subs {
		items = append(items, dto.FromSubscriber(&subs[i]))
	}
	return success(c, http.StatusOK, "", fiber.Map{
		"subscribers":  items,
		"total":        total,
		"current_page": page,
		"total_pages":  totalPages(total, limit),
	})
}

// Delete handles DELETE /api/subscribers/:id.
func (h *SubscribersHandler) Delete(c *fiber.Ctx) error {
	if err := h.subscribers.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Subscriber deleted successfully", nil)
}

// SendNewsletter handles POST /api/subscribers/newsletter.
func (h *SubscribersHandler) SendNewsletter(c *fiber.Ctx) error {
	admin, ok := auth.AdminFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authorized, please login to access this resource")
	}

	var req dto.SendNewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	newsletter, err := h.newsletters.Send(c.Context(), req.Subject, req.Message, admin.ID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Newsletter sent successfully", fiber.Map{
		"total_sent":   newsletter.SuccessCount,
		"total_failed": newsletter.FailureCount,
		"newsletter":   dto.FromNewsletter(newsletter, true),
	})
}

// NewsletterHistory handles GET /api/subscribers/newsletter/history.
func (h *SubscribersHandler) NewsletterHistory(c *fiber.Ctx) error {
	page, limit, offset := pagination(c, 20)

	newsletters, total, err := h.newsletters.History(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	items := make([]dto.NewsletterResponse, 0, len(newsletters))
	for i := range newsletters {
		items = append(items, dto.FromNewsletter(&newsletters[i], false))
	}
	return success(c, http.StatusOK, "", fiber.Map{
		"newsletters":  items,
		"total":        total,
		"current_page": page,
		"total_pages":  totalPages(total, limit),
	})
}

// GetNewsletter handles GET /api/subscribers/newsletter/:id.
func (h *SubscribersHandler) GetNewsletter(c *fiber.Ctx) error {
	newsletter, err := h.newsletters.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "", fiber.Map{
		"newsletter": dto.FromNewsletter(newsletter, true),
	})
}
