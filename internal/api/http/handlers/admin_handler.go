package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/service"
)

// AdminHandler exposes the admin dashboard overview.
type AdminHandler struct {
	stats *service.StatsService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(stats *service.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	report, err := h.stats.Dashboard(c.Context())
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "", fiber.Map{
		"statistics": fiber.Map{
			"total_sermons":             report.Stats.PublishedSermons,
			"total_events":              report.Stats.PublishedEvents,
			"upcoming_events":           report.Stats.UpcomingEvents,
			"unread_messages":           report.Stats.UnreadMessages,
			"total_subscribers":         report.Stats.ActiveSubscribers,
			"pending_ministry_requests": report.Stats.PendingMinistryRequests,
			"total_ministry_members":    report.Stats.MinistryMembers,
		},
		"recent_sermons": report.RecentSermons,
		"recent_events":  report.RecentEvents,
	})
}
