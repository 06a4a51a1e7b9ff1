package handlers

import "github.com/gofiber/fiber/v2"

// success writes the standard success envelope.
func success(c *fiber.Ctx, status int, message string, data fiber.Map) error {
	body := fiber.Map{"status": "success"}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// pagination computes page/limit query values with sane bounds.
func pagination(c *fiber.Ctx, defaultLimit int) (page, limit, offset int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", defaultLimit)
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit, (page - 1) * limit
}

// totalPages derives page count for list envelopes.
func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
