package server

import (
	"rare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSubscription handles GET /subscriptions/:id
func (s *Server) GetSubscription(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	subscription, err := s.subscriptionRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subscription)
}

// GetAuthorSubscriptionCount handles GET /subscriptions/author/:id. An author
// nobody follows reports zero rather than 404.
func (s *Server) GetAuthorSubscriptionCount(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	count, err := s.subscriptionRepo.CountByAuthorID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SubscriptionCount{AuthorID: id, Count: count})
}
