package server

import (
	"rare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetReactions handles GET /reactions (the reaction vocabulary)
func (s *Server) GetReactions(c *fiber.Ctx) error {
	reactions, err := s.reactionRepo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reactions)
}

// CreateReaction handles POST /reactions
func (s *Server) CreateReaction(c *fiber.Ctx) error {
	var reaction models.Reaction
	if err := c.BodyParser(&reaction); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if reaction.Label == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Label is required"))
	}

	if err := s.reactionRepo.Create(c.UserContext(), &reaction); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reaction)
}

// AddPostReaction handles POST /posts/:id/reactions. Repeating the same
// (user, reaction) pair returns 201 with the same row id both times.
func (s *Server) AddPostReaction(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req models.AddPostReactionRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.UserID == 0 || req.ReactionID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User ID and reaction ID are required"))
	}

	id, err := s.reactionRepo.AddPostReaction(c.UserContext(), req.UserID, req.ReactionID, postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// GetPostReactions handles GET /posts/:id/reactions, returning zero-filled
// tallies for the whole vocabulary.
func (s *Server) GetPostReactions(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	counts, err := s.reactionRepo.GetPostReactionCounts(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(counts)
}

// RemovePostReaction handles DELETE /posts/:id/reactions?userId=&reactionId=
func (s *Server) RemovePostReaction(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	userID := c.QueryInt("userId")
	reactionID := c.QueryInt("reactionId")
	if userID <= 0 || reactionID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userId and reactionId query parameters are required"))
	}

	if err := s.reactionRepo.RemovePostReaction(c.UserContext(), uint(userID), uint(reactionID), postID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetUserPostReactions handles GET /posts/:id/reactions/user/:userId
func (s *Server) GetUserPostReactions(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	reactionIDs, err := s.reactionRepo.GetUserPostReactions(c.UserContext(), postID, userID)
	if err != nil {
		return respondError(c, err)
	}
	if reactionIDs == nil {
		reactionIDs = []uint{}
	}
	return c.JSON(reactionIDs)
}

// GetPostWithReactions handles GET /posts/:id/with-reactions?userId=. The
// userId parameter is optional; anonymous callers get an empty user reaction
// list alongside the tallies.
func (s *Server) GetPostWithReactions(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	userID := c.QueryInt("userId", 0)
	if userID < 0 {
		userID = 0
	}

	view, err := s.reactionRepo.GetPostWithReactions(c.UserContext(), postID, uint(userID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}
