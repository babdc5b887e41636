package server

import (
	"time"

	"rare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	comments, err := s.commentRepo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// GetComment handles GET /comments/:id
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// CreateComment handles POST /comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var comment models.Comment
	if err := c.BodyParser(&comment); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if comment.Content == "" || comment.PostID == 0 || comment.AuthorID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content, post ID, and author ID are required"))
	}
	if comment.CreatedOn.IsZero() {
		comment.CreatedOn = time.Now().UTC()
	}

	if err := s.commentRepo.Create(c.UserContext(), &comment); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PUT /comments/:id. Only the content changes; subject
// and bindings are fixed at creation.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var comment models.Comment
	if parseErr := c.BodyParser(&comment); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	comment.ID = id

	if err := s.commentRepo.Update(ctx, &comment); err != nil {
		return respondError(c, err)
	}

	updated, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// DeleteComment handles DELETE /comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentRepo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPostComments handles GET /posts/:id/comments. A missing post is 404 even
// when orphaned comments reference its id.
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return respondError(c, err)
	}

	comments, err := s.commentRepo.GetByPostID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// GetPostCommentsWithDetails handles GET /posts/:id/comments-with-details
func (s *Server) GetPostCommentsWithDetails(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	details, err := s.commentRepo.GetWithDetailsByPostID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(details)
}
