package server

import (
	"strings"
	"time"

	"rare/internal/models"
	"rare/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /posts, newest publication first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if post.Title == "" || post.Content == "" || post.UserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title, content, and user ID are required"))
	}
	if post.PublicationDate.IsZero() {
		post.PublicationDate = time.Now().UTC()
	}

	if err := s.postRepo.Create(c.UserContext(), &post); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var post models.Post
	if parseErr := c.BodyParser(&post); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	post.ID = id

	if err := s.postRepo.Update(ctx, &post); err != nil {
		return respondError(c, err)
	}

	updated, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// DeletePost handles DELETE /posts/:id. The row is removed outright; rows in
// other tables that still reference it make the store reject the delete, which
// surfaces as a 500.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postRepo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SearchPosts handles GET /posts/search?q=
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Search query is required"))
	}

	posts, err := s.postRepo.Search(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetUserPosts handles GET /users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	posts, err := s.postRepo.GetByAuthorID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetTagPosts handles GET /tags/:id/posts (approved posts only)
func (s *Server) GetTagPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	posts, err := s.postRepo.GetByTagID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// UploadHeaderImage handles POST /posts/:id/header-image
func (s *Server) UploadHeaderImage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req models.UploadImageRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	dataURL, err := s.headerService.ValidateAndStore(req.ImageData, req.FileName, req.ContentType)
	if err != nil {
		observability.ImageUploads.WithLabelValues("header", "rejected").Inc()
		return respondError(c, err)
	}

	if err := s.postRepo.UpdateHeaderImage(ctx, id, dataURL); err != nil {
		return respondError(c, err)
	}

	observability.ImageUploads.WithLabelValues("header", "accepted").Inc()
	return c.JSON(models.UploadImageResponse{ImageURL: dataURL})
}

// GetHeaderImage handles GET /posts/:id/header-image
func (s *Server) GetHeaderImage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	dataURL, err := s.postRepo.GetHeaderImage(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.UploadImageResponse{ImageURL: dataURL})
}

// DeleteHeaderImage handles DELETE /posts/:id/header-image
func (s *Server) DeleteHeaderImage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postRepo.UpdateHeaderImage(c.UserContext(), id, ""); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
