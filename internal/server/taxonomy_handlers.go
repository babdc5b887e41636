package server

import (
	"rare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /categories, ordered by label.
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// GetCategory handles GET /categories/:id
func (s *Server) GetCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	category, err := s.categoryRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// CreateCategory handles POST /categories. Duplicate labels are accepted.
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if category.Label == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Label is required"))
	}

	if err := s.categoryRepo.Create(c.UserContext(), &category); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory handles PUT /categories/:id
func (s *Server) UpdateCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var category models.Category
	if parseErr := c.BodyParser(&category); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	category.ID = id

	if err := s.categoryRepo.Update(ctx, &category); err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// DeleteCategory handles DELETE /categories/:id
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.categoryRepo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetTags handles GET /tags
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.tagRepo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tags)
}

// GetTag handles GET /tags/:id
func (s *Server) GetTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.tagRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tag)
}

// CreateTag handles POST /tags
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var tag models.Tag
	if err := c.BodyParser(&tag); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if tag.Label == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Label is required"))
	}

	if err := s.tagRepo.Create(c.UserContext(), &tag); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// UpdateTag handles PUT /tags/:id
func (s *Server) UpdateTag(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var tag models.Tag
	if parseErr := c.BodyParser(&tag); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	tag.ID = id

	if err := s.tagRepo.Update(ctx, &tag); err != nil {
		return respondError(c, err)
	}
	return c.JSON(tag)
}

// DeleteTag handles DELETE /tags/:id
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tagRepo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPostTags handles GET /posts/:id/tags
func (s *Server) GetPostTags(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tags, err := s.tagRepo.GetPostTags(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tags)
}

// SavePostTags handles PUT /posts/:id/tags. The body is the full tag id list;
// the stored set is replaced in one transaction and the new tag list returned.
func (s *Server) SavePostTags(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var tagIDs []uint
	if parseErr := c.BodyParser(&tagIDs); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.tagRepo.SavePostTags(ctx, id, tagIDs); err != nil {
		return respondError(c, err)
	}

	tags, err := s.tagRepo.GetPostTags(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tags)
}
