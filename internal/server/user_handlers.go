package server

import (
	"rare/internal/models"
	"rare/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userRepo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetUser handles GET /users/:id. Deactivated accounts are still returned.
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PUT /users/:id. Password changes are not part of this
// endpoint; the column is left untouched.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var user models.User
	if parseErr := c.BodyParser(&user); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	user.ID = id

	if err := s.userRepo.Update(ctx, &user); err != nil {
		return respondError(c, err)
	}

	updated, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// DeleteUser handles DELETE /users/:id (soft delete)
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userRepo.SoftDelete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadProfilePicture handles POST /users/:id/profile-picture
func (s *Server) UploadProfilePicture(c *fiber.Ctx) error {
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

	dataURL, err := s.avatarService.ValidateAndStore(req.ImageData, req.FileName, req.ContentType)
	if err != nil {
		observability.ImageUploads.WithLabelValues("avatar", "rejected").Inc()
		return respondError(c, err)
	}

	if err := s.userRepo.UpdateProfilePicture(ctx, id, dataURL); err != nil {
		return respondError(c, err)
	}

	observability.ImageUploads.WithLabelValues("avatar", "accepted").Inc()
	return c.JSON(models.UploadImageResponse{ImageURL: dataURL})
}

// GetProfilePicture handles GET /users/:id/profile-picture
func (s *Server) GetProfilePicture(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	dataURL, err := s.userRepo.GetProfilePicture(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.UploadImageResponse{ImageURL: dataURL})
}

// DeleteProfilePicture handles DELETE /users/:id/profile-picture
func (s *Server) DeleteProfilePicture(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userRepo.ClearProfilePicture(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
