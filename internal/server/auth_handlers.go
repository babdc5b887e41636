package server

import (
	"time"

	"rare/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register handles POST /register. The response never includes the password;
// the stored value is a bcrypt hash.
func (s *Server) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if user.FirstName == "" || user.LastName == "" || user.Username == "" ||
		user.Email == "" || user.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("First name, last name, username, email, and password are required"))
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return respondError(c, err)
	}
	if exists {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User with this email already exists"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	user.Password = string(hashed)
	user.Active = true
	if user.CreatedOn.IsZero() {
		user.CreatedOn = time.Now().UTC()
	}

	if err := s.userRepo.Create(ctx, &user); err != nil {
		// A concurrent signup can slip past the exists check; the repository
		// reports the constraint violation as the same validation error.
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /login. Both unknown emails and wrong passwords produce
// a 200 with valid=false and a null token; the token on success is the user id.
func (s *Server) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetCredentials(ctx, req.Email)
	if err != nil {
		return respondError(c, err)
	}

	if user == nil {
		return c.JSON(models.LoginResponse{Valid: false, Token: nil})
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return c.JSON(models.LoginResponse{Valid: false, Token: nil})
	}

	return c.JSON(models.LoginResponse{Valid: true, Token: &user.ID})
}
