package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrack-app/medtrack/internal/models"
	"github.com/medtrack-app/medtrack/internal/services"
)

type registerInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createAdminInput struct {
	registerInput
	AdminKey string `json:"admin_key"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	return handler.registerWithRole(c, input, models.RoleUser)
}

// CreateAdmin is the privileged registration path; the shared secret is
// checked before anything else so the endpoint leaks nothing without it.
func (handler *Handler) CreateAdmin(c *fiber.Ctx) error {
	input := createAdminInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if handler.adminSecret == "" || input.AdminKey != handler.adminSecret {
		return apiError(c, fiber.StatusForbidden, "invalid admin key")
	}
	return handler.registerWithRole(c, input.registerInput, models.RoleAdmin)
}

func (handler *Handler) registerWithRole(c *fiber.Ctx, input registerInput, role string) error {
	user, err := handler.authService.RegisterUser(services.RegistrationInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	}, role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields),
			errors.Is(err, services.ErrInvalidEmail),
			errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "user registered successfully",
		"token":   token,
		"user":    user,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Email == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		// Same message for unknown email and wrong password.
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}
