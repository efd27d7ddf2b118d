package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pda-backend/internal/db"
	"pda-backend/internal/services"
)

type registerInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "username, email and password are required")
	}

	if err := handler.auth.Register(input.Username, input.Email, input.Password); err != nil {
		if errors.Is(err, db.ErrDuplicateIdentity) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Registration failed",
				"details": err.Error(),
			})
		}
		handler.log.WithError(err).Error("registration failed")
		return apiError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Registered successfully"})
}

// Login responds exactly once: 401 on bad credentials, otherwise the
// token.
func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid input")
	}

	token, err := handler.auth.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		handler.log.WithError(err).Error("login failed")
		return apiError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(fiber.Map{"token": token})
}

func (handler *Handler) Profile(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Missing token")
	}

	user, err := handler.auth.Profile(claims.UserID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "User not found")
		}
		handler.log.WithError(err).Error("profile lookup failed")
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return c.JSON(fiber.Map{
		"username": user.Username,
		"email":    user.Email,
	})
}
