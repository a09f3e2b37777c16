package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"imobhub_backend/internal/service"
	"imobhub_backend/pkg/utils/jwt"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthController struct {
	auth   *service.AuthService
	tokens *jwt.Manager
}

func NewAuthController(auth *service.AuthService, tokens *jwt.Manager) *AuthController {
	return &AuthController{auth: auth, tokens: tokens}
}

// Login kullanıcı girişi
func (ac *AuthController) Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if ok, err := parseBody(c, input); !ok {
		return err
	}

	user := ac.auth.Login(input.Email, input.Password)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token, err := ac.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		log.Printf("Could not generate token for %s: %v", user.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user.GetPublicProfile(),
	})
}

// Logout ends the session; every token issued before it stops working.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.auth.Logout()
	return c.JSON(fiber.Map{
		"message": "Logout successful",
	})
}

func (ac *AuthController) GetMe(c *fiber.Ctx) error {
	user := ac.auth.GetCurrentUser()
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not logged in",
		})
	}
	return c.JSON(user.GetPublicProfile())
}
