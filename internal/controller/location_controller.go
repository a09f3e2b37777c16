// internal/controller/location_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"imobhub_backend/pkg/utils/location"
)

func GetStates(c *fiber.Ctx) error {
	if region := c.Query("region"); region != "" {
		return c.JSON(fiber.Map{
			"states": location.GetStatesByRegion(region),
		})
	}
	return c.JSON(fiber.Map{
		"states": location.GetStates(),
	})
}

func GetState(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "State code is required",
		})
	}

	state, ok := location.GetState(code)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "State not found",
		})
	}
	return c.JSON(state)
}
