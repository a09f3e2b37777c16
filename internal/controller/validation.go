package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseBody decodes the JSON body into input and runs its validate tags.
// On failure the 400 response has already been written and the returned
// error is the result of writing it.
func parseBody(c *fiber.Ctx, input interface{}) (bool, error) {
	if err := c.BodyParser(input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := validate.Struct(input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": validationDetails(err),
		})
	}

	return true, nil
}

func validationDetails(err error) []string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s failed on %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			details = append(details, fmt.Sprintf("%s failed on %s", field, fe.Tag()))
		}
	}
	return details
}
