package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"imobhub_backend/internal/model"
	"imobhub_backend/internal/service"
	"imobhub_backend/pkg/utils/location"
)

type CityInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	State string `json:"state" validate:"required,len=2"`
}

type CityUpdateInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	State *string `json:"state" validate:"omitempty,len=2"`
}

type CityController struct {
	services *service.Services
}

func NewCityController(services *service.Services) *CityController {
	return &CityController{services: services}
}

func (cc *CityController) ListCities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"cities": cc.services.Cities.GetAll(),
	})
}

func (cc *CityController) GetCity(c *fiber.Ctx) error {
	city, ok := cc.services.Cities.GetByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "City not found",
		})
	}
	return c.JSON(city)
}

func (cc *CityController) CreateCity(c *fiber.Ctx) error {
	input := new(CityInput)
	if ok, err := parseBody(c, input); !ok {
		return err
	}

	// UF kontrolü
	state := strings.ToUpper(input.State)
	if !location.IsValidState(state) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid state",
		})
	}

	city := cc.services.Cities.Create(model.CityFields{
		Name:  strings.TrimSpace(input.Name),
		State: state,
	})

	// Mevcut ilanları yeni şehre say
	cc.services.RecountCities()
	if counted, ok := cc.services.Cities.GetByID(city.ID); ok {
		city = *counted
	}

	return c.Status(fiber.StatusCreated).JSON(city)
}

func (cc *CityController) UpdateCity(c *fiber.Ctx) error {
	input := new(CityUpdateInput)
	if ok, err := parseBody(c, input); !ok {
		return err
	}

	if input.State != nil {
		state := strings.ToUpper(*input.State)
		if !location.IsValidState(state) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid state",
			})
		}
		input.State = &state
	}

	id := c.Params("id")
	if _, ok := cc.services.Cities.Update(id, model.CityPatch{Name: input.Name, State: input.State}); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "City not found",
		})
	}

	// İsim değişmiş olabilir
	cc.services.RecountCities()
	city, _ := cc.services.Cities.GetByID(id)
	return c.JSON(city)
}

func (cc *CityController) DeleteCity(c *fiber.Ctx) error {
	if !cc.services.Cities.Delete(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "City not found",
		})
	}
	return c.JSON(fiber.Map{
		"message": "City deleted successfully",
	})
}

func (cc *CityController) RecountCities(c *fiber.Ctx) error {
	cc.services.RecountCities()
	return c.JSON(fiber.Map{
		"cities": cc.services.Cities.GetAll(),
	})
}
