package controller

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"imobhub_backend/internal/model"
	"imobhub_backend/internal/service"
)

const MaxPropertyImages = 30

type PropertyInput struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Description string                `json:"description" validate:"required"`
	Price       float64               `json:"price" validate:"gte=0"`
	Type        model.PropertyType    `json:"type" validate:"required,oneof=house apartment commercial land penthouse studio duplex"`
	Purpose     model.PropertyPurpose `json:"purpose" validate:"required,oneof=buy rent season"`
	City        string                `json:"city" validate:"required"`
	Address     string                `json:"address" validate:"required"`
	Area        float64               `json:"area" validate:"gte=0"`
	Bedrooms    *int                  `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms   *int                  `json:"bathrooms" validate:"omitempty,min=0"`
	Garage      *int                  `json:"garage" validate:"omitempty,min=0"`
	Images      []string              `json:"images" validate:"dive,required"`
	Featured    bool                  `json:"featured"`
	Status      model.PropertyStatus  `json:"status" validate:"omitempty,oneof=available reserved sold rented"`
	Priority    model.Priority        `json:"priority" validate:"omitempty,oneof=low medium high"`

	Neighborhood string   `json:"neighborhood"`
	ZipCode      string   `json:"zipCode"`
	Amenities    []string `json:"amenities"`
	Tags         []string `json:"tags"`
	VideoURL     string   `json:"videoUrl" validate:"omitempty,url"`
}

// PropertyUpdateInput only changes the fields present in the body
type PropertyUpdateInput struct {
	Title        *string                `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string                `json:"description"`
	Price        *float64               `json:"price" validate:"omitempty,gte=0"`
	Type         *model.PropertyType    `json:"type" validate:"omitempty,oneof=house apartment commercial land penthouse studio duplex"`
	Purpose      *model.PropertyPurpose `json:"purpose" validate:"omitempty,oneof=buy rent season"`
	City         *string                `json:"city" validate:"omitempty,min=1"`
	Address      *string                `json:"address"`
	Area         *float64               `json:"area" validate:"omitempty,gte=0"`
	Bedrooms     *int                   `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms    *int                   `json:"bathrooms" validate:"omitempty,min=0"`
	Garage       *int                   `json:"garage" validate:"omitempty,min=0"`
	Images       *[]string              `json:"images"`
	Featured     *bool                  `json:"featured"`
	Status       *model.PropertyStatus  `json:"status" validate:"omitempty,oneof=available reserved sold rented"`
	Priority     *model.Priority        `json:"priority" validate:"omitempty,oneof=low medium high"`
	Neighborhood *string                `json:"neighborhood"`
	ZipCode      *string                `json:"zipCode"`
	Amenities    *[]string              `json:"amenities"`
	Tags         *[]string              `json:"tags"`
	VideoURL     *string                `json:"videoUrl" validate:"omitempty,url"`
}

func (in PropertyInput) fields() model.PropertyFields {
	return model.PropertyFields{
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		Type:         in.Type,
		Purpose:      in.Purpose,
		City:         in.City,
		Address:      in.Address,
		Area:         in.Area,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		Garage:       in.Garage,
		Images:       in.Images,
		Featured:     in.Featured,
		Status:       in.Status,
		Priority:     in.Priority,
		Neighborhood: in.Neighborhood,
		ZipCode:      in.ZipCode,
		Amenities:    in.Amenities,
		Tags:         in.Tags,
		VideoURL:     in.VideoURL,
	}
}

func (in PropertyUpdateInput) patch() model.PropertyPatch {
	return model.PropertyPatch{
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		Type:         in.Type,
		Purpose:      in.Purpose,
		City:         in.City,
		Address:      in.Address,
		Area:         in.Area,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		Garage:       in.Garage,
		Images:       in.Images,
		Featured:     in.Featured,
		Status:       in.Status,
		Priority:     in.Priority,
		Neighborhood: in.Neighborhood,
		ZipCode:      in.ZipCode,
		Amenities:    in.Amenities,
		Tags:         in.Tags,
		VideoURL:     in.VideoURL,
	}
}

type PropertyController struct {
	properties *service.PropertyService
}

func NewPropertyController(properties *service.PropertyService) *PropertyController {
	return &PropertyController{properties: properties}
}

// SearchProperties filtreleri query string'den okur
func (pc *PropertyController) SearchProperties(c *fiber.Ctx) error {
	filters := model.SearchFilters{
		Purpose: model.PropertyPurpose(c.Query("purpose")),
		Type:    model.PropertyType(c.Query("type")),
		City:    c.Query("city"),
		Status:  model.PropertyStatus(c.Query("status")),
	}

	var err error
	if filters.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		return err
	}
	if filters.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		return err
	}
	if filters.MinBedrooms, err = queryInt(c, "minBedrooms"); err != nil {
		return err
	}

	properties := pc.properties.Search(filters)
	return c.JSON(fiber.Map{
		"properties": properties,
		"total":      len(properties),
	})
}

func (pc *PropertyController) ListProperties(c *fiber.Ctx) error {
	properties := pc.properties.GetAll()
	return c.JSON(fiber.Map{
		"properties": properties,
		"total":      len(properties),
	})
}

func (pc *PropertyController) GetFeatured(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"properties": pc.properties.GetFeatured(),
	})
}

func (pc *PropertyController) GetByCity(c *fiber.Ctx) error {
	// Path parametreleri escape edilmiş gelir: "S%C3%A3o%20Paulo"
	city, err := url.PathUnescape(c.Params("city"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid city",
		})
	}
	if strings.TrimSpace(city) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "City is required",
		})
	}

	return c.JSON(fiber.Map{
		"properties": pc.properties.GetByCity(city),
	})
}

func (pc *PropertyController) GetProperty(c *fiber.Ctx) error {
	property, ok := pc.properties.GetByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	return c.JSON(property)
}

func (pc *PropertyController) GetPropertyBySlug(c *fiber.Ctx) error {
	property, ok := pc.properties.GetBySlug(c.Params("slug"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	return c.JSON(property)
}

// CreateProperty yeni emlak ilanı oluşturur
func (pc *PropertyController) CreateProperty(c *fiber.Ctx) error {
	input := new(PropertyInput)
	if ok, err := parseBody(c, input); !ok {
		return err
	}

	// Resim sayısı kontrolü
	if len(input.Images) > MaxPropertyImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Maximum %d images allowed", MaxPropertyImages),
		})
	}

	property := pc.properties.Create(input.fields())
	return c.Status(fiber.StatusCreated).JSON(property)
}

// UpdateProperty emlak ilanını günceller
func (pc *PropertyController) UpdateProperty(c *fiber.Ctx) error {
	input := new(PropertyUpdateInput)
	if ok, err := parseBody(c, input); !ok {
		return err
	}

	if input.Images != nil && len(*input.Images) > MaxPropertyImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Maximum %d images allowed", MaxPropertyImages),
		})
	}

	property, ok := pc.properties.Update(c.Params("id"), input.patch())
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	return c.JSON(property)
}

func (pc *PropertyController) DeleteProperty(c *fiber.Ctx) error {
	if !pc.properties.Delete(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Property deleted successfully",
	})
}

// queryFloat returns nil when the parameter is absent. A malformed value
// becomes a 400 fiber.Error for the app's error handler.
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid %s", key))
	}
	return &v, nil
}

func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid %s", key))
	}
	return &v, nil
}
