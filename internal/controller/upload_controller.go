package controller

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"imobhub_backend/pkg/utils/cloudflare"
	"imobhub_backend/pkg/utils/image"
	"imobhub_backend/pkg/utils/validation"
)

// ImageStore is where processed uploads end up; cloudflare.Uploader in production.
type ImageStore interface {
	UploadImage(ctx context.Context, cfg cloudflare.UploadImageConfig) (cloudflare.UploadResult, error)
	DeleteImage(ctx context.Context, fullURL string) error
}

type DeleteImageInput struct {
	URL string `json:"url" validate:"required,url"`
}

type UploadController struct {
	store ImageStore
}

// NewUploadController accepts a nil store; uploads then answer 503.
func NewUploadController(store ImageStore) *UploadController {
	return &UploadController{store: store}
}

// UploadImage resmi doğrular, yeniden encode eder ve R2'ye yükler
func (uc *UploadController) UploadImage(c *fiber.Ctx) error {
	if uc.store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Image storage is not configured",
		})
	}

	// Dosyayı al
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if err := validation.ValidateImage(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not read file",
		})
	}
	defer src.Close()

	processed, err := image.ProcessImage(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid image",
		})
	}

	result, err := uc.store.UploadImage(c.UserContext(), cloudflare.UploadImageConfig{
		Body:        processed.Body,
		ContentType: processed.ContentType,
		Extension:   processed.Extension,
		Folder:      c.FormValue("folder", "properties"),
		Name:        c.FormValue("name"),
	})
	if err != nil {
		log.Printf("Image upload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not upload image",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Image uploaded successfully",
		"url":     result.URL,
		"id":      result.CloudflareID,
	})
}

func (uc *UploadController) DeleteImage(c *fiber.Ctx) error {
	if uc.store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Image storage is not configured",
		})
	}

	input := new(DeleteImageInput)
	if ok, err := parseBody(c, input); !ok {
		return err
	}

	err := uc.store.DeleteImage(c.UserContext(), input.URL)
	if errors.Is(err, cloudflare.ErrForeignURL) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image does not belong to this site",
		})
	}
	if err != nil {
		log.Printf("Could not delete image: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete image",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
