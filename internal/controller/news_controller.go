package controller

import (
	"github.com/gofiber/fiber/v2"

	"imobhub_backend/internal/model"
	"imobhub_backend/internal/service"
)

type NewsInput struct {
	Title       string             `json:"title" validate:"required,max=200"`
	Description string             `json:"description" validate:"required"`
	Content     string             `json:"content" validate:"required"`
	Image       string             `json:"image"`
	Author      string             `json:"author" validate:"required"`
	Published   bool               `json:"published"`
	Category    model.NewsCategory `json:"category" validate:"omitempty,oneof=market tips news financing"`
}

type NewsUpdateInput struct {
	Title       *string             `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string             `json:"description"`
	Content     *string             `json:"content"`
	Image       *string             `json:"image"`
	Author      *string             `json:"author"`
	Published   *bool               `json:"published"`
	Category    *model.NewsCategory `json:"category" validate:"omitempty,oneof=market tips news financing"`
}

type NewsController struct {
	news *service.NewsService
}

func NewNewsController(news *service.NewsService) *NewsController {
	return &NewsController{news: news}
}

// ListPublished sitede görünen haberler
func (nc *NewsController) ListPublished(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"news": nc.news.GetPublished(),
	})
}

// GetPublished returns 404 for drafts so unpublished articles stay private.
func (nc *NewsController) GetPublished(c *fiber.Ctx) error {
	news, ok := nc.news.GetByID(c.Params("id"))
	if !ok || !news.Published {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "News not found",
		})
	}
	return c.JSON(news)
}

func (nc *NewsController) ListAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"news": nc.news.GetAll(),
	})
}

func (nc *NewsController) CreateNews(c *fiber.Ctx) error {
	input := new(NewsInput)
	if ok, err := parseBody(c, input); !ok {
		return err
	}

	news := nc.news.Create(model.NewsFields{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		Image:       input.Image,
		Author:      input.Author,
		Published:   input.Published,
		Category:    input.Category,
	})
	return c.Status(fiber.StatusCreated).JSON(news)
}

func (nc *NewsController) UpdateNews(c *fiber.Ctx) error {
	input := new(NewsUpdateInput)
	if ok, err := parseBody(c, input); !ok {
		return err
	}

	news, ok := nc.news.Update(c.Params("id"), model.NewsPatch{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		Image:       input.Image,
		Author:      input.Author,
		Published:   input.Published,
		Category:    input.Category,
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "News not found",
		})
	}
	return c.JSON(news)
}

func (nc *NewsController) DeleteNews(c *fiber.Ctx) error {
	if !nc.news.Delete(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "News not found",
		})
	}
	return c.JSON(fiber.Map{
		"message": "News deleted successfully",
	})
}
