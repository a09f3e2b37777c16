package controller

import (
	"github.com/gofiber/fiber/v2"

	"imobhub_backend/internal/model"
	"imobhub_backend/internal/service"
)

type ContactInput struct {
	Name       string              `json:"name" validate:"required,max=100"`
	Email      string              `json:"email" validate:"required,email"`
	Phone      string              `json:"phone" validate:"required"`
	Message    string              `json:"message" validate:"max=2000"`
	PropertyID string              `json:"propertyId"`
	Source     model.ContactSource `json:"source" validate:"omitempty,oneof=website whatsapp email phone social"`
}

type ContactStatusInput struct {
	Status model.ContactStatus `json:"status" validate:"required"`
}

type ContactController struct {
	contacts   *service.ContactService
	properties *service.PropertyService
}

func NewContactController(contacts *service.ContactService, properties *service.PropertyService) *ContactController {
	return &ContactController{contacts: contacts, properties: properties}
}

func (cc *ContactController) CreateContact(c *fiber.Ctx) error {
	input := new(ContactInput)
	if ok, err := parseBody(c, input); !ok {
		return err
	}

	// İlan üzerinden gelen talepte ilan mevcut olmalı
	if input.PropertyID != "" {
		if _, ok := cc.properties.GetByID(input.PropertyID); !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
	}

	cc.contacts.Create(model.ContactFields{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		PropertyID: input.PropertyID,
		Source:     input.Source,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your message has been sent successfully. We will contact you soon.",
	})
}

func (cc *ContactController) ListContacts(c *fiber.Ctx) error {
	contacts := cc.contacts.GetAll()

	// Duruma göre filtrele
	if status := model.ContactStatus(c.Query("status")); status != "" {
		filtered := make([]model.ContactMessage, 0, len(contacts))
		for _, contact := range contacts {
			if contact.Status == status {
				filtered = append(filtered, contact)
			}
		}
		contacts = filtered
	}

	return c.JSON(fiber.Map{
		"contacts": contacts,
		"pending":  cc.contacts.CountPending(),
	})
}

func (cc *ContactController) UpdateContactStatus(c *fiber.Ctx) error {
	input := new(ContactStatusInput)
	if ok, err := parseBody(c, input); !ok {
		return err
	}

	if !model.ValidContactStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status",
		})
	}

	contact, ok := cc.contacts.UpdateStatus(c.Params("id"), input.Status)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contact not found",
		})
	}
	return c.JSON(contact)
}

func (cc *ContactController) DeleteContact(c *fiber.Ctx) error {
	if !cc.contacts.Delete(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contact not found",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Contact deleted successfully",
	})
}
