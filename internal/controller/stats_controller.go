package controller

import (
	"github.com/gofiber/fiber/v2"

	"imobhub_backend/internal/service"
)

type DashboardController struct {
	dashboard *service.DashboardService
}

func NewDashboardController(dashboard *service.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// GetDashboardStats dashboard istatistiklerini getirir
func (dc *DashboardController) GetDashboardStats(c *fiber.Ctx) error {
	return c.JSON(dc.dashboard.Stats())
}
