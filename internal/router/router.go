package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"imobhub_backend/internal/controller"
	"imobhub_backend/internal/middleware"
	"imobhub_backend/internal/model"
	"imobhub_backend/internal/service"
	"imobhub_backend/pkg/utils/jwt"
)

type Dependencies struct {
	Services *service.Services
	Tokens   *jwt.Manager
	// Images may be nil when R2 is not configured.
	Images controller.ImageStore
	// AccessLog enables the request logger.
	AccessLog bool
}

func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	if deps.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New())

	setupRoutes(app, deps)
	return app
}

func setupRoutes(app *fiber.App, deps Dependencies) {
	svc := deps.Services

	authController := controller.NewAuthController(svc.Auth, deps.Tokens)
	propertyController := controller.NewPropertyController(svc.Properties)
	cityController := controller.NewCityController(svc)
	newsController := controller.NewNewsController(svc.News)
	settingsController := controller.NewSettingsController(svc.Settings)
	contactController := controller.NewContactController(svc.Contacts, svc.Properties)
	dashboardController := controller.NewDashboardController(svc.Dashboard)
	uploadController := controller.NewUploadController(deps.Images)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/login", authController.Login)

	// Public Properties Routes
	properties := api.Group("/properties")
	properties.Get("/", propertyController.SearchProperties)
	properties.Get("/featured", propertyController.GetFeatured)
	properties.Get("/city/:city", propertyController.GetByCity)
	properties.Get("/slug/:slug", propertyController.GetPropertyBySlug)
	properties.Get("/:id", propertyController.GetProperty)

	api.Get("/cities", cityController.ListCities)
	api.Get("/cities/:id", cityController.GetCity)

	api.Get("/news", newsController.ListPublished)
	api.Get("/news/:id", newsController.GetPublished)

	api.Get("/settings", settingsController.GetSettings)

	// Contact form
	api.Post("/contact", contactController.CreateContact)

	// Location routes
	api.Get("/locations/states", controller.GetStates)
	api.Get("/locations/states/:code", controller.GetState)

	// Protected Routes
	admin := api.Group("/admin",
		middleware.AuthMiddleware(deps.Tokens, svc.Auth),
		middleware.RequireRole(model.RoleAdmin, model.RoleAgent),
	)
	admin.Get("/me", authController.GetMe)
	admin.Post("/logout", authController.Logout)
	admin.Get("/dashboard", dashboardController.GetDashboardStats)

	adminProperties := admin.Group("/properties")
	adminProperties.Get("/", propertyController.ListProperties)
	adminProperties.Post("/", propertyController.CreateProperty)
	adminProperties.Put("/:id", propertyController.UpdateProperty)
	adminProperties.Delete("/:id", propertyController.DeleteProperty)

	adminCities := admin.Group("/cities")
	adminCities.Post("/", cityController.CreateCity)
	adminCities.Post("/recount", cityController.RecountCities)
	adminCities.Put("/:id", cityController.UpdateCity)
	adminCities.Delete("/:id", cityController.DeleteCity)

	adminNews := admin.Group("/news")
	adminNews.Get("/", newsController.ListAll)
	adminNews.Post("/", newsController.CreateNews)
	adminNews.Put("/:id", newsController.UpdateNews)
	adminNews.Delete("/:id", newsController.DeleteNews)

	admin.Put("/settings", middleware.RequireRole(model.RoleAdmin), settingsController.UpdateSettings)

	contacts := admin.Group("/contacts")
	contacts.Get("/", contactController.ListContacts)
	contacts.Put("/:id/status", contactController.UpdateContactStatus)
	contacts.Delete("/:id", contactController.DeleteContact)

	uploads := admin.Group("/uploads")
	uploads.Post("/", uploadController.UploadImage)
	uploads.Delete("/", uploadController.DeleteImage)
}
