package main

import (
	"context"
	"errors"
	"log"

	"imobhub_backend/internal/router"
	"imobhub_backend/internal/service"
	"imobhub_backend/pkg/config"
	"imobhub_backend/pkg/cron"
	"imobhub_backend/pkg/kvstore"
	"imobhub_backend/pkg/seed"
	"imobhub_backend/pkg/utils/cloudflare"
	"imobhub_backend/pkg/utils/jwt"
	"imobhub_backend/pkg/utils/location"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	if err := location.Init(); err != nil {
		log.Fatal("Could not initialize location data: ", err)
	}

	backend, err := kvstore.Open(cfg.Store)
	if err != nil {
		log.Fatal("Could not open store: ", err)
	}
	store := kvstore.New(backend)
	log.Printf("Store backend: %s", cfg.Store.Driver)

	if cfg.Server.SeedOnStart {
		seed.InitializeDefaultData(store)
	}

	services, err := service.New(store, service.Credentials{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	if err != nil {
		log.Fatal("Could not initialize services: ", err)
	}
	services.RecountCities()

	recountCron, err := cron.InitCityRecountCron(cfg.Cron.CityRecount, services)
	if err != nil {
		log.Fatal(err)
	}
	defer recountCron.Stop()

	deps := router.Dependencies{
		Services:  services,
		Tokens:    jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TTL),
		AccessLog: true,
	}

	uploader, err := cloudflare.NewUploader(context.Background(), cfg.Storage)
	switch {
	case err == nil:
		deps.Images = uploader
	case errors.Is(err, cloudflare.ErrNotConfigured):
		log.Println("R2 credentials not set, image uploads disabled")
	default:
		log.Fatal("Could not initialize R2 client: ", err)
	}

	app := router.NewApp(deps)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
