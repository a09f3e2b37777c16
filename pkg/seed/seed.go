package seed

import (
	"log"
	"time"

	"imobhub_backend/internal/model"
	"imobhub_backend/internal/service"
	"imobhub_backend/pkg/kvstore"
)

const defaultMapURL = "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3657.1!2d-46.6!3d-23.5!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x0%3A0x0!2zMjPCsDMwJzAwLjAiUyA0NsKwMzYnMDAuMCJX!5e0!3m2!1spt!2sbr!4v1000000000000!5m2!1spt!2sbr"

func DefaultUser(now time.Time) model.User {
	return model.User{
		ID:        "1",
		Email:     "conquista@imobhub.com.br",
		Name:      "Admin Conquista",
		Role:      model.RoleAdmin,
		IsActive:  true,
		CreatedAt: service.FormatTimestamp(now),
	}
}

func DefaultSettings() model.Settings {
	settings := service.DefaultSettings()
	settings.MapURL = defaultMapURL
	settings.SocialMedia = model.SocialMedia{
		Instagram: "https://instagram.com/conquistaimobhub",
		Facebook:  "https://facebook.com/conquistaimobhub",
		WhatsApp:  "https://wa.me/5511999999999",
	}
	return settings
}

func DefaultCities() []model.City {
	return []model.City{
		{ID: "1", Name: "São Paulo", State: "SP"},
		{ID: "2", Name: "Rio de Janeiro", State: "RJ"},
		{ID: "3", Name: "Belo Horizonte", State: "MG"},
		{ID: "4", Name: "Salvador", State: "BA"},
		{ID: "5", Name: "Curitiba", State: "PR"},
	}
}

// InitializeDefaultData writes the admin user, site settings and starter
// cities, each only when missing. Safe to run on every start.
func InitializeDefaultData(store *kvstore.Store) {
	if users := kvstore.GetList[model.User](store, service.KeyUsers); len(users) == 0 {
		kvstore.SetList(store, service.KeyUsers, []model.User{DefaultUser(time.Now())})
		log.Println("Default admin user seeded")
	}

	if settings := kvstore.GetSingle[model.Settings](store, service.KeySettings); settings == nil {
		kvstore.SetSingle(store, service.KeySettings, DefaultSettings())
		log.Println("Default settings seeded")
	}

	if cities := kvstore.GetList[model.City](store, service.KeyCities); len(cities) == 0 {
		kvstore.SetList(store, service.KeyCities, DefaultCities())
		log.Println("Default cities seeded")
	}
}
