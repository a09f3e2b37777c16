package service

import (
	"imobhub_backend/internal/model"
	"imobhub_backend/pkg/kvstore"
)

// Services bundles every entity service over one shared store.
type Services struct {
	Store      *kvstore.Store
	Properties *PropertyService
	Cities     *CityService
	News       *NewsService
	Settings   *SettingsService
	Auth       *AuthService
	Contacts   *ContactService
	Dashboard  *DashboardService
}

// New wires the services together. City counters are recomputed after every
// property mutation.
func New(store *kvstore.Store, creds Credentials) (*Services, error) {
	auth, err := NewAuthService(store, creds)
	if err != nil {
		return nil, err
	}

	properties := NewPropertyService(store)
	cities := NewCityService(store)
	news := NewNewsService(store)
	contacts := NewContactService(store)

	properties.OnChange(func(all []model.Property) {
		cities.RecountProperties(all)
	})

	return &Services{
		Store:      store,
		Properties: properties,
		Cities:     cities,
		News:       news,
		Settings:   NewSettingsService(store),
		Auth:       auth,
		Contacts:   contacts,
		Dashboard:  NewDashboardService(properties, cities, news, contacts),
	}, nil
}

// RecountCities brings every City.propertiesCount in line with the stored properties.
func (s *Services) RecountCities() {
	s.Cities.RecountProperties(s.Properties.GetAll())
}
