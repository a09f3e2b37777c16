package service

import (
	"strings"

	"imobhub_backend/internal/model"
	"imobhub_backend/pkg/kvstore"
)

type CityService struct {
	items collection[model.City]
}

func NewCityService(store *kvstore.Store) *CityService {
	return &CityService{
		items: collection[model.City]{
			store: store,
			key:   KeyCities,
			id:    func(c *model.City) string { return c.ID },
		},
	}
}

func (s *CityService) GetAll() []model.City {
	return s.items.all()
}

func (s *CityService) GetByID(id string) (*model.City, bool) {
	return s.items.find(id)
}

func (s *CityService) Create(fields model.CityFields) model.City {
	city := model.City{
		ID:              newID(),
		Name:            fields.Name,
		State:           fields.State,
		PropertiesCount: fields.PropertiesCount,
	}
	s.items.add(city)
	return city
}

func (s *CityService) Update(id string, patch model.CityPatch) (*model.City, bool) {
	return s.items.update(id, patch.Apply)
}

func (s *CityService) Delete(id string) bool {
	return s.items.remove(id)
}

// RecountProperties sets each city's propertiesCount to the number of
// properties whose city equals its name, ignoring case and surrounding spaces.
// Nothing is written when every count is already correct.
func (s *CityService) RecountProperties(properties []model.Property) {
	counts := make(map[string]int)
	for _, p := range properties {
		counts[normalizeCity(p.City)]++
	}

	cities := s.items.all()
	dirty := false
	for i := range cities {
		n := counts[normalizeCity(cities[i].Name)]
		if cities[i].PropertiesCount != n {
			cities[i].PropertiesCount = n
			dirty = true
		}
	}

	if dirty {
		s.items.save(cities)
	}
}

func normalizeCity(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
