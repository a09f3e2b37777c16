package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"imobhub_backend/internal/model"
	"imobhub_backend/pkg/kvstore"
)

// PropertyService handles listing records
type PropertyService struct {
	items    collection[model.Property]
	now      func() time.Time
	onChange func([]model.Property)
}

func NewPropertyService(store *kvstore.Store) *PropertyService {
	return &PropertyService{
		items: collection[model.Property]{
			store: store,
			key:   KeyProperties,
			id:    func(p *model.Property) string { return p.ID },
		},
		now: time.Now,
	}
}

// OnChange registers fn to run with the full collection after every
// successful create, update or delete.
func (s *PropertyService) OnChange(fn func([]model.Property)) {
	s.onChange = fn
}

func (s *PropertyService) changed() {
	if s.onChange != nil {
		s.onChange(s.items.all())
	}
}

// GetAll returns every property in insertion order
func (s *PropertyService) GetAll() []model.Property {
	return s.items.all()
}

func (s *PropertyService) GetFeatured() []model.Property {
	return s.items.filter(func(p *model.Property) bool { return p.Featured })
}

// GetByCity matches city names case-insensitively by substring, so "rio"
// finds both "Rio de Janeiro" and "Rio Branco".
func (s *PropertyService) GetByCity(city string) []model.Property {
	return s.items.filter(func(p *model.Property) bool { return cityMatches(p.City, city) })
}

func (s *PropertyService) GetByID(id string) (*model.Property, bool) {
	return s.items.find(id)
}

func (s *PropertyService) GetBySlug(propertySlug string) (*model.Property, bool) {
	for _, p := range s.items.all() {
		if p.Slug != "" && p.Slug == propertySlug {
			return &p, true
		}
	}
	return nil, false
}

// Search ANDs every provided filter over the collection, keeping insertion order.
func (s *PropertyService) Search(filters model.SearchFilters) []model.Property {
	return s.items.filter(func(p *model.Property) bool {
		if filters.Purpose != "" && p.Purpose != filters.Purpose {
			return false
		}
		if filters.Type != "" && p.Type != filters.Type {
			return false
		}
		if filters.City != "" && !cityMatches(p.City, filters.City) {
			return false
		}
		if filters.Status != "" && p.Status != filters.Status {
			return false
		}
		if filters.MinPrice != nil && p.Price < *filters.MinPrice {
			return false
		}
		if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
			return false
		}
		if filters.MinBedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms < *filters.MinBedrooms) {
			return false
		}
		return true
	})
}

// Create assigns id, createdAt and slug, then appends the property.
func (s *PropertyService) Create(fields model.PropertyFields) model.Property {
	existing := s.items.all()

	property := model.Property{
		ID:           newID(),
		Title:        fields.Title,
		Description:  fields.Description,
		Price:        fields.Price,
		Type:         fields.Type,
		Purpose:      fields.Purpose,
		City:         fields.City,
		Address:      fields.Address,
		Area:         fields.Area,
		Bedrooms:     fields.Bedrooms,
		Bathrooms:    fields.Bathrooms,
		Garage:       fields.Garage,
		Images:       append([]string{}, fields.Images...),
		Featured:     fields.Featured,
		Status:       fields.Status,
		Priority:     fields.Priority,
		CreatedAt:    timestamp(s.now),
		Neighborhood: fields.Neighborhood,
		ZipCode:      fields.ZipCode,
		Amenities:    fields.Amenities,
		Tags:         fields.Tags,
		VideoURL:     fields.VideoURL,
	}
	if property.Status == "" {
		property.Status = model.PropertyStatusAvailable
	}
	if property.Priority == "" {
		property.Priority = model.PriorityMedium
	}

	taken := make(map[string]bool, len(existing))
	for _, p := range existing {
		taken[p.Slug] = true
	}
	property.Slug = uniqueSlug(property.Title, property.ID, taken)

	s.items.save(append(existing, property))
	s.changed()

	return property
}

// Update merges the patch over the stored property. false when id is unknown.
func (s *PropertyService) Update(id string, patch model.PropertyPatch) (*model.Property, bool) {
	updated, ok := s.items.update(id, patch.Apply)
	if ok {
		s.changed()
	}
	return updated, ok
}

func (s *PropertyService) Delete(id string) bool {
	if !s.items.remove(id) {
		return false
	}
	s.changed()
	return true
}

func cityMatches(propertyCity, query string) bool {
	return strings.Contains(strings.ToLower(propertyCity), strings.ToLower(query))
}

// uniqueSlug builds a URL slug from title, suffixing -2, -3... on collision.
func uniqueSlug(title, id string, taken map[string]bool) string {
	base := slug.Make(title)
	if base == "" {
		base = id[:8]
	}

	candidate := base
	for i := 2; taken[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return candidate
}
