package service

import (
	"sort"

	"imobhub_backend/internal/model"
)

// DashboardStats is the summary shown on the admin home page
type DashboardStats struct {
	TotalProperties     int                `json:"totalProperties"`
	AvailableProperties int                `json:"availableProperties"`
	ReservedProperties  int                `json:"reservedProperties"`
	SoldProperties      int                `json:"soldProperties"`
	RentedProperties    int                `json:"rentedProperties"`
	FeaturedProperties  int                `json:"featuredProperties"`
	AveragePrice        float64            `json:"averagePrice"`
	TotalCities         int                `json:"totalCities"`
	PublishedNews       int                `json:"publishedNews"`
	PendingContacts     int                `json:"pendingContacts"`
	PropertyTypeStats   []PropertyTypeStat `json:"propertyTypeStats"`
	TopCities           []model.City       `json:"topCities"`
}

type PropertyTypeStat struct {
	Type  model.PropertyType `json:"type"`
	Count int                `json:"count"`
}

const topCitiesLimit = 5

type DashboardService struct {
	properties *PropertyService
	cities     *CityService
	news       *NewsService
	contacts   *ContactService
}

func NewDashboardService(properties *PropertyService, cities *CityService, news *NewsService, contacts *ContactService) *DashboardService {
	return &DashboardService{
		properties: properties,
		cities:     cities,
		news:       news,
		contacts:   contacts,
	}
}

func (s *DashboardService) Stats() DashboardStats {
	var stats DashboardStats

	properties := s.properties.GetAll()
	stats.TotalProperties = len(properties)

	typeCounts := make(map[model.PropertyType]int)
	var total float64
	for _, p := range properties {
		switch p.Status {
		case model.PropertyStatusAvailable:
			stats.AvailableProperties++
		case model.PropertyStatusReserved:
			stats.ReservedProperties++
		case model.PropertyStatusSold:
			stats.SoldProperties++
		case model.PropertyStatusRented:
			stats.RentedProperties++
		}
		if p.Featured {
			stats.FeaturedProperties++
		}
		typeCounts[p.Type]++
		total += p.Price
	}
	if len(properties) > 0 {
		stats.AveragePrice = total / float64(len(properties))
	}

	stats.PropertyTypeStats = make([]PropertyTypeStat, 0, len(typeCounts))
	for t, n := range typeCounts {
		stats.PropertyTypeStats = append(stats.PropertyTypeStats, PropertyTypeStat{Type: t, Count: n})
	}
	sort.Slice(stats.PropertyTypeStats, func(i, j int) bool {
		a, b := stats.PropertyTypeStats[i], stats.PropertyTypeStats[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Type < b.Type
	})

	cities := s.cities.GetAll()
	stats.TotalCities = len(cities)
	sort.SliceStable(cities, func(i, j int) bool {
		return cities[i].PropertiesCount > cities[j].PropertiesCount
	})
	if len(cities) > topCitiesLimit {
		cities = cities[:topCitiesLimit]
	}
	stats.TopCities = cities

	stats.PublishedNews = len(s.news.GetPublished())
	stats.PendingContacts = s.contacts.CountPending()

	return stats
}
