package model

// Property Types
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypePenthouse  PropertyType = "penthouse"
	PropertyTypeStudio     PropertyType = "studio"
	PropertyTypeDuplex     PropertyType = "duplex"
)

// Property Purpose
type PropertyPurpose string

const (
	PurposeBuy    PropertyPurpose = "buy"
	PurposeRent   PropertyPurpose = "rent"
	PurposeSeason PropertyPurpose = "season"
)

// Property Status
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusReserved  PropertyStatus = "reserved"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Property is stored with the camelCase field names used by the site front end.
type Property struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Type        PropertyType    `json:"type"`
	Purpose     PropertyPurpose `json:"purpose"`
	City        string          `json:"city"`
	Address     string          `json:"address"`
	Area        float64         `json:"area"`
	Bedrooms    *int            `json:"bedrooms,omitempty"`
	Bathrooms   *int            `json:"bathrooms,omitempty"`
	Garage      *int            `json:"garage,omitempty"`
	Images      []string        `json:"images"`
	Featured    bool            `json:"featured"`
	Status      PropertyStatus  `json:"status"`
	Priority    Priority        `json:"priority"`
	CreatedAt   string          `json:"createdAt"`

	// Opsiyonel alanlar
	Neighborhood string   `json:"neighborhood,omitempty"`
	ZipCode      string   `json:"zipCode,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	VideoURL     string   `json:"videoUrl,omitempty"`
	Slug         string   `json:"slug,omitempty"`
}

// PropertyFields is everything a caller supplies when creating a property.
type PropertyFields struct {
	Title        string
	Description  string
	Price        float64
	Type         PropertyType
	Purpose      PropertyPurpose
	City         string
	Address      string
	Area         float64
	Bedrooms     *int
	Bathrooms    *int
	Garage       *int
	Images       []string
	Featured     bool
	Status       PropertyStatus
	Priority     Priority
	Neighborhood string
	ZipCode      string
	Amenities    []string
	Tags         []string
	VideoURL     string
}

// PropertyPatch holds the fields to change; nil fields are left untouched.
type PropertyPatch struct {
	Title        *string
	Description  *string
	Price        *float64
	Type         *PropertyType
	Purpose      *PropertyPurpose
	City         *string
	Address      *string
	Area         *float64
	Bedrooms     *int
	Bathrooms    *int
	Garage       *int
	Images       *[]string
	Featured     *bool
	Status       *PropertyStatus
	Priority     *Priority
	Neighborhood *string
	ZipCode      *string
	Amenities    *[]string
	Tags         *[]string
	VideoURL     *string
}

// Apply merges the patch into p. id, createdAt and slug are never touched.
func (patch PropertyPatch) Apply(p *Property) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Purpose != nil {
		p.Purpose = *patch.Purpose
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Area != nil {
		p.Area = *patch.Area
	}
	if patch.Bedrooms != nil {
		p.Bedrooms = intPtr(*patch.Bedrooms)
	}
	if patch.Bathrooms != nil {
		p.Bathrooms = intPtr(*patch.Bathrooms)
	}
	if patch.Garage != nil {
		p.Garage = intPtr(*patch.Garage)
	}
	if patch.Images != nil {
		p.Images = append([]string{}, (*patch.Images)...)
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	if patch.Neighborhood != nil {
		p.Neighborhood = *patch.Neighborhood
	}
	if patch.ZipCode != nil {
		p.ZipCode = *patch.ZipCode
	}
	if patch.Amenities != nil {
		p.Amenities = append([]string{}, (*patch.Amenities)...)
	}
	if patch.Tags != nil {
		p.Tags = append([]string{}, (*patch.Tags)...)
	}
	if patch.VideoURL != nil {
		p.VideoURL = *patch.VideoURL
	}
}

// SearchFilters narrows a property listing. Zero values impose no constraint.
type SearchFilters struct {
	Purpose     PropertyPurpose
	Type        PropertyType
	City        string
	Status      PropertyStatus
	MinPrice    *float64
	MaxPrice    *float64
	MinBedrooms *int
}

func intPtr(v int) *int {
	return &v
}
