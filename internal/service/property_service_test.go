package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imobhub_backend/internal/model"
	"imobhub_backend/pkg/kvstore"
)

func newTestStore() *kvstore.Store {
	return kvstore.New(kvstore.NewMemoryBackend())
}

func intValue(v int) *int { return &v }

func floatValue(v float64) *float64 { return &v }

func sampleFields(title, city string, purpose model.PropertyPurpose) model.PropertyFields {
	return model.PropertyFields{
		Title:       title,
		Description: "Imóvel de teste",
		Price:       450000,
		Type:        model.PropertyTypeApartment,
		Purpose:     purpose,
		City:        city,
		Address:     "Rua das Flores, 100",
		Area:        80,
		Bedrooms:    intValue(2),
		Images:      []string{"/img/1.jpg"},
	}
}

func TestPropertyService_Create(t *testing.T) {
	svc := NewPropertyService(newTestStore())
	svc.now = func() time.Time { return time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC) }

	created := svc.Create(sampleFields("Apartamento no Leblon", "Rio de Janeiro", model.PurposeBuy))

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2025-03-14T12:30:00.000Z", created.CreatedAt)
	assert.Equal(t, model.PropertyStatusAvailable, created.Status)
	assert.Equal(t, model.PriorityMedium, created.Priority)
	assert.Equal(t, "apartamento-no-leblon", created.Slug)

	all := svc.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])
}

func TestPropertyService_CreateAssignsUniqueIDsAndSlugs(t *testing.T) {
	svc := NewPropertyService(newTestStore())

	ids := make(map[string]bool)
	slugs := make(map[string]bool)
	for i := 0; i < 5; i++ {
		p := svc.Create(sampleFields("Casa na praia", "Salvador", model.PurposeBuy))
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		assert.False(t, slugs[p.Slug], "duplicate slug %s", p.Slug)
		ids[p.ID] = true
		slugs[p.Slug] = true
	}

	assert.True(t, slugs["casa-na-praia"])
	assert.True(t, slugs["casa-na-praia-2"])
	assert.True(t, slugs["casa-na-praia-5"])
}

func TestPropertyService_CreateKeepsExplicitStatus(t *testing.T) {
	svc := NewPropertyService(newTestStore())

	fields := sampleFields("Sala comercial", "Curitiba", model.PurposeRent)
	fields.Status = model.PropertyStatusRented
	fields.Priority = model.PriorityHigh

	created := svc.Create(fields)
	assert.Equal(t, model.PropertyStatusRented, created.Status)
	assert.Equal(t, model.PriorityHigh, created.Priority)
}

func TestPropertyService_Update(t *testing.T) {
	svc := NewPropertyService(newTestStore())
	created := svc.Create(sampleFields("Cobertura", "São Paulo", model.PurposeBuy))

	t.Run("merges only the given fields", func(t *testing.T) {
		price := 990000.0
		featured := true
		updated, ok := svc.Update(created.ID, model.PropertyPatch{Price: &price, Featured: &featured})
		require.True(t, ok)

		assert.Equal(t, 990000.0, updated.Price)
		assert.True(t, updated.Featured)
		assert.Equal(t, created.Title, updated.Title)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, created.Slug, updated.Slug)

		stored, found := svc.GetByID(created.ID)
		require.True(t, found)
		assert.Equal(t, *updated, *stored)
	})

	t.Run("unknown id leaves the collection untouched", func(t *testing.T) {
		before := svc.GetAll()
		title := "Outro"

		updated, ok := svc.Update("does-not-exist", model.PropertyPatch{Title: &title})
		assert.False(t, ok)
		assert.Nil(t, updated)
		assert.Equal(t, before, svc.GetAll())
	})
}

func TestPropertyService_Delete(t *testing.T) {
	svc := NewPropertyService(newTestStore())
	first := svc.Create(sampleFields("Primeiro", "Salvador", model.PurposeBuy))
	second := svc.Create(sampleFields("Segundo", "Salvador", model.PurposeBuy))

	assert.True(t, svc.Delete(first.ID))
	assert.False(t, svc.Delete(first.ID))

	all := svc.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, second.ID, all[0].ID)

	_, found := svc.GetByID(first.ID)
	assert.False(t, found)
}

func TestPropertyService_Filters(t *testing.T) {
	svc := NewPropertyService(newTestStore())

	rio := svc.Create(sampleFields("Apartamento em Copacabana", "Rio de Janeiro", model.PurposeBuy))

	branco := sampleFields("Casa em Rio Branco", "Rio Branco", model.PurposeRent)
	branco.Type = model.PropertyTypeHouse
	branco.Price = 2500
	branco.Bedrooms = intValue(3)
	branco.Featured = true
	riobranco := svc.Create(branco)

	bh := sampleFields("Terreno em BH", "Belo Horizonte", model.PurposeBuy)
	bh.Type = model.PropertyTypeLand
	bh.Bedrooms = nil
	svc.Create(bh)

	t.Run("city matches case-insensitive substrings", func(t *testing.T) {
		matches := svc.GetByCity("rio")
		require.Len(t, matches, 2)
		assert.Equal(t, rio.ID, matches[0].ID)
		assert.Equal(t, riobranco.ID, matches[1].ID)

		assert.Len(t, svc.GetByCity("RIO DE"), 1)
		assert.Empty(t, svc.GetByCity("Recife"))
	})

	t.Run("search ANDs every filter", func(t *testing.T) {
		matches := svc.Search(model.SearchFilters{City: "rio", Purpose: model.PurposeRent})
		require.Len(t, matches, 1)
		assert.Equal(t, riobranco.ID, matches[0].ID)

		matches = svc.Search(model.SearchFilters{Purpose: model.PurposeBuy, Type: model.PropertyTypeApartment})
		require.Len(t, matches, 1)
		assert.Equal(t, rio.ID, matches[0].ID)
	})

	t.Run("empty filters return everything", func(t *testing.T) {
		assert.Len(t, svc.Search(model.SearchFilters{}), 3)
	})

	t.Run("price and bedroom ranges", func(t *testing.T) {
		matches := svc.Search(model.SearchFilters{MaxPrice: floatValue(10000)})
		require.Len(t, matches, 1)
		assert.Equal(t, riobranco.ID, matches[0].ID)

		matches = svc.Search(model.SearchFilters{MinPrice: floatValue(100000)})
		assert.Len(t, matches, 2)

		// properties without bedrooms never pass a bedroom filter
		matches = svc.Search(model.SearchFilters{MinBedrooms: intValue(2)})
		assert.Len(t, matches, 2)
	})

	t.Run("featured", func(t *testing.T) {
		featured := svc.GetFeatured()
		require.Len(t, featured, 1)
		assert.Equal(t, riobranco.ID, featured[0].ID)
	})

	t.Run("by slug", func(t *testing.T) {
		found, ok := svc.GetBySlug("casa-em-rio-branco")
		require.True(t, ok)
		assert.Equal(t, riobranco.ID, found.ID)

		_, ok = svc.GetBySlug("")
		assert.False(t, ok)
	})
}

func TestPropertyService_OnChange(t *testing.T) {
	svc := NewPropertyService(newTestStore())

	calls := 0
	var last []model.Property
	svc.OnChange(func(all []model.Property) {
		calls++
		last = all
	})

	p := svc.Create(sampleFields("Studio", "Curitiba", model.PurposeSeason))
	assert.Equal(t, 1, calls)
	assert.Len(t, last, 1)

	title := "Studio reformado"
	svc.Update(p.ID, model.PropertyPatch{Title: &title})
	assert.Equal(t, 2, calls)

	svc.Update("missing", model.PropertyPatch{Title: &title})
	svc.Delete("missing")
	assert.Equal(t, 2, calls)

	svc.Delete(p.ID)
	assert.Equal(t, 3, calls)
	assert.Empty(t, last)
}

func TestFormatTimestamp(t *testing.T) {
	local := time.Date(2025, 3, 14, 9, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
	assert.Equal(t, "2025-03-14T12:30:00.000Z", FormatTimestamp(local))
}
