package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imobhub_backend/internal/model"
)

func TestCityService_CRUD(t *testing.T) {
	svc := NewCityService(newTestStore())

	assert.Empty(t, svc.GetAll())

	recife := svc.Create(model.CityFields{Name: "Recife", State: "PE"})
	assert.NotEmpty(t, recife.ID)
	assert.Equal(t, 0, recife.PropertiesCount)

	all := svc.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, recife, all[0])

	name := "Olinda"
	updated, ok := svc.Update(recife.ID, model.CityPatch{Name: &name})
	require.True(t, ok)
	assert.Equal(t, "Olinda", updated.Name)
	assert.Equal(t, "PE", updated.State)

	_, ok = svc.Update("missing", model.CityPatch{Name: &name})
	assert.False(t, ok)

	assert.True(t, svc.Delete(recife.ID))
	assert.False(t, svc.Delete(recife.ID))
	assert.Empty(t, svc.GetAll())
}

func TestCityService_RecountProperties(t *testing.T) {
	store := newTestStore()
	cities := NewCityService(store)
	sp := cities.Create(model.CityFields{Name: "São Paulo", State: "SP"})
	rio := cities.Create(model.CityFields{Name: "Rio de Janeiro", State: "RJ", PropertiesCount: 7})

	cities.RecountProperties([]model.Property{
		{City: "São Paulo"},
		{City: " são paulo "},
		{City: "Campinas"},
	})

	got, ok := cities.GetByID(sp.ID)
	require.True(t, ok)
	assert.Equal(t, 2, got.PropertiesCount)

	got, ok = cities.GetByID(rio.ID)
	require.True(t, ok)
	assert.Equal(t, 0, got.PropertiesCount)
}
