package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imobhub_backend/internal/model"
	"imobhub_backend/internal/service"
	"imobhub_backend/pkg/kvstore"
)

func useTestServices(t *testing.T) *service.Services {
	t.Helper()

	services, err := service.New(kvstore.New(kvstore.NewMemoryBackend()), service.Credentials{
		Email:    "conquista@imobhub.com.br",
		Password: "Conquista2025#",
	})
	require.NoError(t, err)

	original := openServices
	openServices = func() (*service.Services, error) { return services, nil }
	t.Cleanup(func() { openServices = original })

	return services
}

func run(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestSeedThenCities(t *testing.T) {
	useTestServices(t)

	assert.Contains(t, run(t, seedCmd()), "Default data initialized")

	out := run(t, citiesCmd())
	assert.Contains(t, out, "São Paulo")
	assert.Contains(t, out, "Curitiba")
}

func TestPropertiesFilters(t *testing.T) {
	services := useTestServices(t)
	services.Properties.Create(model.PropertyFields{Title: "Casa Rio", City: "Rio de Janeiro", Purpose: model.PurposeBuy, Type: model.PropertyTypeHouse})
	services.Properties.Create(model.PropertyFields{Title: "Flat Branco", City: "Rio Branco", Purpose: model.PurposeRent, Type: model.PropertyTypeApartment})

	out := run(t, propertiesCmd(), "--city", "rio", "--purpose", "rent")
	assert.Contains(t, out, "Flat Branco")
	assert.NotContains(t, out, "Casa Rio")

	out = run(t, propertiesCmd())
	assert.Contains(t, out, "Flat Branco")
	assert.Contains(t, out, "Casa Rio")
}

func TestRecount(t *testing.T) {
	services := useTestServices(t)
	kvstore.SetList(services.Store, service.KeyCities, []model.City{{ID: "1", Name: "Salvador", State: "BA", PropertiesCount: 4}})

	out := run(t, recountCmd())
	assert.Contains(t, out, "Salvador")

	cities := services.Cities.GetAll()
	require.Len(t, cities, 1)
	assert.Equal(t, 0, cities[0].PropertiesCount)
}

func TestSettingsPrintsDefaults(t *testing.T) {
	useTestServices(t)

	out := run(t, settingsCmd())
	assert.Contains(t, out, `"siteName": "Conquista Imob Hub"`)
}
