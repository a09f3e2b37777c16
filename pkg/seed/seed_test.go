package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imobhub_backend/internal/model"
	"imobhub_backend/internal/service"
	"imobhub_backend/pkg/kvstore"
	"imobhub_backend/pkg/seed"
)

func TestInitializeDefaultData_EmptyStore(t *testing.T) {
	store := kvstore.New(kvstore.NewMemoryBackend())

	seed.InitializeDefaultData(store)

	users := kvstore.GetList[model.User](store, service.KeyUsers)
	require.Len(t, users, 1)
	assert.Equal(t, "1", users[0].ID)
	assert.Equal(t, "conquista@imobhub.com.br", users[0].Email)
	assert.Equal(t, model.RoleAdmin, users[0].Role)

	settings := kvstore.GetSingle[model.Settings](store, service.KeySettings)
	require.NotNil(t, settings)
	assert.Equal(t, "Conquista Imob Hub", settings.SiteName)
	assert.Equal(t, "https://instagram.com/conquistaimobhub", settings.SocialMedia.Instagram)
	assert.NotEmpty(t, settings.MapURL)

	cities := kvstore.GetList[model.City](store, service.KeyCities)
	require.Len(t, cities, 5)
	assert.Equal(t, "São Paulo", cities[0].Name)
	assert.Equal(t, "PR", cities[4].State)
	for _, c := range cities {
		assert.Zero(t, c.PropertiesCount)
	}
}

func TestInitializeDefaultData_Idempotent(t *testing.T) {
	backend := kvstore.NewMemoryBackend()
	store := kvstore.New(backend)

	seed.InitializeDefaultData(store)

	ctx := context.Background()
	snapshot := make(map[string]string)
	for _, key := range []string{service.KeyUsers, service.KeySettings, service.KeyCities} {
		raw, err := backend.Get(ctx, key)
		require.NoError(t, err)
		snapshot[key] = raw
	}

	seed.InitializeDefaultData(store)

	for key, before := range snapshot {
		after, err := backend.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, before, after, key)
	}
}

func TestInitializeDefaultData_KeepsExistingData(t *testing.T) {
	store := kvstore.New(kvstore.NewMemoryBackend())
	kvstore.SetList(store, service.KeyCities, []model.City{{ID: "x", Name: "Recife", State: "PE"}})
	kvstore.SetSingle(store, service.KeySettings, model.Settings{SiteName: "Outro Site"})

	seed.InitializeDefaultData(store)

	cities := kvstore.GetList[model.City](store, service.KeyCities)
	require.Len(t, cities, 1)
	assert.Equal(t, "Recife", cities[0].Name)

	settings := kvstore.GetSingle[model.Settings](store, service.KeySettings)
	require.NotNil(t, settings)
	assert.Equal(t, "Outro Site", settings.SiteName)

	assert.Len(t, kvstore.GetList[model.User](store, service.KeyUsers), 1)
}

func TestDefaultUser_CreatedAtFormat(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("BRT", -3*60*60))

	user := seed.DefaultUser(now)
	assert.Equal(t, "2025-01-02T06:04:05.000Z", user.CreatedAt)
	assert.Equal(t, service.FormatTimestamp(now), user.CreatedAt)
}
