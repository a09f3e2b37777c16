package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"imobhub_backend/internal/model"
	"imobhub_backend/pkg/kvstore"
)

func TestSettingsService_DefaultsWhenMissing(t *testing.T) {
	svc := NewSettingsService(newTestStore())

	settings := svc.Get()
	assert.Equal(t, "Conquista Imob Hub", settings.SiteName)
	assert.Equal(t, model.ThemeLight, settings.Theme)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSettingsService_Update(t *testing.T) {
	store := newTestStore()
	svc := NewSettingsService(store)

	kvstore.SetSingle(store, KeySettings, model.Settings{
		SiteName:    "Imob",
		SocialMedia: model.SocialMedia{Instagram: "https://instagram.com/imob", Facebook: "https://facebook.com/imob"},
		Theme:       model.ThemeLight,
	})

	siteName := "Conquista"
	dark := model.ThemeDark
	facebook := "https://facebook.com/conquista"
	updated := svc.Update(model.SettingsPatch{
		SiteName:    &siteName,
		Theme:       &dark,
		SocialMedia: &model.SocialMediaPatch{Facebook: &facebook},
	})

	assert.Equal(t, "Conquista", updated.SiteName)
	assert.Equal(t, model.ThemeDark, updated.Theme)
	assert.Equal(t, "https://instagram.com/imob", updated.SocialMedia.Instagram)
	assert.Equal(t, "https://facebook.com/conquista", updated.SocialMedia.Facebook)
	assert.Equal(t, updated, svc.Get())
}

func TestSettingsService_UpdateWithoutStoredSettingsStartsFromDefaults(t *testing.T) {
	svc := NewSettingsService(newTestStore())

	logo := "/logo.png"
	updated := svc.Update(model.SettingsPatch{Logo: &logo})

	assert.Equal(t, "/logo.png", updated.Logo)
	assert.Equal(t, DefaultSiteName, updated.SiteName)
	assert.Equal(t, updated, svc.Get())
}
