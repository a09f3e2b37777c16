package service

import (
	"imobhub_backend/internal/model"
	"imobhub_backend/pkg/kvstore"
)

const (
	DefaultSiteName        = "Conquista Imob Hub"
	DefaultSiteDescription = "Sua imobiliária digital completa"
)

type SettingsService struct {
	store *kvstore.Store
}

func NewSettingsService(store *kvstore.Store) *SettingsService {
	return &SettingsService{store: store}
}

// DefaultSettings is served whenever no settings have been persisted yet.
func DefaultSettings() model.Settings {
	return model.Settings{
		SiteName:        DefaultSiteName,
		SiteDescription: DefaultSiteDescription,
		Logo:            "/placeholder.svg",
		WhatsAppNumber:  "+5511999999999",
		MapURL:          "",
		SocialMedia:     model.SocialMedia{},
		Theme:           model.ThemeLight,
	}
}

// Get never returns an empty value: missing or unreadable settings fall back to DefaultSettings.
func (s *SettingsService) Get() model.Settings {
	if settings := kvstore.GetSingle[model.Settings](s.store, KeySettings); settings != nil {
		return *settings
	}
	return DefaultSettings()
}

func (s *SettingsService) Update(patch model.SettingsPatch) model.Settings {
	settings := s.Get()
	patch.Apply(&settings)
	kvstore.SetSingle(s.store, KeySettings, settings)
	return settings
}
