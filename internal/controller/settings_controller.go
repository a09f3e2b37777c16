package controller

import (
	"github.com/gofiber/fiber/v2"

	"imobhub_backend/internal/model"
	"imobhub_backend/internal/service"
)

type SocialMediaInput struct {
	Instagram *string `json:"instagram" validate:"omitempty,url"`
	Facebook  *string `json:"facebook" validate:"omitempty,url"`
	WhatsApp  *string `json:"whatsapp" validate:"omitempty,url"`
	YouTube   *string `json:"youtube" validate:"omitempty,url"`
	LinkedIn  *string `json:"linkedin" validate:"omitempty,url"`
}

type SettingsUpdateInput struct {
	SiteName        *string           `json:"siteName" validate:"omitempty,min=1,max=100"`
	SiteDescription *string           `json:"siteDescription"`
	Logo            *string           `json:"logo"`
	WhatsAppNumber  *string           `json:"whatsappNumber" validate:"omitempty,e164"`
	MapURL          *string           `json:"mapUrl" validate:"omitempty,url"`
	SocialMedia     *SocialMediaInput `json:"socialMedia"`
	Theme           *model.Theme      `json:"theme" validate:"omitempty,oneof=light dark"`
	Offices         *[]model.Office   `json:"offices"`
	WorkingHours    *string           `json:"workingHours"`
	Creci           *string           `json:"creci"`
	PrivacyPolicy   *string           `json:"privacyPolicy"`
	TermsOfUse      *string           `json:"termsOfUse"`
	AboutUs         *string           `json:"aboutUs"`
	MaintenanceMode *bool             `json:"maintenanceMode"`
}

func (in SettingsUpdateInput) patch() model.SettingsPatch {
	patch := model.SettingsPatch{
		SiteName:        in.SiteName,
		SiteDescription: in.SiteDescription,
		Logo:            in.Logo,
		WhatsAppNumber:  in.WhatsAppNumber,
		MapURL:          in.MapURL,
		Theme:           in.Theme,
		Offices:         in.Offices,
		WorkingHours:    in.WorkingHours,
		Creci:           in.Creci,
		PrivacyPolicy:   in.PrivacyPolicy,
		TermsOfUse:      in.TermsOfUse,
		AboutUs:         in.AboutUs,
		MaintenanceMode: in.MaintenanceMode,
	}
	if sm := in.SocialMedia; sm != nil {
		patch.SocialMedia = &model.SocialMediaPatch{
			Instagram: sm.Instagram,
			Facebook:  sm.Facebook,
			WhatsApp:  sm.WhatsApp,
			YouTube:   sm.YouTube,
			LinkedIn:  sm.LinkedIn,
		}
	}
	return patch
}

type SettingsController struct {
	settings *service.SettingsService
}

func NewSettingsController(settings *service.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

func (sc *SettingsController) GetSettings(c *fiber.Ctx) error {
	return c.JSON(sc.settings.Get())
}

func (sc *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	input := new(SettingsUpdateInput)
	if ok, err := parseBody(c, input); !ok {
		return err
	}

	return c.JSON(sc.settings.Update(input.patch()))
}
