package model

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type SocialMedia struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	WhatsApp  string `json:"whatsapp"`
	YouTube   string `json:"youtube,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

type Office struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	WhatsApp string `json:"whatsapp"`
	MapURL   string `json:"mapUrl"`
	Manager  string `json:"manager,omitempty"`
	Photo    string `json:"photo,omitempty"`
}

// Settings is the site-wide singleton edited from the admin panel.
type Settings struct {
	SiteName        string      `json:"siteName"`
	SiteDescription string      `json:"siteDescription"`
	Logo            string      `json:"logo"`
	WhatsAppNumber  string      `json:"whatsappNumber"`
	MapURL          string      `json:"mapUrl"`
	SocialMedia     SocialMedia `json:"socialMedia"`
	Theme           Theme       `json:"theme"`
	Offices         []Office    `json:"offices,omitempty"`
	WorkingHours    string      `json:"workingHours,omitempty"`
	Creci           string      `json:"creci,omitempty"`
	PrivacyPolicy   string      `json:"privacyPolicy,omitempty"`
	TermsOfUse      string      `json:"termsOfUse,omitempty"`
	AboutUs         string      `json:"aboutUs,omitempty"`
	MaintenanceMode bool        `json:"maintenanceMode,omitempty"`
}

type SocialMediaPatch struct {
	Instagram *string
	Facebook  *string
	WhatsApp  *string
	YouTube   *string
	LinkedIn  *string
}

type SettingsPatch struct {
	SiteName        *string
	SiteDescription *string
	Logo            *string
	WhatsAppNumber  *string
	MapURL          *string
	SocialMedia     *SocialMediaPatch
	Theme           *Theme
	Offices         *[]Office
	WorkingHours    *string
	Creci           *string
	PrivacyPolicy   *string
	TermsOfUse      *string
	AboutUs         *string
	MaintenanceMode *bool
}

// Apply merges the patch into s. SocialMedia is merged field by field.
func (patch SettingsPatch) Apply(s *Settings) {
	setString(&s.SiteName, patch.SiteName)
	setString(&s.SiteDescription, patch.SiteDescription)
	setString(&s.Logo, patch.Logo)
	setString(&s.WhatsAppNumber, patch.WhatsAppNumber)
	setString(&s.MapURL, patch.MapURL)
	setString(&s.WorkingHours, patch.WorkingHours)
	setString(&s.Creci, patch.Creci)
	setString(&s.PrivacyPolicy, patch.PrivacyPolicy)
	setString(&s.TermsOfUse, patch.TermsOfUse)
	setString(&s.AboutUs, patch.AboutUs)

	if patch.SocialMedia != nil {
		sm := patch.SocialMedia
		setString(&s.SocialMedia.Instagram, sm.Instagram)
		setString(&s.SocialMedia.Facebook, sm.Facebook)
		setString(&s.SocialMedia.WhatsApp, sm.WhatsApp)
		setString(&s.SocialMedia.YouTube, sm.YouTube)
		setString(&s.SocialMedia.LinkedIn, sm.LinkedIn)
	}
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	if patch.Offices != nil {
		s.Offices = append([]Office{}, (*patch.Offices)...)
	}
	if patch.MaintenanceMode != nil {
		s.MaintenanceMode = *patch.MaintenanceMode
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
