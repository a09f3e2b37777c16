package service

// Storage keys, one per logical collection or singleton.
const (
	KeyProperties = "conquista_properties"
	KeyCities     = "conquista_cities"
	KeyNews       = "conquista_news"
	KeyUsers      = "conquista_users"
	KeySettings   = "conquista_settings"
	KeyAuth       = "conquista_auth"
	KeyContacts   = "conquista_contacts"
)
