package model

// Contact message status
type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "new"
	ContactStatusInProgress ContactStatus = "in_progress"
	ContactStatusResponded  ContactStatus = "responded"
	ContactStatusClosed     ContactStatus = "closed"
)

type ContactSource string

const (
	ContactSourceWebsite  ContactSource = "website"
	ContactSourceWhatsApp ContactSource = "whatsapp"
	ContactSourceEmail    ContactSource = "email"
	ContactSourcePhone    ContactSource = "phone"
	ContactSourceSocial   ContactSource = "social"
)

// ContactMessage is a visitor inquiry from the contact form or a property page.
type ContactMessage struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	Message    string        `json:"message"`
	PropertyID string        `json:"propertyId,omitempty"`
	CreatedAt  string        `json:"createdAt"`
	Status     ContactStatus `json:"status"`
	Priority   Priority      `json:"priority"`
	Source     ContactSource `json:"source,omitempty"`
}

type ContactFields struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID string
	Source     ContactSource
}

func ValidContactStatus(status ContactStatus) bool {
	switch status {
	case ContactStatusNew, ContactStatusInProgress, ContactStatusResponded, ContactStatusClosed:
		return true
	}
	return false
}
