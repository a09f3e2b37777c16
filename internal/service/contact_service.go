package service

import (
	"time"

	"imobhub_backend/internal/model"
	"imobhub_backend/pkg/kvstore"
)

// ContactService stores inquiries sent from the public site
type ContactService struct {
	items collection[model.ContactMessage]
	now   func() time.Time
}

func NewContactService(store *kvstore.Store) *ContactService {
	return &ContactService{
		items: collection[model.ContactMessage]{
			store: store,
			key:   KeyContacts,
			id:    func(c *model.ContactMessage) string { return c.ID },
		},
		now: time.Now,
	}
}

func (s *ContactService) GetAll() []model.ContactMessage {
	return s.items.all()
}

func (s *ContactService) Create(fields model.ContactFields) model.ContactMessage {
	contact := model.ContactMessage{
		ID:         newID(),
		Name:       fields.Name,
		Email:      fields.Email,
		Phone:      fields.Phone,
		Message:    fields.Message,
		PropertyID: fields.PropertyID,
		CreatedAt:  timestamp(s.now),
		Status:     model.ContactStatusNew,
		Priority:   model.PriorityMedium,
		Source:     fields.Source,
	}
	if contact.Source == "" {
		contact.Source = model.ContactSourceWebsite
	}
	// Mülk üzerinden gelen talepler öncelikli
	if contact.PropertyID != "" {
		contact.Priority = model.PriorityHigh
	}

	s.items.add(contact)
	return contact
}

func (s *ContactService) UpdateStatus(id string, status model.ContactStatus) (*model.ContactMessage, bool) {
	return s.items.update(id, func(c *model.ContactMessage) {
		c.Status = status
	})
}

func (s *ContactService) Delete(id string) bool {
	return s.items.remove(id)
}

// CountPending counts messages nobody has answered yet
func (s *ContactService) CountPending() int {
	pending := s.items.filter(func(c *model.ContactMessage) bool {
		return c.Status == model.ContactStatusNew || c.Status == model.ContactStatusInProgress
	})
	return len(pending)
}
