package service

import (
	"time"

	"imobhub_backend/internal/model"
	"imobhub_backend/pkg/kvstore"
)

type NewsService struct {
	items collection[model.News]
	now   func() time.Time
}

func NewNewsService(store *kvstore.Store) *NewsService {
	return &NewsService{
		items: collection[model.News]{
			store: store,
			key:   KeyNews,
			id:    func(n *model.News) string { return n.ID },
		},
		now: time.Now,
	}
}

func (s *NewsService) GetAll() []model.News {
	return s.items.all()
}

// GetPublished returns only the articles visible on the public site
func (s *NewsService) GetPublished() []model.News {
	return s.items.filter(func(n *model.News) bool { return n.Published })
}

func (s *NewsService) GetByID(id string) (*model.News, bool) {
	return s.items.find(id)
}

func (s *NewsService) Create(fields model.NewsFields) model.News {
	existing := s.items.all()

	news := model.News{
		ID:          newID(),
		Title:       fields.Title,
		Description: fields.Description,
		Content:     fields.Content,
		Image:       fields.Image,
		Author:      fields.Author,
		CreatedAt:   timestamp(s.now),
		Published:   fields.Published,
		Category:    fields.Category,
	}

	taken := make(map[string]bool, len(existing))
	for _, n := range existing {
		taken[n.Slug] = true
	}
	news.Slug = uniqueSlug(news.Title, news.ID, taken)

	s.items.save(append(existing, news))
	return news
}

func (s *NewsService) Update(id string, patch model.NewsPatch) (*model.News, bool) {
	return s.items.update(id, patch.Apply)
}

func (s *NewsService) Delete(id string) bool {
	return s.items.remove(id)
}
