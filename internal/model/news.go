package model

type NewsCategory string

const (
	NewsCategoryMarket    NewsCategory = "market"
	NewsCategoryTips      NewsCategory = "tips"
	NewsCategoryNews      NewsCategory = "news"
	NewsCategoryFinancing NewsCategory = "financing"
)

type News struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     string       `json:"content"`
	Image       string       `json:"image"`
	Author      string       `json:"author"`
	CreatedAt   string       `json:"createdAt"`
	Published   bool         `json:"published"`
	Category    NewsCategory `json:"category,omitempty"`
	Slug        string       `json:"slug,omitempty"`
}

type NewsFields struct {
	Title       string
	Description string
	Content     string
	Image       string
	Author      string
	Published   bool
	Category    NewsCategory
}

type NewsPatch struct {
	Title       *string
	Description *string
	Content     *string
	Image       *string
	Author      *string
	Published   *bool
	Category    *NewsCategory
}

func (patch NewsPatch) Apply(n *News) {
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Description != nil {
		n.Description = *patch.Description
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	if patch.Image != nil {
		n.Image = *patch.Image
	}
	if patch.Author != nil {
		n.Author = *patch.Author
	}
	if patch.Published != nil {
		n.Published = *patch.Published
	}
	if patch.Category != nil {
		n.Category = *patch.Category
	}
}
